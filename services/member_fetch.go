// Copyright (C) 2025 School Voice
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"github.com/google/uuid"
	client "github.com/ory/client-go"
	"github.com/pkg/errors"

	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/dtos"
	"github.com/schoolvoice/schoolvoice/identity"
	"github.com/schoolvoice/schoolvoice/shared"
	"github.com/schoolvoice/schoolvoice/utils"
)

const identityFetchBatchSize = 50

// ListMembers joins the school's membership rows with the identity provider
// records (email, display name). Identity batches are fetched concurrently.
func (s *MembershipService) ListMembers(ctx shared.Context, schoolID uuid.UUID) ([]dtos.UserDTO, error) {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityMembership, shared.ActionRead, shared.RowFacts{
		SchoolID: schoolID,
	}); err != nil {
		// the caller already resolved the school through the scoped route,
		// so the roster being off limits is forbidden, not missing
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrPermissionDenied
		}
		return nil, err
	}

	memberships, err := s.membershipRepository.ListBySchool(schoolID)
	if err != nil {
		return nil, err
	}
	if len(memberships) == 0 {
		return []dtos.UserDTO{}, nil
	}

	ids := utils.Map(memberships, func(m models.Membership) string {
		return m.UserID
	})

	errGroup := utils.ErrGroup[[]client.Identity](4)
	for start := 0; start < len(ids); start += identityFetchBatchSize {
		end := min(start+identityFetchBatchSize, len(ids))
		batch := ids[start:end]
		errGroup.Go(func() ([]client.Identity, error) {
			return s.identityClient.ListIdentities(ctx.Request().Context(), batch)
		})
	}

	batches, err := errGroup.WaitAndCollect()
	if err != nil {
		return nil, err
	}

	identityByID := make(map[string]client.Identity)
	for _, batch := range batches {
		for _, id := range batch {
			identityByID[id.Id] = id
		}
	}

	users := make([]dtos.UserDTO, 0, len(memberships))
	for _, membership := range memberships {
		user := dtos.UserDTO{
			ID:   membership.UserID,
			Role: membership.Role,
		}
		if ident, ok := identityByID[membership.UserID]; ok {
			user.Name = identity.DisplayNameFromIdentity(ident)
			user.Email = identity.EmailFromIdentity(ident)
		}
		users = append(users, user)
	}

	return users, nil
}
