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
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/schoolvoice/schoolvoice/database"
	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/monitoring"
	"github.com/schoolvoice/schoolvoice/shared"
	"github.com/schoolvoice/schoolvoice/utils"
)

const invitationValidity = 7 * 24 * time.Hour

type MembershipService struct {
	membershipRepository shared.MembershipRepository
	invitationRepository shared.InvitationRepository
	schoolRepository     shared.SchoolRepository
	authorizer           shared.Authorizer
	identityClient       shared.IdentityClient
}

func NewMembershipService(
	membershipRepository shared.MembershipRepository,
	invitationRepository shared.InvitationRepository,
	schoolRepository shared.SchoolRepository,
	authorizer shared.Authorizer,
	identityClient shared.IdentityClient,
) *MembershipService {
	return &MembershipService{
		membershipRepository: membershipRepository,
		invitationRepository: invitationRepository,
		schoolRepository:     schoolRepository,
		authorizer:           authorizer,
		identityClient:       identityClient,
	}
}

// InviteMember creates a pending invitation. Only one open invitation per
// (school, email) may exist, enforced by a partial unique index.
func (s *MembershipService) InviteMember(ctx shared.Context, schoolID uuid.UUID, email string, role shared.Role) (models.Invitation, error) {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityInvitation, shared.ActionCreate, shared.RowFacts{
		SchoolID: schoolID,
	}); err != nil {
		return models.Invitation{}, err
	}

	invitation := models.Invitation{
		SchoolID:  schoolID,
		Token:     uuid.NewString(),
		Email:     email,
		Role:      string(role),
		CreatedBy: caller.GetUserID(),
		ExpiresAt: time.Now().Add(invitationValidity),
	}

	err := s.invitationRepository.Transaction(func(tx shared.DB) error {
		// an expired invitation is inert and must not block the slot
		if err := s.invitationRepository.DeleteExpiredPending(tx, schoolID, email); err != nil {
			return err
		}
		return s.invitationRepository.Create(tx, &invitation)
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.Invitation{}, fmt.Errorf("%w: an invitation for this email is already pending", shared.ErrConflict)
		}
		return models.Invitation{}, errors.Wrap(err, "could not create invitation")
	}

	return invitation, nil
}

// AcceptInvitation redeems a token for the caller. The whole transition runs
// in one transaction with the invitation row locked, so of two concurrent
// accepts exactly one succeeds. Expiry is checked at use time, never cached.
func (s *MembershipService) AcceptInvitation(ctx shared.Context, token string) (models.School, error) {
	caller := shared.GetSession(ctx)

	var schoolID uuid.UUID
	err := s.invitationRepository.Transaction(func(tx shared.DB) error {
		invitation, err := s.invitationRepository.FindByTokenForUpdate(tx, token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if invitation.IsAccepted() {
			return fmt.Errorf("%w: invitation was already accepted", shared.ErrInvalidState)
		}
		if invitation.IsExpired(time.Now()) {
			return fmt.Errorf("%w: invitation is expired", shared.ErrInvalidState)
		}
		if !strings.EqualFold(invitation.Email, caller.GetEmail()) {
			return fmt.Errorf("%w: invitation was issued for a different email", shared.ErrPermissionDenied)
		}

		now := time.Now()
		invitation.AcceptedAt = &now
		if err := s.invitationRepository.Save(tx, &invitation); err != nil {
			return err
		}

		membership := models.Membership{
			SchoolID: invitation.SchoolID,
			UserID:   caller.GetUserID(),
			Role:     invitation.Role,
		}
		if err := s.membershipRepository.Create(tx, &membership); err != nil {
			// rolls back the acceptance mark as well
			if database.IsDuplicateKeyError(err) {
				return fmt.Errorf("%w: already a member of this school", shared.ErrConflict)
			}
			return err
		}

		schoolID = invitation.SchoolID
		return nil
	})
	if err != nil {
		return models.School{}, err
	}

	monitoring.InvitationAcceptedAmount.Inc()
	return s.schoolRepository.Read(schoolID)
}

func (s *MembershipService) RevokeInvitation(ctx shared.Context, schoolID uuid.UUID, invitationID uuid.UUID) error {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityInvitation, shared.ActionDelete, shared.RowFacts{
		SchoolID: schoolID,
	}); err != nil {
		return err
	}

	invitation, err := s.invitationRepository.Read(invitationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.ErrNotFound
		}
		return err
	}
	if invitation.SchoolID != schoolID {
		return shared.ErrNotFound
	}
	if invitation.IsAccepted() {
		return fmt.Errorf("%w: invitation was already accepted", shared.ErrInvalidState)
	}

	return s.invitationRepository.Delete(nil, invitationID)
}

func (s *MembershipService) ListInvitations(ctx shared.Context, schoolID uuid.UUID) ([]models.Invitation, error) {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityInvitation, shared.ActionRead, shared.RowFacts{
		SchoolID: schoolID,
	}); err != nil {
		return nil, err
	}

	return s.invitationRepository.ListBySchool(schoolID)
}

// ChangeRole updates a member's role. The engine denies the caller's own
// row, so admins cannot demote themselves through this path.
func (s *MembershipService) ChangeRole(ctx shared.Context, schoolID uuid.UUID, targetUserID string, role shared.Role) error {
	caller := shared.GetSession(ctx)

	return s.membershipRepository.Transaction(func(tx shared.DB) error {
		if err := s.authorizer.Decide(tx, caller, shared.EntityMembership, shared.ActionUpdate, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   targetUserID,
			NewRole:  role,
		}); err != nil {
			return err
		}

		membership, err := s.membershipRepository.FindBySchoolAndUser(tx, schoolID, targetUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		membership.Role = string(role)
		return s.membershipRepository.Save(tx, &membership)
	})
}

// RemoveMember deletes a member's row. Self-removal is denied here; members
// leave through LeaveSchool.
func (s *MembershipService) RemoveMember(ctx shared.Context, schoolID uuid.UUID, targetUserID string) error {
	caller := shared.GetSession(ctx)

	return s.membershipRepository.Transaction(func(tx shared.DB) error {
		if err := s.authorizer.Decide(tx, caller, shared.EntityMembership, shared.ActionDelete, shared.RowFacts{
			SchoolID: schoolID,
			UserID:   targetUserID,
		}); err != nil {
			return err
		}

		membership, err := s.membershipRepository.FindBySchoolAndUser(tx, schoolID, targetUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		return s.membershipRepository.Delete(tx, membership.ID)
	})
}

// LeaveSchool removes the caller's own membership. An admin may only leave
// while at least one other admin remains. The admin rows are locked FOR
// UPDATE before counting, so of two admins leaving concurrently the second
// re-reads after the first's delete committed and is refused.
func (s *MembershipService) LeaveSchool(ctx shared.Context, schoolID uuid.UUID) error {
	caller := shared.GetSession(ctx)

	return s.membershipRepository.Transaction(func(tx shared.DB) error {
		membership, err := s.membershipRepository.FindBySchoolAndUser(tx, schoolID, caller.GetUserID())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrNotFound
			}
			return err
		}

		if membership.Role == string(shared.RoleAdmin) {
			admins, err := s.membershipRepository.ListAdminsForUpdate(tx, schoolID)
			if err != nil {
				return err
			}
			otherAdmins := utils.Filter(admins, func(admin models.Membership) bool {
				return admin.UserID != caller.GetUserID()
			})
			if len(otherAdmins) == 0 {
				return fmt.Errorf("%w: the last admin cannot leave the school", shared.ErrInvalidState)
			}
		}

		return s.membershipRepository.Delete(tx, membership.ID)
	})
}
