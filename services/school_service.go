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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/schoolvoice/schoolvoice/database"
	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/monitoring"
	"github.com/schoolvoice/schoolvoice/shared"
	"github.com/schoolvoice/schoolvoice/utils"
)

type SchoolService struct {
	schoolRepository     shared.SchoolRepository
	membershipRepository shared.MembershipRepository
	authorizer           shared.Authorizer
}

func NewSchoolService(schoolRepository shared.SchoolRepository, membershipRepository shared.MembershipRepository, authorizer shared.Authorizer) *SchoolService {
	return &SchoolService{
		schoolRepository:     schoolRepository,
		membershipRepository: membershipRepository,
		authorizer:           authorizer,
	}
}

// CreateSchool creates the school and the caller's first-admin membership in
// a single transaction. Two concurrent claims for the same slot are
// serialized by the unique (school_id, user_id) constraint: exactly one
// wins, the loser sees ErrConflict.
func (s *SchoolService) CreateSchool(ctx shared.Context, school *models.School) error {
	if school.Name == "" {
		return fmt.Errorf("%w: school name is required", shared.ErrInvalidState)
	}

	caller := shared.GetSession(ctx)

	err := s.schoolRepository.Transaction(func(tx shared.DB) error {
		if err := s.schoolRepository.Create(tx, school); err != nil {
			return err
		}

		membership := models.Membership{
			SchoolID: school.ID,
			UserID:   caller.GetUserID(),
			Role:     string(shared.RoleAdmin),
		}

		if err := s.authorizer.Decide(tx, caller, shared.EntityMembership, shared.ActionCreate, shared.RowFacts{
			SchoolID: school.ID,
			UserID:   membership.UserID,
			NewRole:  shared.RoleAdmin,
		}); err != nil {
			return err
		}

		return s.membershipRepository.Create(tx, &membership)
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: school already exists", shared.ErrConflict)
		}
		return errors.Wrap(err, "could not create school")
	}

	monitoring.SchoolCreatedAmount.Inc()
	return nil
}

func (s *SchoolService) ReadBySlug(slug string) (models.School, error) {
	if slug == "" {
		return models.School{}, fmt.Errorf("%w: slug is required", shared.ErrInvalidState)
	}

	school, err := s.schoolRepository.ReadBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.School{}, shared.ErrNotFound
		}
		return models.School{}, err
	}
	return school, nil
}

// ListSchoolsForCaller returns the schools the caller is a member of. It
// never lists foreign schools, not even for super admins; the cross-tenant
// listing lives in the admin service.
func (s *SchoolService) ListSchoolsForCaller(caller shared.AuthSession) ([]models.School, error) {
	memberships, err := s.membershipRepository.ListByUser(caller.GetUserID())
	if err != nil {
		return nil, err
	}

	schoolIDs := utils.Map(memberships, func(m models.Membership) uuid.UUID {
		return m.SchoolID
	})

	return s.schoolRepository.List(schoolIDs)
}

func (s *SchoolService) UpdateSchool(ctx shared.Context, school *models.School) error {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntitySchool, shared.ActionUpdate, shared.RowFacts{
		SchoolID: school.ID,
	}); err != nil {
		return err
	}

	return s.schoolRepository.Update(nil, school)
}
