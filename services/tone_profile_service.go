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
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/shared"
)

type ToneProfileService struct {
	toneProfileRepository shared.ToneProfileRepository
	authorizer            shared.Authorizer
}

func NewToneProfileService(toneProfileRepository shared.ToneProfileRepository, authorizer shared.Authorizer) *ToneProfileService {
	return &ToneProfileService{
		toneProfileRepository: toneProfileRepository,
		authorizer:            authorizer,
	}
}

func (s *ToneProfileService) Create(ctx shared.Context, profile *models.ToneProfile) error {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityToneProfile, shared.ActionCreate, shared.RowFacts{
		SchoolID: profile.SchoolID,
	}); err != nil {
		return err
	}

	return s.toneProfileRepository.Create(nil, profile)
}

func (s *ToneProfileService) Update(ctx shared.Context, profile *models.ToneProfile) error {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityToneProfile, shared.ActionUpdate, shared.RowFacts{
		SchoolID: profile.SchoolID,
	}); err != nil {
		return err
	}

	return s.toneProfileRepository.Save(nil, profile)
}

func (s *ToneProfileService) Delete(ctx shared.Context, schoolID uuid.UUID, profileID uuid.UUID) error {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityToneProfile, shared.ActionDelete, shared.RowFacts{
		SchoolID: schoolID,
	}); err != nil {
		return err
	}

	profile, err := s.readScoped(schoolID, profileID)
	if err != nil {
		return err
	}

	return s.toneProfileRepository.Delete(nil, profile.ID)
}

func (s *ToneProfileService) ListBySchool(ctx shared.Context, schoolID uuid.UUID) ([]models.ToneProfile, error) {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityToneProfile, shared.ActionRead, shared.RowFacts{
		SchoolID: schoolID,
	}); err != nil {
		return nil, err
	}

	return s.toneProfileRepository.ListBySchool(schoolID)
}

// SetActive marks the profile active and clears the flag on the school's
// other profiles, all in one transaction.
func (s *ToneProfileService) SetActive(ctx shared.Context, schoolID uuid.UUID, profileID uuid.UUID) error {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityToneProfile, shared.ActionUpdate, shared.RowFacts{
		SchoolID: schoolID,
	}); err != nil {
		return err
	}

	profile, err := s.readScoped(schoolID, profileID)
	if err != nil {
		return err
	}

	return s.toneProfileRepository.Transaction(func(tx shared.DB) error {
		if err := s.toneProfileRepository.DeactivateOthers(tx, schoolID, profile.ID); err != nil {
			return err
		}
		profile.IsActive = true
		return s.toneProfileRepository.Save(tx, &profile)
	})
}

func (s *ToneProfileService) readScoped(schoolID uuid.UUID, profileID uuid.UUID) (models.ToneProfile, error) {
	profile, err := s.toneProfileRepository.Read(profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ToneProfile{}, shared.ErrNotFound
		}
		return models.ToneProfile{}, err
	}
	if profile.SchoolID != schoolID {
		return models.ToneProfile{}, shared.ErrNotFound
	}
	return profile, nil
}
