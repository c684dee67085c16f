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

type ContentDraftService struct {
	contentDraftRepository shared.ContentDraftRepository
	authorizer             shared.Authorizer
}

func NewContentDraftService(contentDraftRepository shared.ContentDraftRepository, authorizer shared.Authorizer) *ContentDraftService {
	return &ContentDraftService{
		contentDraftRepository: contentDraftRepository,
		authorizer:             authorizer,
	}
}

func (s *ContentDraftService) Create(ctx shared.Context, draft *models.ContentDraft) error {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityContentDraft, shared.ActionCreate, shared.RowFacts{
		SchoolID: draft.SchoolID,
		UserID:   draft.AuthorID,
	}); err != nil {
		return err
	}

	return s.contentDraftRepository.Create(nil, draft)
}

func (s *ContentDraftService) Read(ctx shared.Context, schoolID uuid.UUID, draftID uuid.UUID) (models.ContentDraft, error) {
	caller := shared.GetSession(ctx)

	draft, err := s.readScoped(schoolID, draftID)
	if err != nil {
		return models.ContentDraft{}, err
	}

	if err := s.authorizer.Decide(nil, caller, shared.EntityContentDraft, shared.ActionRead, shared.RowFacts{
		SchoolID: draft.SchoolID,
		UserID:   draft.AuthorID,
	}); err != nil {
		return models.ContentDraft{}, err
	}

	return draft, nil
}

// Update applies changes to a draft. Only the author may mutate it; admins
// reading a colleague's draft is fine, changing it is not.
func (s *ContentDraftService) Update(ctx shared.Context, draft *models.ContentDraft, title string, content string) error {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityContentDraft, shared.ActionUpdate, shared.RowFacts{
		SchoolID: draft.SchoolID,
		UserID:   draft.AuthorID,
	}); err != nil {
		return err
	}

	draft.Title = title
	draft.Content = content
	return s.contentDraftRepository.Save(nil, draft)
}

func (s *ContentDraftService) Delete(ctx shared.Context, schoolID uuid.UUID, draftID uuid.UUID) error {
	caller := shared.GetSession(ctx)

	draft, err := s.readScoped(schoolID, draftID)
	if err != nil {
		return err
	}

	if err := s.authorizer.Decide(nil, caller, shared.EntityContentDraft, shared.ActionDelete, shared.RowFacts{
		SchoolID: draft.SchoolID,
		UserID:   draft.AuthorID,
	}); err != nil {
		return err
	}

	return s.contentDraftRepository.Delete(nil, draft.ID)
}

func (s *ContentDraftService) ListBySchool(ctx shared.Context, schoolID uuid.UUID) ([]models.ContentDraft, error) {
	caller := shared.GetSession(ctx)

	if err := s.authorizer.Decide(nil, caller, shared.EntityContentDraft, shared.ActionRead, shared.RowFacts{
		SchoolID: schoolID,
	}); err != nil {
		return nil, err
	}

	return s.contentDraftRepository.ListBySchool(schoolID)
}

func (s *ContentDraftService) readScoped(schoolID uuid.UUID, draftID uuid.UUID) (models.ContentDraft, error) {
	draft, err := s.contentDraftRepository.Read(draftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ContentDraft{}, shared.ErrNotFound
		}
		return models.ContentDraft{}, err
	}
	if draft.SchoolID != schoolID {
		return models.ContentDraft{}, shared.ErrNotFound
	}
	return draft, nil
}
