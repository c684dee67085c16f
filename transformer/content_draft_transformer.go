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

package transformer

import (
	"github.com/google/uuid"

	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/dtos"
)

func ContentDraftCreateRequestToModel(c dtos.ContentDraftCreateRequest, schoolID uuid.UUID, authorID string) models.ContentDraft {
	return models.ContentDraft{
		SchoolID:      schoolID,
		AuthorID:      authorID,
		Title:         c.Title,
		Content:       c.Content,
		ToneProfileID: c.ToneProfileID,
	}
}

func ApplyContentDraftPatchRequestToModel(p dtos.ContentDraftPatchRequest, draft *models.ContentDraft) bool {
	updated := false

	if p.Title != nil {
		updated = true
		draft.Title = *p.Title
	}

	if p.Content != nil {
		updated = true
		draft.Content = *p.Content
	}

	if p.ToneProfileID != nil {
		updated = true
		draft.ToneProfileID = p.ToneProfileID
	}

	return updated
}

func ContentDraftModelToDTO(draft models.ContentDraft) dtos.ContentDraftDTO {
	return dtos.ContentDraftDTO{
		ID:            draft.ID,
		CreatedAt:     draft.CreatedAt,
		UpdatedAt:     draft.UpdatedAt,
		SchoolID:      draft.SchoolID,
		AuthorID:      draft.AuthorID,
		Title:         draft.Title,
		Content:       draft.Content,
		ToneProfileID: draft.ToneProfileID,
	}
}
