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

package models

import "github.com/google/uuid"

// ContentDraft is an unpublished piece of writing. Drafts are readable by
// every member of the school but only the author may change or delete them.
type ContentDraft struct {
	Model
	SchoolID uuid.UUID `json:"schoolId" gorm:"not null;type:uuid;index"`
	School   School    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	// AuthorID is the identity provider subject of the draft's creator.
	AuthorID      string     `json:"authorId" gorm:"type:text;not null;index"`
	Title         string     `json:"title" gorm:"type:text;not null"`
	Content       string     `json:"content" gorm:"type:text"`
	ToneProfileID *uuid.UUID `json:"toneProfileId" gorm:"type:uuid"`
}

func (c ContentDraft) TableName() string {
	return "content_drafts"
}
