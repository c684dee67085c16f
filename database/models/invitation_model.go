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

import (
	"time"

	"github.com/google/uuid"
)

type Invitation struct {
	Model
	SchoolID uuid.UUID `json:"schoolId" gorm:"not null;type:uuid;index"`
	School   School    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	// Token is the secret the invitee redeems. Never returned in list
	// responses.
	Token string `json:"-" gorm:"type:text;unique;not null"`
	// Email is matched case-insensitively against the accepting caller.
	Email string `json:"email" gorm:"type:text;not null"`
	Role  string `json:"role" gorm:"type:text;not null"`
	// CreatedBy is the identity provider subject of the inviting admin.
	CreatedBy  string     `json:"createdBy" gorm:"type:text;not null"`
	ExpiresAt  time.Time  `json:"expiresAt" gorm:"not null"`
	AcceptedAt *time.Time `json:"acceptedAt"`
}

func (i Invitation) TableName() string {
	return "invitations"
}

func (i Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

func (i Invitation) IsAccepted() bool {
	return i.AcceptedAt != nil
}
