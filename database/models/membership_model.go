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

// Membership binds an identity provider user to a school with a role. The
// (school, user) pair is unique: a user holds at most one role per school.
type Membership struct {
	Model
	SchoolID uuid.UUID `json:"schoolId" gorm:"uniqueIndex:idx_membership_school_user;not null;type:uuid"`
	School   School    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	// UserID is the identity provider subject, not a foreign key into the
	// entity store.
	UserID string `json:"userId" gorm:"uniqueIndex:idx_membership_school_user;not null;type:text"`
	Role   string `json:"role" gorm:"type:text;not null"`
}

func (m Membership) TableName() string {
	return "memberships"
}
