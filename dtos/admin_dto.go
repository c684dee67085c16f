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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type AdminStatisticsDTO struct {
	Schools       int64 `json:"schools"`
	Users         int64 `json:"users"`
	ToneProfiles  int64 `json:"toneProfiles"`
	ContentDrafts int64 `json:"contentDrafts"`
}

type SetSuperAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
	Grant bool   `json:"grant"`
}

type AuditActionDTO struct {
	ID               uuid.UUID      `json:"id"`
	CreatedAt        time.Time      `json:"createdAt"`
	AdminID          string         `json:"adminId"`
	ActionType       string         `json:"actionType"`
	AffectedUserID   *string        `json:"affectedUserId"`
	AffectedSchoolID *uuid.UUID     `json:"affectedSchoolId"`
	Details          map[string]any `json:"details"`
}

// WhoAmIDTO describes the authenticated caller.
type WhoAmIDTO struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}
