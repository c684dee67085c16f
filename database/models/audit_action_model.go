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

	"github.com/schoolvoice/schoolvoice/database"
)

// AuditAction records a platform-level privileged operation, such as
// granting or revoking the super-admin flag. The table is append-only.
type AuditAction struct {
	ID        uuid.UUID `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`

	// AdminID is the identity provider subject of the acting super admin.
	AdminID          string         `json:"adminId" gorm:"type:text;not null;index"`
	ActionType       string         `json:"actionType" gorm:"type:text;not null"`
	AffectedUserID   *string        `json:"affectedUserId" gorm:"type:text"`
	AffectedSchoolID *uuid.UUID     `json:"affectedSchoolId" gorm:"type:uuid"`
	Details          database.JSONB `json:"details" gorm:"type:jsonb"`
}

func (a AuditAction) TableName() string {
	return "audit_actions"
}

const (
	AuditActionGrantSuperAdmin  = "grant_super_admin"
	AuditActionRevokeSuperAdmin = "revoke_super_admin"
)
