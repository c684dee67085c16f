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
	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/dtos"
)

func AuditActionModelToDTO(action models.AuditAction) dtos.AuditActionDTO {
	return dtos.AuditActionDTO{
		ID:               action.ID,
		CreatedAt:        action.CreatedAt,
		AdminID:          action.AdminID,
		ActionType:       action.ActionType,
		AffectedUserID:   action.AffectedUserID,
		AffectedSchoolID: action.AffectedSchoolID,
		Details:          action.Details,
	}
}
