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

func InvitationModelToDTO(invitation models.Invitation) dtos.InvitationDTO {
	return dtos.InvitationDTO{
		ID:        invitation.ID,
		CreatedAt: invitation.CreatedAt,
		Email:     invitation.Email,
		Role:      invitation.Role,
		CreatedBy: invitation.CreatedBy,
		ExpiresAt: invitation.ExpiresAt,
		Accepted:  invitation.IsAccepted(),
	}
}

// InvitationModelToCreatedDTO includes the redeem token. Only used in the
// response to the inviting admin.
func InvitationModelToCreatedDTO(invitation models.Invitation) dtos.InvitationCreatedDTO {
	return dtos.InvitationCreatedDTO{
		InvitationDTO: InvitationModelToDTO(invitation),
		Token:         invitation.Token,
	}
}
