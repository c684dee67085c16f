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

type ToneDimensionDTO struct {
	Name        string `json:"name" validate:"required"`
	Score       int    `json:"score" validate:"gte=0,lte=100"`
	Explanation string `json:"explanation"`
}

type ToneProfileCreateRequest struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Dimensions  []ToneDimensionDTO `json:"dimensions" validate:"dive"`
}

type ToneProfilePatchRequest struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Dimensions  []ToneDimensionDTO `json:"dimensions" validate:"omitempty,dive"`
}

type ToneProfileDTO struct {
	ID          uuid.UUID          `json:"id"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	SchoolID    uuid.UUID          `json:"schoolId"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Dimensions  []ToneDimensionDTO `json:"dimensions"`
	CreatedBy   string             `json:"createdBy"`
	IsActive    bool               `json:"isActive"`
}
