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
	"github.com/schoolvoice/schoolvoice/utils"
)

func toneDimensionsToModel(dims []dtos.ToneDimensionDTO) models.ToneDimensions {
	return utils.Map(dims, func(d dtos.ToneDimensionDTO) models.ToneDimension {
		return models.ToneDimension{
			Name:        d.Name,
			Score:       d.Score,
			Explanation: d.Explanation,
		}
	})
}

func ToneProfileCreateRequestToModel(c dtos.ToneProfileCreateRequest, schoolID uuid.UUID, createdBy string) models.ToneProfile {
	return models.ToneProfile{
		SchoolID:    schoolID,
		Name:        c.Name,
		Description: c.Description,
		Dimensions:  toneDimensionsToModel(c.Dimensions),
		CreatedBy:   createdBy,
	}
}

func ApplyToneProfilePatchRequestToModel(p dtos.ToneProfilePatchRequest, profile *models.ToneProfile) bool {
	updated := false

	if p.Name != nil {
		updated = true
		profile.Name = *p.Name
	}

	if p.Description != nil {
		updated = true
		profile.Description = *p.Description
	}

	if p.Dimensions != nil {
		updated = true
		profile.Dimensions = toneDimensionsToModel(p.Dimensions)
	}

	return updated
}

func ToneProfileModelToDTO(profile models.ToneProfile) dtos.ToneProfileDTO {
	return dtos.ToneProfileDTO{
		ID:          profile.ID,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
		SchoolID:    profile.SchoolID,
		Name:        profile.Name,
		Description: profile.Description,
		Dimensions: utils.Map(profile.Dimensions, func(d models.ToneDimension) dtos.ToneDimensionDTO {
			return dtos.ToneDimensionDTO{
				Name:        d.Name,
				Score:       d.Score,
				Explanation: d.Explanation,
			}
		}),
		CreatedBy: profile.CreatedBy,
		IsActive:  profile.IsActive,
	}
}
