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
	"github.com/gosimple/slug"

	"github.com/schoolvoice/schoolvoice/database"
	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/dtos"
)

func SchoolCreateRequestToModel(c dtos.SchoolCreateRequest) models.School {
	return models.School{
		Name:        c.Name,
		Slug:        slug.Make(c.Name),
		Description: c.Description,
		Country:     c.Country,
		Website:     c.Website,
	}
}

func ApplySchoolPatchRequestToModel(p dtos.SchoolPatchRequest, school *models.School) bool {
	updated := false

	if p.Name != nil {
		updated = true
		school.Name = *p.Name
		school.Slug = slug.Make(*p.Name)
	}

	if p.Description != nil {
		updated = true
		school.Description = *p.Description
	}

	if p.Country != nil {
		updated = true
		school.Country = p.Country
	}

	if p.Website != nil {
		updated = true
		school.Website = p.Website
	}

	if p.Settings != nil {
		updated = true
		school.Settings = database.JSONB(*p.Settings)
	}

	return updated
}

func SchoolModelToDTO(school models.School) dtos.SchoolDTO {
	return dtos.SchoolDTO{
		ID:          school.ID,
		CreatedAt:   school.CreatedAt,
		UpdatedAt:   school.UpdatedAt,
		Name:        school.Name,
		Slug:        school.Slug,
		Description: school.Description,
		Country:     school.Country,
		Website:     school.Website,
		Settings:    school.Settings,
	}
}
