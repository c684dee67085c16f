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

import "github.com/schoolvoice/schoolvoice/database"

type School struct {
	Model
	Name        string  `json:"name" gorm:"type:text;not null"`
	Slug        string  `json:"slug" gorm:"type:text;unique;not null;index"`
	Description string  `json:"description" gorm:"type:text"`
	Country     *string `json:"country" gorm:"type:text"`
	Website     *string `json:"website" gorm:"type:text"`

	Memberships  []Membership  `json:"memberships,omitempty" gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE"`
	ToneProfiles []ToneProfile `json:"toneProfiles,omitempty" gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE"`

	Settings database.JSONB `json:"settings" gorm:"type:jsonb"`
}

func (s School) TableName() string {
	return "schools"
}
