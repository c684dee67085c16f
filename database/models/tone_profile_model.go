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
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// ToneDimension is a single scored axis of a school's writing voice, e.g.
// formality or warmth. Scores range from 0 to 100.
type ToneDimension struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Explanation string `json:"explanation"`
}

// ToneDimensions is stored as a jsonb array so the order of dimensions is
// preserved.
type ToneDimensions []ToneDimension

func (t ToneDimensions) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *ToneDimensions) Scan(value any) error {
	data, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(data, t)
}

// ToneProfile is a school's writing-voice configuration. At most one profile
// per school is active at a time.
type ToneProfile struct {
	Model
	SchoolID    uuid.UUID      `json:"schoolId" gorm:"not null;type:uuid;index"`
	School      School         `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name        string         `json:"name" gorm:"type:text;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Dimensions  ToneDimensions `json:"dimensions" gorm:"type:jsonb"`
	// CreatedBy is the identity provider subject of the profile's creator.
	CreatedBy string `json:"createdBy" gorm:"type:text;not null"`
	IsActive  bool   `json:"isActive" gorm:"default:false;not null"`
}

func (t ToneProfile) TableName() string {
	return "tone_profiles"
}
