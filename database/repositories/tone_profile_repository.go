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

package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/utils"
)

type toneProfileRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ToneProfile, *gorm.DB]
}

func NewToneProfileRepository(db *gorm.DB) *toneProfileRepository {
	return &toneProfileRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ToneProfile](db),
	}
}

func (g *toneProfileRepository) ListBySchool(schoolID uuid.UUID) ([]models.ToneProfile, error) {
	var ts []models.ToneProfile
	err := g.db.Model(models.ToneProfile{}).
		Where("school_id = ?", schoolID).
		Order("created_at ASC").
		Find(&ts).Error
	return ts, err
}

// DeactivateOthers clears the active flag on every profile of the school
// except keepID. Used inside the activation transaction to keep the
// one-active-profile invariant.
func (g *toneProfileRepository) DeactivateOthers(tx *gorm.DB, schoolID uuid.UUID, keepID uuid.UUID) error {
	return g.GetDB(tx).Model(&models.ToneProfile{}).
		Where("school_id = ? AND id <> ?", schoolID, keepID).
		Update("is_active", false).Error
}

func (g *toneProfileRepository) CountAll() (int64, error) {
	var count int64
	err := g.db.Model(&models.ToneProfile{}).Count(&count).Error
	return count, err
}
