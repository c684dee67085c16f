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

type contentDraftRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ContentDraft, *gorm.DB]
}

func NewContentDraftRepository(db *gorm.DB) *contentDraftRepository {
	return &contentDraftRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ContentDraft](db),
	}
}

func (g *contentDraftRepository) ListBySchool(schoolID uuid.UUID) ([]models.ContentDraft, error) {
	var ts []models.ContentDraft
	err := g.db.Model(models.ContentDraft{}).
		Where("school_id = ?", schoolID).
		Order("updated_at DESC").
		Find(&ts).Error
	return ts, err
}

func (g *contentDraftRepository) CountAll() (int64, error) {
	var count int64
	err := g.db.Model(&models.ContentDraft{}).Count(&count).Error
	return count, err
}
