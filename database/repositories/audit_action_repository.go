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
	"gorm.io/gorm"

	"github.com/schoolvoice/schoolvoice/database/models"
)

type auditActionRepository struct {
	db *gorm.DB
}

func NewAuditActionRepository(db *gorm.DB) *auditActionRepository {
	return &auditActionRepository{
		db: db,
	}
}

func (g *auditActionRepository) Create(tx *gorm.DB, action *models.AuditAction) error {
	db := tx
	if db == nil {
		db = g.db
	}
	return db.Create(action).Error
}

func (g *auditActionRepository) ListRecent(limit int) ([]models.AuditAction, error) {
	var ts []models.AuditAction
	err := g.db.Model(models.AuditAction{}).
		Order("created_at DESC").
		Limit(limit).
		Find(&ts).Error
	return ts, err
}
