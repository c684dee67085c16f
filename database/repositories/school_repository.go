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
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/utils"
)

type schoolRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.School, *gorm.DB]
}

func NewSchoolRepository(db *gorm.DB) *schoolRepository {
	return &schoolRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.School](db),
	}
}

func (g *schoolRepository) Create(tx *gorm.DB, school *models.School) error {
	firstFreeSlug, err := g.firstFreeSlug(slug.Make(school.Name))
	if err != nil {
		return fmt.Errorf("could not generate next slug: %w", err)
	}
	school.Slug = firstFreeSlug

	return g.GetDB(tx).Create(school).Error
}

func (g *schoolRepository) ReadBySlug(slug string) (models.School, error) {
	var t models.School
	err := g.db.Model(models.School{}).Where("slug = ?", slug).First(&t).Error
	return t, err
}

func (g *schoolRepository) Update(tx *gorm.DB, school *models.School) error {
	return g.GetDB(tx).Save(school).Error
}

func (g *schoolRepository) CountAll() (int64, error) {
	var count int64
	err := g.db.Model(&models.School{}).Count(&count).Error
	return count, err
}

// firstFreeSlug finds the next slug not yet taken by another school.
func (g *schoolRepository) firstFreeSlug(schoolSlug string) (string, error) {
	var slugs []string
	err := g.db.Model(&models.School{}).
		Where("slug LIKE ?", schoolSlug+"%").
		Pluck("slug", &slugs).Error
	if err != nil {
		return "", err
	}

	baseTaken := false
	existing := make(map[string]bool)
	for _, s := range slugs {
		existing[s] = true
		if s == schoolSlug {
			baseTaken = true
		}
	}

	if !baseTaken {
		return schoolSlug, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", schoolSlug, i)
		if !existing[candidate] {
			return candidate, nil
		}
	}
}
