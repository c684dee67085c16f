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
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/shared"
	"github.com/schoolvoice/schoolvoice/utils"
)

type membershipRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Membership, *gorm.DB]
}

func NewMembershipRepository(db *gorm.DB) *membershipRepository {
	return &membershipRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Membership](db),
	}
}

func (g *membershipRepository) FindBySchoolAndUser(tx *gorm.DB, schoolID uuid.UUID, userID string) (models.Membership, error) {
	var t models.Membership
	err := g.GetDB(tx).Model(models.Membership{}).
		Where("school_id = ? AND user_id = ?", schoolID, userID).
		First(&t).Error
	return t, err
}

func (g *membershipRepository) ListBySchool(schoolID uuid.UUID) ([]models.Membership, error) {
	var ts []models.Membership
	err := g.db.Model(models.Membership{}).
		Where("school_id = ?", schoolID).
		Order("created_at ASC").
		Find(&ts).Error
	return ts, err
}

func (g *membershipRepository) ListByUser(userID string) ([]models.Membership, error) {
	var ts []models.Membership
	err := g.db.Model(models.Membership{}).
		Where("user_id = ?", userID).
		Find(&ts).Error
	return ts, err
}

func (g *membershipRepository) CountBySchool(tx *gorm.DB, schoolID uuid.UUID) (int64, error) {
	var count int64
	err := g.GetDB(tx).Model(&models.Membership{}).
		Where("school_id = ?", schoolID).
		Count(&count).Error
	return count, err
}

// ListAdminsForUpdate locks the school's admin rows for the remainder of the
// transaction. The last-admin guard counts from the locked result, so two
// admins leaving concurrently serialize instead of both passing the check
// against the other's still-extant row.
func (g *membershipRepository) ListAdminsForUpdate(tx *gorm.DB, schoolID uuid.UUID) ([]models.Membership, error) {
	var ts []models.Membership
	err := g.GetDB(tx).Model(models.Membership{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("school_id = ? AND role = ?", schoolID, string(shared.RoleAdmin)).
		Find(&ts).Error
	return ts, err
}

func (g *membershipRepository) CountDistinctUsers() (int64, error) {
	var count int64
	err := g.db.Model(&models.Membership{}).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

// RoleOf and HasAnyMembership make the repository double as the membership
// fact directory the authorization engine consults. Both read the table
// directly with store privileges and never re-enter policy evaluation.

func (g *membershipRepository) RoleOf(tx *gorm.DB, schoolID uuid.UUID, userID string) (shared.Role, bool, error) {
	membership, err := g.FindBySchoolAndUser(tx, schoolID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	role, err := shared.ParseRole(membership.Role)
	if err != nil {
		return "", false, err
	}
	return role, true, nil
}

func (g *membershipRepository) HasAnyMembership(tx *gorm.DB, schoolID uuid.UUID) (bool, error) {
	count, err := g.CountBySchool(tx, schoolID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
