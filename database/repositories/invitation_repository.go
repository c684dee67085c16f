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
	"gorm.io/gorm/clause"

	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/utils"
)

type invitationRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Invitation, *gorm.DB]
}

func NewInvitationRepository(db *gorm.DB) *invitationRepository {
	return &invitationRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Invitation](db),
	}
}

func (g *invitationRepository) FindByToken(token string) (models.Invitation, error) {
	var t models.Invitation
	err := g.db.Model(models.Invitation{}).Preload("School").Where("token = ?", token).First(&t).Error
	return t, err
}

// FindByTokenForUpdate locks the invitation row for the remainder of the
// transaction so two concurrent accepts cannot both pass the checks.
func (g *invitationRepository) FindByTokenForUpdate(tx *gorm.DB, token string) (models.Invitation, error) {
	var t models.Invitation
	err := g.GetDB(tx).Model(models.Invitation{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token = ?", token).
		First(&t).Error
	return t, err
}

// DeleteExpiredPending clears expired, never-accepted invitations for the
// given email. Expired rows are inert, so they must not hold the one open
// invitation per (school, email) slot against a re-invite.
func (g *invitationRepository) DeleteExpiredPending(tx *gorm.DB, schoolID uuid.UUID, email string) error {
	return g.GetDB(tx).
		Where("school_id = ? AND lower(email) = lower(?) AND accepted_at IS NULL AND expires_at <= now()", schoolID, email).
		Delete(&models.Invitation{}).Error
}

func (g *invitationRepository) ListBySchool(schoolID uuid.UUID) ([]models.Invitation, error) {
	var ts []models.Invitation
	err := g.db.Model(models.Invitation{}).
		Where("school_id = ?", schoolID).
		Order("created_at DESC").
		Find(&ts).Error
	return ts, err
}

func (g *invitationRepository) Save(db *gorm.DB, invitation *models.Invitation) error {
	return g.Repository.GetDB(db).Omit(clause.Associations).Save(invitation).Error
}
