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

package services

import (
	"fmt"

	"github.com/schoolvoice/schoolvoice/database"
	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/dtos"
	"github.com/schoolvoice/schoolvoice/monitoring"
	"github.com/schoolvoice/schoolvoice/shared"
	"github.com/schoolvoice/schoolvoice/utils"
)

// AdminService is the cross-tenant query façade. Every operation resolves
// the caller, performs exactly one privilege check and then runs with
// unfiltered store access. Denied callers get an error, never an empty
// result.
type AdminService struct {
	schoolRepository       shared.SchoolRepository
	membershipRepository   shared.MembershipRepository
	toneProfileRepository  shared.ToneProfileRepository
	contentDraftRepository shared.ContentDraftRepository
	auditActionRepository  shared.AuditActionRepository
	identityClient         shared.IdentityClient
}

func NewAdminService(
	schoolRepository shared.SchoolRepository,
	membershipRepository shared.MembershipRepository,
	toneProfileRepository shared.ToneProfileRepository,
	contentDraftRepository shared.ContentDraftRepository,
	auditActionRepository shared.AuditActionRepository,
	identityClient shared.IdentityClient,
) *AdminService {
	return &AdminService{
		schoolRepository:       schoolRepository,
		membershipRepository:   membershipRepository,
		toneProfileRepository:  toneProfileRepository,
		contentDraftRepository: contentDraftRepository,
		auditActionRepository:  auditActionRepository,
		identityClient:         identityClient,
	}
}

func requireSuperAdmin(caller shared.AuthSession) error {
	if caller == nil || caller.GetUserID() == "" {
		return shared.ErrUnauthenticated
	}
	if !caller.IsPlatformSuperAdmin() {
		return shared.ErrPermissionDenied
	}
	return nil
}

func (s *AdminService) ListAllSchools(caller shared.AuthSession) ([]models.School, error) {
	if err := requireSuperAdmin(caller); err != nil {
		return nil, err
	}
	return s.schoolRepository.All()
}

// GetStatistics counts schools, distinct users, tone profiles and drafts.
// The four counts run concurrently.
func (s *AdminService) GetStatistics(caller shared.AuthSession) (dtos.AdminStatisticsDTO, error) {
	if err := requireSuperAdmin(caller); err != nil {
		return dtos.AdminStatisticsDTO{}, err
	}

	type labeledCount struct {
		label string
		count int64
	}

	errGroup := utils.ErrGroup[labeledCount](4)
	counters := map[string]func() (int64, error){
		"schools":       s.schoolRepository.CountAll,
		"users":         s.membershipRepository.CountDistinctUsers,
		"toneProfiles":  s.toneProfileRepository.CountAll,
		"contentDrafts": s.contentDraftRepository.CountAll,
	}
	for label, count := range counters {
		errGroup.Go(func() (labeledCount, error) {
			n, err := count()
			return labeledCount{label: label, count: n}, err
		})
	}

	counts, err := errGroup.WaitAndCollect()
	if err != nil {
		return dtos.AdminStatisticsDTO{}, err
	}

	var stats dtos.AdminStatisticsDTO
	for _, c := range counts {
		switch c.label {
		case "schools":
			stats.Schools = c.count
		case "users":
			stats.Users = c.count
		case "toneProfiles":
			stats.ToneProfiles = c.count
		case "contentDrafts":
			stats.ContentDrafts = c.count
		}
	}
	return stats, nil
}

// SetPlatformSuperAdmin grants or revokes the platform super-admin flag on
// the identity provider record and appends an audit action.
func (s *AdminService) SetPlatformSuperAdmin(ctx shared.Context, targetEmail string, grant bool) error {
	caller := shared.GetSession(ctx)
	if err := requireSuperAdmin(caller); err != nil {
		return err
	}

	target, err := s.identityClient.FindIdentityByEmail(ctx.Request().Context(), targetEmail)
	if err != nil {
		return err
	}

	if target.Id == caller.GetUserID() && !grant {
		return fmt.Errorf("%w: cannot revoke your own super admin flag", shared.ErrInvalidState)
	}

	if err := s.identityClient.SetSuperAdminFlag(ctx.Request().Context(), target.Id, grant); err != nil {
		return err
	}

	actionType := models.AuditActionGrantSuperAdmin
	if !grant {
		actionType = models.AuditActionRevokeSuperAdmin
	}
	monitoring.SuperAdminActionAmount.WithLabelValues(actionType).Inc()

	return s.auditActionRepository.Create(nil, &models.AuditAction{
		AdminID:        caller.GetUserID(),
		ActionType:     actionType,
		AffectedUserID: shared.Ptr(target.Id),
		Details:        database.JSONB{"email": targetEmail, "grant": grant},
	})
}

func (s *AdminService) ListAuditActions(caller shared.AuthSession, limit int) ([]models.AuditAction, error) {
	if err := requireSuperAdmin(caller); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.auditActionRepository.ListRecent(limit)
}
