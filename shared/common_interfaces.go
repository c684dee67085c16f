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

package shared

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	client "github.com/ory/client-go"

	"github.com/schoolvoice/schoolvoice/database/models"
	"github.com/schoolvoice/schoolvoice/dtos"
	"github.com/schoolvoice/schoolvoice/utils"
)

// AuthSession is the resolved caller identity for a single request. It is
// supplied by the identity provider and treated as ground truth by the
// authorization engine.
type AuthSession interface {
	GetUserID() string
	GetEmail() string
	IsPlatformSuperAdmin() bool
}

// Role is the closed set of per-school roles. Raw strings from requests must
// pass ParseRole before they reach the authorization engine.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleMember:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidState, s)
	}
}

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Entity string

const (
	EntitySchool       Entity = "school"
	EntityMembership   Entity = "membership"
	EntityInvitation   Entity = "invitation"
	EntityToneProfile  Entity = "tone_profile"
	EntityContentDraft Entity = "content_draft"
)

// RowFacts are the already-resolved facts about a target row the
// authorization engine is allowed to consult. Nothing in here is derived by
// re-entering the policy chain.
type RowFacts struct {
	SchoolID uuid.UUID
	// UserID is the row's subject (membership holder, draft author). Empty
	// when the entity has no per-user owner.
	UserID string
	// Email is only set for invitation rows.
	Email string
	// NewRole is only set for membership INSERT/UPDATE decisions.
	NewRole Role
}

// Authorizer is the row-level policy engine. Decide returns nil for ALLOW,
// ErrNotFound for a denied read and ErrPermissionDenied for a denied
// mutation.
type Authorizer interface {
	Decide(tx DB, caller AuthSession, entity Entity, action Action, row RowFacts) error
}

// MembershipDirectory is the side-channel membership fact lookup. It reads
// the membership table directly with store privileges and must never consult
// the Authorizer, which is what keeps policy evaluation non-recursive.
type MembershipDirectory interface {
	RoleOf(tx DB, schoolID uuid.UUID, userID string) (Role, bool, error)
	HasAnyMembership(tx DB, schoolID uuid.UUID) (bool, error)
}

// SchoolACL answers membership questions for a single school. Handed to
// request contexts by the school middleware.
type SchoolACL interface {
	SchoolID() uuid.UUID
	IsMember(caller AuthSession) (bool, error)
	IsAdmin(caller AuthSession) (bool, error)
}

type SchoolACLProvider interface {
	ForSchool(schoolID uuid.UUID) SchoolACL
}

// IdentityClient wraps the identity provider admin API. User records (email,
// display name, super-admin flag) live there, outside the entity store.
type IdentityClient interface {
	GetIdentity(ctx context.Context, userID string) (client.Identity, error)
	GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error)
	RefreshSession(ctx context.Context, cookie string) (client.Identity, error)
	ListIdentities(ctx context.Context, ids []string) ([]client.Identity, error)
	FindIdentityByEmail(ctx context.Context, email string) (*client.Identity, error)
	SetSuperAdminFlag(ctx context.Context, userID string, isSuperAdmin bool) error
}

type SchoolRepository interface {
	utils.Repository[uuid.UUID, models.School, DB]
	ReadBySlug(slug string) (models.School, error)
	CountAll() (int64, error)
}

type MembershipRepository interface {
	utils.Repository[uuid.UUID, models.Membership, DB]
	FindBySchoolAndUser(tx DB, schoolID uuid.UUID, userID string) (models.Membership, error)
	ListBySchool(schoolID uuid.UUID) ([]models.Membership, error)
	ListByUser(userID string) ([]models.Membership, error)
	CountBySchool(tx DB, schoolID uuid.UUID) (int64, error)
	ListAdminsForUpdate(tx DB, schoolID uuid.UUID) ([]models.Membership, error)
	CountDistinctUsers() (int64, error)
}

type InvitationRepository interface {
	utils.Repository[uuid.UUID, models.Invitation, DB]
	FindByToken(token string) (models.Invitation, error)
	FindByTokenForUpdate(tx DB, token string) (models.Invitation, error)
	DeleteExpiredPending(tx DB, schoolID uuid.UUID, email string) error
	ListBySchool(schoolID uuid.UUID) ([]models.Invitation, error)
}

type ToneProfileRepository interface {
	utils.Repository[uuid.UUID, models.ToneProfile, DB]
	ListBySchool(schoolID uuid.UUID) ([]models.ToneProfile, error)
	DeactivateOthers(tx DB, schoolID uuid.UUID, keepID uuid.UUID) error
	CountAll() (int64, error)
}

type ContentDraftRepository interface {
	utils.Repository[uuid.UUID, models.ContentDraft, DB]
	ListBySchool(schoolID uuid.UUID) ([]models.ContentDraft, error)
	CountAll() (int64, error)
}

type AuditActionRepository interface {
	Create(tx DB, action *models.AuditAction) error
	ListRecent(limit int) ([]models.AuditAction, error)
}

type SchoolService interface {
	// CreateSchool creates the school and the caller's first-admin
	// membership in one transaction.
	CreateSchool(ctx Context, school *models.School) error
	ReadBySlug(slug string) (models.School, error)
	ListSchoolsForCaller(caller AuthSession) ([]models.School, error)
	UpdateSchool(ctx Context, school *models.School) error
}

type MembershipService interface {
	InviteMember(ctx Context, schoolID uuid.UUID, email string, role Role) (models.Invitation, error)
	AcceptInvitation(ctx Context, token string) (models.School, error)
	RevokeInvitation(ctx Context, schoolID uuid.UUID, invitationID uuid.UUID) error
	ListInvitations(ctx Context, schoolID uuid.UUID) ([]models.Invitation, error)
	ListMembers(ctx Context, schoolID uuid.UUID) ([]dtos.UserDTO, error)
	ChangeRole(ctx Context, schoolID uuid.UUID, targetUserID string, role Role) error
	RemoveMember(ctx Context, schoolID uuid.UUID, targetUserID string) error
	LeaveSchool(ctx Context, schoolID uuid.UUID) error
}

type ToneProfileService interface {
	Create(ctx Context, profile *models.ToneProfile) error
	Update(ctx Context, profile *models.ToneProfile) error
	Delete(ctx Context, schoolID uuid.UUID, profileID uuid.UUID) error
	ListBySchool(ctx Context, schoolID uuid.UUID) ([]models.ToneProfile, error)
	SetActive(ctx Context, schoolID uuid.UUID, profileID uuid.UUID) error
}

type ContentDraftService interface {
	Create(ctx Context, draft *models.ContentDraft) error
	Update(ctx Context, draft *models.ContentDraft, title string, content string) error
	Delete(ctx Context, schoolID uuid.UUID, draftID uuid.UUID) error
	Read(ctx Context, schoolID uuid.UUID, draftID uuid.UUID) (models.ContentDraft, error)
	ListBySchool(ctx Context, schoolID uuid.UUID) ([]models.ContentDraft, error)
}

// AdminService is the cross-tenant query façade. Every operation performs
// exactly one privilege check and then executes with unfiltered store access.
type AdminService interface {
	ListAllSchools(caller AuthSession) ([]models.School, error)
	GetStatistics(caller AuthSession) (dtos.AdminStatisticsDTO, error)
	SetPlatformSuperAdmin(ctx Context, targetEmail string, grant bool) error
	ListAuditActions(caller AuthSession, limit int) ([]models.AuditAction, error)
}
