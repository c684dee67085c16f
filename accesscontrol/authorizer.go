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

package accesscontrol

import (
	"fmt"
	"strings"

	"github.com/schoolvoice/schoolvoice/monitoring"
	"github.com/schoolvoice/schoolvoice/shared"
)

// authorizer is the row-level policy engine. Every predicate is built only
// from already-resolved facts: the caller's own identity, the membership
// directory side-channel and the platform super-admin flag. The directory
// reads the membership table directly, so no rule ever re-enters the engine.
type authorizer struct {
	directory shared.MembershipDirectory
}

func NewAuthorizer(directory shared.MembershipDirectory) *authorizer {
	return &authorizer{directory: directory}
}

// Decide returns nil for ALLOW. A denied read returns ErrNotFound so that
// row existence is never leaked; a denied mutation of a row the caller can
// already see returns ErrPermissionDenied.
func (a *authorizer) Decide(tx shared.DB, caller shared.AuthSession, entity shared.Entity, action shared.Action, row shared.RowFacts) error {
	allowed, err := a.evaluate(tx, caller, entity, action, row)
	if err != nil {
		return err
	}

	outcome := "allow"
	if !allowed {
		outcome = "deny"
	}
	monitoring.AuthzDecisionAmount.WithLabelValues(string(entity), string(action), outcome).Inc()

	if allowed {
		return nil
	}
	if action == shared.ActionRead {
		return shared.ErrNotFound
	}
	return shared.ErrPermissionDenied
}

func (a *authorizer) evaluate(tx shared.DB, caller shared.AuthSession, entity shared.Entity, action shared.Action, row shared.RowFacts) (bool, error) {
	if caller == nil || caller.GetUserID() == "" {
		return false, shared.ErrUnauthenticated
	}
	if caller.IsPlatformSuperAdmin() {
		return true, nil
	}

	switch entity {
	case shared.EntitySchool:
		return a.evaluateSchool(tx, caller, action, row)
	case shared.EntityMembership:
		return a.evaluateMembership(tx, caller, action, row)
	case shared.EntityInvitation:
		return a.evaluateInvitation(tx, caller, action, row)
	case shared.EntityToneProfile:
		return a.evaluateToneProfile(tx, caller, action, row)
	case shared.EntityContentDraft:
		return a.evaluateContentDraft(tx, caller, action, row)
	default:
		return false, fmt.Errorf("unknown entity %q", entity)
	}
}

func (a *authorizer) evaluateSchool(tx shared.DB, caller shared.AuthSession, action shared.Action, row shared.RowFacts) (bool, error) {
	switch action {
	case shared.ActionRead:
		return a.isMember(tx, caller, row)
	case shared.ActionCreate:
		// registration is open to any authenticated caller
		return true, nil
	case shared.ActionUpdate:
		return a.isAdmin(tx, caller, row)
	case shared.ActionDelete:
		// no policy: schools are never deleted through the engine
		return false, nil
	}
	return false, nil
}

func (a *authorizer) evaluateMembership(tx shared.DB, caller shared.AuthSession, action shared.Action, row shared.RowFacts) (bool, error) {
	switch action {
	case shared.ActionRead:
		if row.UserID == caller.GetUserID() {
			return true, nil
		}
		return a.isAdmin(tx, caller, row)
	case shared.ActionCreate:
		// bootstrap rule: the caller may claim the first-admin slot of a
		// school that has no members yet; otherwise only an existing admin
		// may add members.
		if row.UserID == caller.GetUserID() && row.NewRole == shared.RoleAdmin {
			hasMembers, err := a.directory.HasAnyMembership(tx, row.SchoolID)
			if err != nil {
				return false, err
			}
			if !hasMembers {
				return true, nil
			}
		}
		return a.isAdmin(tx, caller, row)
	case shared.ActionUpdate, shared.ActionDelete:
		// self-protection: admins never mutate their own membership row
		// through the member-management path.
		if row.UserID == caller.GetUserID() {
			return false, nil
		}
		return a.isAdmin(tx, caller, row)
	}
	return false, nil
}

func (a *authorizer) evaluateInvitation(tx shared.DB, caller shared.AuthSession, action shared.Action, row shared.RowFacts) (bool, error) {
	switch action {
	case shared.ActionRead:
		if row.Email != "" && strings.EqualFold(row.Email, caller.GetEmail()) {
			return true, nil
		}
		return a.isAdmin(tx, caller, row)
	case shared.ActionCreate, shared.ActionDelete:
		return a.isAdmin(tx, caller, row)
	case shared.ActionUpdate:
		// invitations are immutable
		return false, nil
	}
	return false, nil
}

func (a *authorizer) evaluateToneProfile(tx shared.DB, caller shared.AuthSession, action shared.Action, row shared.RowFacts) (bool, error) {
	switch action {
	case shared.ActionRead:
		return a.isMember(tx, caller, row)
	case shared.ActionCreate, shared.ActionUpdate, shared.ActionDelete:
		return a.isAdmin(tx, caller, row)
	}
	return false, nil
}

func (a *authorizer) evaluateContentDraft(tx shared.DB, caller shared.AuthSession, action shared.Action, row shared.RowFacts) (bool, error) {
	switch action {
	case shared.ActionRead:
		return a.isMember(tx, caller, row)
	case shared.ActionCreate:
		if row.UserID != caller.GetUserID() {
			return false, nil
		}
		return a.isMember(tx, caller, row)
	case shared.ActionUpdate:
		if row.UserID != caller.GetUserID() {
			return false, nil
		}
		return a.isMember(tx, caller, row)
	case shared.ActionDelete:
		return row.UserID == caller.GetUserID(), nil
	}
	return false, nil
}

func (a *authorizer) isMember(tx shared.DB, caller shared.AuthSession, row shared.RowFacts) (bool, error) {
	_, ok, err := a.directory.RoleOf(tx, row.SchoolID, caller.GetUserID())
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (a *authorizer) isAdmin(tx shared.DB, caller shared.AuthSession, row shared.RowFacts) (bool, error) {
	role, ok, err := a.directory.RoleOf(tx, row.SchoolID, caller.GetUserID())
	if err != nil {
		return false, err
	}
	return ok && role == shared.RoleAdmin, nil
}
