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
	"github.com/google/uuid"

	"github.com/schoolvoice/schoolvoice/shared"
)

// schoolACL answers membership questions for a single school. The school
// middleware attaches one to every school-scoped request.
type schoolACL struct {
	schoolID  uuid.UUID
	directory shared.MembershipDirectory
}

type schoolACLProvider struct {
	directory shared.MembershipDirectory
}

func NewSchoolACLProvider(directory shared.MembershipDirectory) *schoolACLProvider {
	return &schoolACLProvider{directory: directory}
}

func (p *schoolACLProvider) ForSchool(schoolID uuid.UUID) shared.SchoolACL {
	return &schoolACL{
		schoolID:  schoolID,
		directory: p.directory,
	}
}

func (a *schoolACL) SchoolID() uuid.UUID {
	return a.schoolID
}

func (a *schoolACL) IsMember(caller shared.AuthSession) (bool, error) {
	if caller.IsPlatformSuperAdmin() {
		return true, nil
	}
	_, ok, err := a.directory.RoleOf(nil, a.schoolID, caller.GetUserID())
	return ok, err
}

func (a *schoolACL) IsAdmin(caller shared.AuthSession) (bool, error) {
	if caller.IsPlatformSuperAdmin() {
		return true, nil
	}
	role, ok, err := a.directory.RoleOf(nil, a.schoolID, caller.GetUserID())
	if err != nil {
		return false, err
	}
	return ok && role == shared.RoleAdmin, nil
}
