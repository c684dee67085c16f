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

type session struct {
	userID       string
	email        string
	isSuperAdmin bool
}

// NewSession builds the resolved caller identity handed to the
// authorization engine.
func NewSession(userID string, email string, isSuperAdmin bool) session {
	return session{
		userID:       userID,
		email:        email,
		isSuperAdmin: isSuperAdmin,
	}
}

func (s session) GetUserID() string {
	return s.userID
}

func (s session) GetEmail() string {
	return s.email
}

func (s session) IsPlatformSuperAdmin() bool {
	return s.isSuperAdmin
}

// NoSession is the anonymous caller. It never passes any policy rule.
var NoSession = session{}
