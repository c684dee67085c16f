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
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/schoolvoice/schoolvoice/database/models"
)

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

// MaybeGetSession returns the session if the session middleware ran, nil
// otherwise. Handlers behind the session middleware should use GetSession.
func MaybeGetSession(ctx Context) AuthSession {
	session, ok := ctx.Get("session").(AuthSession)
	if !ok {
		return nil
	}
	return session
}

func GetSchool(ctx Context) models.School {
	return ctx.Get("school").(models.School)
}

func SetSchool(ctx Context, school models.School) {
	ctx.Set("school", school)
}

func GetSchoolACL(ctx Context) SchoolACL {
	return ctx.Get("schoolACL").(SchoolACL)
}

func SetSchoolACL(ctx Context, acl SchoolACL) {
	ctx.Set("schoolACL", acl)
}

func GetSchoolSlug(ctx Context) (string, error) {
	slug := ctx.Param("schoolSlug")
	if slug == "" {
		return "", echo.NewHTTPError(400, "schoolSlug parameter is missing")
	}
	return slug, nil
}

// SanitizeParam parses a uuid path parameter, rejecting anything that is not
// a well-formed uuid before it can reach a query.
func SanitizeParam(ctx Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, name+" parameter is not a valid uuid").WithInternal(err)
	}
	return id, nil
}
