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

package middlewares

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/schoolvoice/schoolvoice/shared"
)

// SchoolMiddleware resolves the schoolSlug path parameter, attaches the
// school and its ACL to the context and hides the school's existence from
// non-members: any caller without a membership gets a plain 404.
func SchoolMiddleware(schoolService shared.SchoolService, aclProvider shared.SchoolACLProvider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			slug, err := shared.GetSchoolSlug(ctx)
			if err != nil {
				return err
			}

			school, err := schoolService.ReadBySlug(slug)
			if err != nil {
				return echo.NewHTTPError(404, "could not find school").WithInternal(err)
			}

			acl := aclProvider.ForSchool(school.GetID())
			caller := shared.GetSession(ctx)

			member, err := acl.IsMember(caller)
			if err != nil {
				return echo.NewHTTPError(500, "could not determine membership").WithInternal(err)
			}
			if !member {
				slog.Warn("denied school access", "slug", slug, "user", caller.GetUserID())
				return echo.NewHTTPError(404, "could not find school")
			}

			shared.SetSchool(ctx, school)
			shared.SetSchoolACL(ctx, acl)
			return next(ctx)
		}
	}
}

// SchoolAdminMiddleware guards admin-only school routes. The caller is
// already known to be a member, so a denied mutation path is a 403.
func SchoolAdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			acl := shared.GetSchoolACL(ctx)
			caller := shared.GetSession(ctx)

			admin, err := acl.IsAdmin(caller)
			if err != nil {
				return echo.NewHTTPError(500, "could not determine role").WithInternal(err)
			}
			if !admin {
				return echo.NewHTTPError(403, "school admin role required")
			}
			return next(ctx)
		}
	}
}

// SuperAdminMiddleware guards the platform admin routes.
func SuperAdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			caller := shared.GetSession(ctx)
			if !caller.IsPlatformSuperAdmin() {
				return echo.NewHTTPError(403, "platform super admin role required")
			}
			return next(ctx)
		}
	}
}
