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
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/schoolvoice/schoolvoice/accesscontrol"
	"github.com/schoolvoice/schoolvoice/identity"
	"github.com/schoolvoice/schoolvoice/shared"
)

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// SessionMiddleware resolves the ory session cookie into an AuthSession.
// Requests without a valid session get NoSession; AuthRequiredMiddleware
// turns those into a 401 further down the chain.
func SessionMiddleware(identityClient shared.IdentityClient) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sessionCookie := getCookie("ory_kratos_session", ctx.Cookies())
			if sessionCookie == nil {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			unescaped, err := url.QueryUnescape(sessionCookie.String())
			if err != nil {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			ident, err := identityClient.GetIdentityFromCookie(ctx.Request().Context(), unescaped)
			if err != nil {
				// the caller might still be allowed to reach public routes
				slog.Warn("could not resolve session cookie", "err", err)
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			shared.SetSession(ctx, accesscontrol.NewSession(
				ident.Id,
				identity.EmailFromIdentity(ident),
				identity.IsSuperAdminIdentity(ident),
			))
			return next(ctx)
		}
	}
}

// AuthRequiredMiddleware rejects anonymous callers.
func AuthRequiredMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			session := shared.MaybeGetSession(ctx)
			if session == nil || session.GetUserID() == "" {
				return echo.NewHTTPError(401, "not authenticated")
			}
			return next(ctx)
		}
	}
}
