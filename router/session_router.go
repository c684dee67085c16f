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

package router

import (
	"github.com/labstack/echo/v4"
	"github.com/schoolvoice/schoolvoice/controllers"
	"github.com/schoolvoice/schoolvoice/middlewares"
	"github.com/schoolvoice/schoolvoice/shared"
)

type SessionRouter struct {
	*echo.Group
}

// NewSessionRouter groups every route that requires an authenticated caller.
// The session middleware resolves the ory kratos cookie; the auth middleware
// rejects anonymous requests.
func NewSessionRouter(
	apiV1Router APIV1Router,
	identityClient shared.IdentityClient,
	schoolController *controllers.SchoolController,
	memberController *controllers.MemberController,
) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("",
		middlewares.SessionMiddleware(identityClient),
		middlewares.AuthRequiredMiddleware(),
	)

	sessionRouter.GET("/whoami/", schoolController.WhoAmI)
	sessionRouter.POST("/accept-invitation/", memberController.AcceptInvitation)

	return SessionRouter{
		Group: sessionRouter,
	}
}
