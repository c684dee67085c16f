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

type SchoolRouter struct {
	*echo.Group
}

func NewSchoolRouter(
	sessionRouter SessionRouter,
	schoolService shared.SchoolService,
	aclProvider shared.SchoolACLProvider,
	schoolController *controllers.SchoolController,
	memberController *controllers.MemberController,
	toneProfileController *controllers.ToneProfileController,
	contentDraftController *controllers.ContentDraftController,
) SchoolRouter {
	schoolsRouter := sessionRouter.Group.Group("/schools")
	schoolsRouter.GET("/", schoolController.List)
	schoolsRouter.POST("/", schoolController.Create)

	/**
	School scoped router
	All routes below this line are scoped to a single school. The school
	middleware resolves the slug and answers 404 to non-members, so the
	existence of a school never leaks to outsiders.
	*/
	schoolRouter := schoolsRouter.Group("/:schoolSlug",
		middlewares.SchoolMiddleware(schoolService, aclProvider))

	schoolRouter.GET("/", schoolController.Read)
	schoolRouter.GET("/members/", schoolController.Members)
	schoolRouter.POST("/leave/", schoolController.Leave)

	schoolRouter.GET("/tone-profiles/", toneProfileController.List)

	// content drafts are writable by every member; the authorizer keeps
	// update and delete restricted to the draft author.
	schoolRouter.GET("/content-drafts/", contentDraftController.List)
	schoolRouter.POST("/content-drafts/", contentDraftController.Create)
	schoolRouter.GET("/content-drafts/:contentDraftID/", contentDraftController.Read)
	schoolRouter.PATCH("/content-drafts/:contentDraftID/", contentDraftController.Update)
	schoolRouter.DELETE("/content-drafts/:contentDraftID/", contentDraftController.Delete)

	adminRequired := schoolRouter.Group("", middlewares.SchoolAdminMiddleware())

	adminRequired.PATCH("/", schoolController.Update)

	adminRequired.POST("/members/", memberController.Invite)
	adminRequired.PUT("/members/:userID/", memberController.ChangeRole)
	adminRequired.DELETE("/members/:userID/", memberController.RemoveMember)

	adminRequired.GET("/invitations/", memberController.ListInvitations)
	adminRequired.DELETE("/invitations/:invitationID/", memberController.RevokeInvitation)

	adminRequired.POST("/tone-profiles/", toneProfileController.Create)
	adminRequired.PATCH("/tone-profiles/:toneProfileID/", toneProfileController.Update)
	adminRequired.DELETE("/tone-profiles/:toneProfileID/", toneProfileController.Delete)
	adminRequired.POST("/tone-profiles/:toneProfileID/activate/", toneProfileController.Activate)

	return SchoolRouter{Group: schoolRouter}
}
