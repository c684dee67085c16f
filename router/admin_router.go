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
)

type AdminRouter struct {
	*echo.Group
}

// NewAdminRouter wires the platform administration routes. Everything below
// /admin is reserved for platform super admins.
func NewAdminRouter(
	sessionRouter SessionRouter,
	adminController *controllers.AdminController,
) AdminRouter {
	adminRouter := sessionRouter.Group.Group("/admin",
		middlewares.SuperAdminMiddleware())

	adminRouter.GET("/schools/", adminController.ListAllSchools)
	adminRouter.GET("/statistics/", adminController.Statistics)
	adminRouter.POST("/super-admin/", adminController.SetSuperAdmin)
	adminRouter.GET("/audit-log/", adminController.ListAuditActions)

	return AdminRouter{Group: adminRouter}
}
