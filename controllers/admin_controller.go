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

package controllers

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/schoolvoice/schoolvoice/dtos"
	"github.com/schoolvoice/schoolvoice/shared"
	"github.com/schoolvoice/schoolvoice/transformer"
	"github.com/schoolvoice/schoolvoice/utils"
)

type AdminController struct {
	adminService shared.AdminService
}

func NewAdminController(adminService shared.AdminService) *AdminController {
	return &AdminController{
		adminService: adminService,
	}
}

func (controller *AdminController) ListAllSchools(ctx shared.Context) error {
	caller := shared.GetSession(ctx)

	schools, err := controller.adminService.ListAllSchools(caller)
	if err != nil {
		return translateError(err, "could not list schools")
	}

	return ctx.JSON(200, utils.Map(schools, transformer.SchoolModelToDTO))
}

func (controller *AdminController) Statistics(ctx shared.Context) error {
	caller := shared.GetSession(ctx)

	stats, err := controller.adminService.GetStatistics(caller)
	if err != nil {
		return translateError(err, "could not get statistics")
	}

	return ctx.JSON(200, stats)
}

func (controller *AdminController) SetSuperAdmin(ctx shared.Context) error {
	var req dtos.SetSuperAdminRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	if err := controller.adminService.SetPlatformSuperAdmin(ctx, req.Email, req.Grant); err != nil {
		return translateError(err, "could not update super admin flag")
	}

	return ctx.NoContent(200)
}

func (controller *AdminController) ListAuditActions(ctx shared.Context) error {
	caller := shared.GetSession(ctx)

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	actions, err := controller.adminService.ListAuditActions(caller, limit)
	if err != nil {
		return translateError(err, "could not list audit actions")
	}

	return ctx.JSON(200, utils.Map(actions, transformer.AuditActionModelToDTO))
}
