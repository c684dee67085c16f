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

	"github.com/labstack/echo/v4"

	"github.com/schoolvoice/schoolvoice/dtos"
	"github.com/schoolvoice/schoolvoice/shared"
	"github.com/schoolvoice/schoolvoice/transformer"
	"github.com/schoolvoice/schoolvoice/utils"
)

type SchoolController struct {
	schoolService     shared.SchoolService
	membershipService shared.MembershipService
}

func NewSchoolController(schoolService shared.SchoolService, membershipService shared.MembershipService) *SchoolController {
	return &SchoolController{
		schoolService:     schoolService,
		membershipService: membershipService,
	}
}

func (controller *SchoolController) Create(ctx shared.Context) error {
	var req dtos.SchoolCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	school := transformer.SchoolCreateRequestToModel(req)

	if err := controller.schoolService.CreateSchool(ctx, &school); err != nil {
		return translateError(err, "could not create school")
	}

	return ctx.JSON(200, transformer.SchoolModelToDTO(school))
}

func (controller *SchoolController) List(ctx shared.Context) error {
	caller := shared.GetSession(ctx)

	schools, err := controller.schoolService.ListSchoolsForCaller(caller)
	if err != nil {
		return translateError(err, "could not list schools")
	}

	return ctx.JSON(200, utils.Map(schools, transformer.SchoolModelToDTO))
}

func (controller *SchoolController) Read(ctx shared.Context) error {
	school := shared.GetSchool(ctx)
	return ctx.JSON(200, transformer.SchoolModelToDTO(school))
}

func (controller *SchoolController) Update(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	var patchRequest dtos.SchoolPatchRequest
	if err := ctx.Bind(&patchRequest); err != nil {
		return echo.NewHTTPError(400, "could not decode request").WithInternal(err)
	}

	updated := transformer.ApplySchoolPatchRequestToModel(patchRequest, &school)
	if school.Name == "" {
		return echo.NewHTTPError(409, "schools with an empty name are not allowed")
	}

	if updated {
		if err := controller.schoolService.UpdateSchool(ctx, &school); err != nil {
			return translateError(err, "could not update school")
		}
	}

	return ctx.JSON(200, transformer.SchoolModelToDTO(school))
}

func (controller *SchoolController) Members(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	members, err := controller.membershipService.ListMembers(ctx, school.GetID())
	if err != nil {
		return translateError(err, "could not get members of school")
	}

	return ctx.JSON(200, members)
}

func (controller *SchoolController) Leave(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	if err := controller.membershipService.LeaveSchool(ctx, school.GetID()); err != nil {
		return translateError(err, "could not leave school")
	}

	return ctx.NoContent(200)
}

func (controller *SchoolController) WhoAmI(ctx shared.Context) error {
	caller := shared.GetSession(ctx)
	return ctx.JSON(200, dtos.WhoAmIDTO{
		UserID:       caller.GetUserID(),
		Email:        caller.GetEmail(),
		IsSuperAdmin: caller.IsPlatformSuperAdmin(),
	})
}
