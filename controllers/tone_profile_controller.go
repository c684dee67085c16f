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

type ToneProfileController struct {
	toneProfileService shared.ToneProfileService
	toneProfileRepo    shared.ToneProfileRepository
}

func NewToneProfileController(toneProfileService shared.ToneProfileService, toneProfileRepo shared.ToneProfileRepository) *ToneProfileController {
	return &ToneProfileController{
		toneProfileService: toneProfileService,
		toneProfileRepo:    toneProfileRepo,
	}
}

func (controller *ToneProfileController) Create(ctx shared.Context) error {
	school := shared.GetSchool(ctx)
	caller := shared.GetSession(ctx)

	var req dtos.ToneProfileCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	profile := transformer.ToneProfileCreateRequestToModel(req, school.GetID(), caller.GetUserID())

	if err := controller.toneProfileService.Create(ctx, &profile); err != nil {
		return translateError(err, "could not create tone profile")
	}

	return ctx.JSON(200, transformer.ToneProfileModelToDTO(profile))
}

func (controller *ToneProfileController) List(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	profiles, err := controller.toneProfileService.ListBySchool(ctx, school.GetID())
	if err != nil {
		return translateError(err, "could not list tone profiles")
	}

	return ctx.JSON(200, utils.Map(profiles, transformer.ToneProfileModelToDTO))
}

func (controller *ToneProfileController) Update(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	profileID, err := shared.SanitizeParam(ctx, "toneProfileID")
	if err != nil {
		return err
	}

	var req dtos.ToneProfilePatchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	profile, err := controller.toneProfileRepo.Read(profileID)
	if err != nil || profile.SchoolID != school.GetID() {
		return echo.NewHTTPError(404, "tone profile not found")
	}

	if transformer.ApplyToneProfilePatchRequestToModel(req, &profile) {
		if err := controller.toneProfileService.Update(ctx, &profile); err != nil {
			return translateError(err, "could not update tone profile")
		}
	}

	return ctx.JSON(200, transformer.ToneProfileModelToDTO(profile))
}

func (controller *ToneProfileController) Delete(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	profileID, err := shared.SanitizeParam(ctx, "toneProfileID")
	if err != nil {
		return err
	}

	if err := controller.toneProfileService.Delete(ctx, school.GetID(), profileID); err != nil {
		return translateError(err, "could not delete tone profile")
	}

	return ctx.NoContent(200)
}

func (controller *ToneProfileController) Activate(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	profileID, err := shared.SanitizeParam(ctx, "toneProfileID")
	if err != nil {
		return err
	}

	if err := controller.toneProfileService.SetActive(ctx, school.GetID(), profileID); err != nil {
		return translateError(err, "could not activate tone profile")
	}

	return ctx.NoContent(200)
}
