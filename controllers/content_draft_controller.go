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

type ContentDraftController struct {
	contentDraftService shared.ContentDraftService
}

func NewContentDraftController(contentDraftService shared.ContentDraftService) *ContentDraftController {
	return &ContentDraftController{
		contentDraftService: contentDraftService,
	}
}

func (controller *ContentDraftController) Create(ctx shared.Context) error {
	school := shared.GetSchool(ctx)
	caller := shared.GetSession(ctx)

	var req dtos.ContentDraftCreateRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	draft := transformer.ContentDraftCreateRequestToModel(req, school.GetID(), caller.GetUserID())

	if err := controller.contentDraftService.Create(ctx, &draft); err != nil {
		return translateError(err, "could not create content draft")
	}

	return ctx.JSON(200, transformer.ContentDraftModelToDTO(draft))
}

func (controller *ContentDraftController) List(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	drafts, err := controller.contentDraftService.ListBySchool(ctx, school.GetID())
	if err != nil {
		return translateError(err, "could not list content drafts")
	}

	return ctx.JSON(200, utils.Map(drafts, transformer.ContentDraftModelToDTO))
}

func (controller *ContentDraftController) Read(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	draftID, err := shared.SanitizeParam(ctx, "contentDraftID")
	if err != nil {
		return err
	}

	draft, err := controller.contentDraftService.Read(ctx, school.GetID(), draftID)
	if err != nil {
		return translateError(err, "could not read content draft")
	}

	return ctx.JSON(200, transformer.ContentDraftModelToDTO(draft))
}

func (controller *ContentDraftController) Update(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	draftID, err := shared.SanitizeParam(ctx, "contentDraftID")
	if err != nil {
		return err
	}

	var req dtos.ContentDraftPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}

	draft, err := controller.contentDraftService.Read(ctx, school.GetID(), draftID)
	if err != nil {
		return translateError(err, "could not read content draft")
	}

	if transformer.ApplyContentDraftPatchRequestToModel(req, &draft) {
		if err := controller.contentDraftService.Update(ctx, &draft, draft.Title, draft.Content); err != nil {
			return translateError(err, "could not update content draft")
		}
	}

	return ctx.JSON(200, transformer.ContentDraftModelToDTO(draft))
}

func (controller *ContentDraftController) Delete(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	draftID, err := shared.SanitizeParam(ctx, "contentDraftID")
	if err != nil {
		return err
	}

	if err := controller.contentDraftService.Delete(ctx, school.GetID(), draftID); err != nil {
		return translateError(err, "could not delete content draft")
	}

	return ctx.NoContent(200)
}
