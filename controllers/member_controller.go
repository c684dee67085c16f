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

type MemberController struct {
	membershipService shared.MembershipService
}

func NewMemberController(membershipService shared.MembershipService) *MemberController {
	return &MemberController{
		membershipService: membershipService,
	}
}

func (controller *MemberController) Invite(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	var req dtos.InviteMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	role, err := shared.ParseRole(req.Role)
	if err != nil {
		return translateError(err, "invalid role")
	}

	invitation, err := controller.membershipService.InviteMember(ctx, school.GetID(), req.Email, role)
	if err != nil {
		return translateError(err, "could not create invitation")
	}

	return ctx.JSON(200, transformer.InvitationModelToCreatedDTO(invitation))
}

func (controller *MemberController) AcceptInvitation(ctx shared.Context) error {
	var req dtos.AcceptInvitationRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	school, err := controller.membershipService.AcceptInvitation(ctx, req.Token)
	if err != nil {
		return translateError(err, "could not accept invitation")
	}

	return ctx.JSON(200, transformer.SchoolModelToDTO(school))
}

func (controller *MemberController) ListInvitations(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	invitations, err := controller.membershipService.ListInvitations(ctx, school.GetID())
	if err != nil {
		return translateError(err, "could not list invitations")
	}

	return ctx.JSON(200, utils.Map(invitations, transformer.InvitationModelToDTO))
}

func (controller *MemberController) RevokeInvitation(ctx shared.Context) error {
	school := shared.GetSchool(ctx)

	invitationID, err := shared.SanitizeParam(ctx, "invitationID")
	if err != nil {
		return err
	}

	if err := controller.membershipService.RevokeInvitation(ctx, school.GetID(), invitationID); err != nil {
		return translateError(err, "could not revoke invitation")
	}

	return ctx.NoContent(200)
}

func (controller *MemberController) ChangeRole(ctx shared.Context) error {
	school := shared.GetSchool(ctx)
	targetUserID := ctx.Param("userID")
	if targetUserID == "" {
		return echo.NewHTTPError(400, "userID parameter is missing")
	}

	var req dtos.ChangeRoleRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}

	role, err := shared.ParseRole(req.Role)
	if err != nil {
		return translateError(err, "invalid role")
	}

	if err := controller.membershipService.ChangeRole(ctx, school.GetID(), targetUserID, role); err != nil {
		return translateError(err, "could not change role")
	}

	return ctx.NoContent(200)
}

func (controller *MemberController) RemoveMember(ctx shared.Context) error {
	school := shared.GetSchool(ctx)
	targetUserID := ctx.Param("userID")
	if targetUserID == "" {
		return echo.NewHTTPError(400, "userID parameter is missing")
	}

	if err := controller.membershipService.RemoveMember(ctx, school.GetID(), targetUserID); err != nil {
		return translateError(err, "could not remove member")
	}

	return ctx.NoContent(200)
}
