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

package repositories

import (
	"go.uber.org/fx"

	"github.com/schoolvoice/schoolvoice/shared"
)

// Module provides all repository constructors as their interfaces.
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewSchoolRepository, fx.As(new(shared.SchoolRepository)))),
	fx.Provide(fx.Annotate(NewMembershipRepository, fx.As(new(shared.MembershipRepository)), fx.As(new(shared.MembershipDirectory)))),
	fx.Provide(fx.Annotate(NewInvitationRepository, fx.As(new(shared.InvitationRepository)))),
	fx.Provide(fx.Annotate(NewToneProfileRepository, fx.As(new(shared.ToneProfileRepository)))),
	fx.Provide(fx.Annotate(NewContentDraftRepository, fx.As(new(shared.ContentDraftRepository)))),
	fx.Provide(fx.Annotate(NewAuditActionRepository, fx.As(new(shared.AuditActionRepository)))),
)
