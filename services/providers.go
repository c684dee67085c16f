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

package services

import (
	"go.uber.org/fx"

	"github.com/schoolvoice/schoolvoice/shared"
)

var ServiceModule = fx.Options(
	fx.Provide(fx.Annotate(NewSchoolService, fx.As(new(shared.SchoolService)))),
	fx.Provide(fx.Annotate(NewMembershipService, fx.As(new(shared.MembershipService)))),
	fx.Provide(fx.Annotate(NewToneProfileService, fx.As(new(shared.ToneProfileService)))),
	fx.Provide(fx.Annotate(NewContentDraftService, fx.As(new(shared.ContentDraftService)))),
	fx.Provide(fx.Annotate(NewAdminService, fx.As(new(shared.AdminService)))),
)
