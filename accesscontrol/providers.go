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

package accesscontrol

import (
	"go.uber.org/fx"

	"github.com/schoolvoice/schoolvoice/shared"
)

var AccessControlModule = fx.Options(
	fx.Provide(fx.Annotate(NewAuthorizer, fx.As(new(shared.Authorizer)))),
	fx.Provide(fx.Annotate(NewSchoolACLProvider, fx.As(new(shared.SchoolACLProvider)))),
)
