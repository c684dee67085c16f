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

package tests

import (
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/schoolvoice/schoolvoice/accesscontrol"
	"github.com/schoolvoice/schoolvoice/shared"
)

func NewContext(r *http.Request, w http.ResponseWriter) shared.Context {
	app := echo.New()
	return app.NewContext(r, w)
}

// SessionContext builds a fresh request context carrying the given caller.
// Concurrent callers each need their own: echo contexts are not shared
// between goroutines.
func SessionContext(userID string, email string) shared.Context {
	ctx := NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
	shared.SetSession(ctx, accesscontrol.NewSession(userID, email, false))
	return ctx
}
