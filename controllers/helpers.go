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
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/schoolvoice/schoolvoice/shared"
)

// translateError maps taxonomy errors to their status code; anything else
// becomes an opaque 500 with the given message.
func translateError(err error, fallback string) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}
	if shared.IsTaxonomyError(err) {
		return echo.NewHTTPError(shared.HTTPStatus(err), err.Error()).WithInternal(err)
	}
	return echo.NewHTTPError(500, fallback).WithInternal(err)
}
