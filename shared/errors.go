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

package shared

import "errors"

// The error taxonomy every layer below HTTP speaks. Services and the
// authorization engine translate store and identity-provider failures into
// exactly one of these; controllers map them to status codes uniformly.
//
// A denied SELECT is reported as ErrNotFound so row existence is never
// confirmed to callers without access. A denied mutation of a row the caller
// can already see is reported as ErrPermissionDenied.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrInvalidState     = errors.New("invalid state")
	ErrUnavailable      = errors.New("unavailable")
)

// HTTPStatus returns the status code for a taxonomy error, or 500 for
// anything outside the taxonomy.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return 401
	case errors.Is(err, ErrPermissionDenied):
		return 403
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrConflict):
		return 409
	case errors.Is(err, ErrInvalidState):
		return 422
	case errors.Is(err, ErrUnavailable):
		return 503
	default:
		return 500
	}
}

// IsTaxonomyError reports whether err carries one of the sentinel errors
// above, i.e. whether it is safe to surface its message to the caller.
func IsTaxonomyError(err error) bool {
	return HTTPStatus(err) != 500
}
