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

package utils

import (
	"context"
	"time"
)

// BackoffSchedule describes an exponential backoff: InitialDelay doubles on
// every attempt, up to MaxAttempts total attempts.
type BackoffSchedule struct {
	MaxAttempts  int
	InitialDelay time.Duration
}

// DefaultBackoff matches the identity-provider boundary contract: 5 attempts
// starting at 1s, doubling.
var DefaultBackoff = BackoffSchedule{
	MaxAttempts:  5,
	InitialDelay: time.Second,
}

// Retry runs f until it succeeds, the error is not retryable according to the
// predicate, or the schedule is exhausted. The last error is returned
// unwrapped so callers can still inspect it.
func Retry[T any](ctx context.Context, schedule BackoffSchedule, retryable func(error) bool, f func() (T, error)) (T, error) {
	var zero T
	delay := schedule.InitialDelay

	var err error
	for attempt := 0; attempt < schedule.MaxAttempts; attempt++ {
		var result T
		result, err = f()
		if err == nil {
			return result, nil
		}
		if !retryable(err) {
			return zero, err
		}
		if attempt == schedule.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return zero, err
}
