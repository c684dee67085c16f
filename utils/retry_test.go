package utils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTransient = fmt.Errorf("transient")

func TestRetry(t *testing.T) {
	fastBackoff := BackoffSchedule{MaxAttempts: 3, InitialDelay: time.Millisecond}
	always := func(error) bool { return true }

	t.Run("returns the first success", func(t *testing.T) {
		calls := 0
		result, err := Retry(context.Background(), fastBackoff, always, func() (string, error) {
			calls++
			if calls < 2 {
				return "", errTransient
			}
			return "ok", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up after the schedule is exhausted", func(t *testing.T) {
		calls := 0
		_, err := Retry(context.Background(), fastBackoff, always, func() (string, error) {
			calls++
			return "", errTransient
		})
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry non-retryable errors", func(t *testing.T) {
		calls := 0
		_, err := Retry(context.Background(), fastBackoff, func(error) bool { return false }, func() (string, error) {
			calls++
			return "", errTransient
		})
		assert.ErrorIs(t, err, errTransient)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := Retry(ctx, BackoffSchedule{MaxAttempts: 5, InitialDelay: time.Minute}, always, func() (string, error) {
			return "", errTransient
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
