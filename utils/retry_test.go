package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	qt "github.com/frankban/quicktest"
)

func TestRetryPolicy(t *testing.T) {
	errFlaky := errors.New("flaky")
	policy := RetryPolicy{Retries: 2, Timeout: time.Second, InitialInterval: time.Millisecond}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		c := qt.New(t)
		calls := 0
		err := policy.Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errFlaky
			}
			return nil
		})
		c.Assert(err, qt.IsNil)
		c.Assert(calls, qt.Equals, 3)
	})

	t.Run("gives up after the bound", func(t *testing.T) {
		c := qt.New(t)
		calls := 0
		err := policy.Do(context.Background(), func(context.Context) error {
			calls++
			return errFlaky
		})
		c.Assert(err, qt.ErrorIs, errFlaky)
		c.Assert(calls, qt.Equals, 3)
	})

	t.Run("permanent errors stop immediately", func(t *testing.T) {
		c := qt.New(t)
		calls := 0
		err := policy.Do(context.Background(), func(context.Context) error {
			calls++
			return backoff.Permanent(errFlaky)
		})
		c.Assert(err, qt.ErrorIs, errFlaky)
		c.Assert(calls, qt.Equals, 1)
	})

	t.Run("each attempt gets a deadline", func(t *testing.T) {
		c := qt.New(t)
		short := RetryPolicy{Retries: 0, Timeout: 10 * time.Millisecond}
		err := short.Do(context.Background(), func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})
		c.Assert(err, qt.ErrorIs, context.DeadlineExceeded)
	})
}
