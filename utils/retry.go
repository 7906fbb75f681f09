package utils

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds the retries of one outbound call. Each attempt runs under
// its own Timeout; the whole sequence stops when ctx is done.
type RetryPolicy struct {
	Retries         uint64
	Timeout         time.Duration
	InitialInterval time.Duration
}

func NewRetryPolicy(retries uint64, timeout time.Duration) RetryPolicy {
	return RetryPolicy{Retries: retries, Timeout: timeout, InitialInterval: 200 * time.Millisecond}
}

// Do runs op until it succeeds, returns a backoff.Permanent error, or the
// retries are spent.
func (p RetryPolicy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	b.MaxElapsedTime = 0

	attempt := func() error {
		attemptCtx := ctx
		if p.Timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, p.Timeout)
			defer cancel()
		}
		return op(attemptCtx)
	}

	return backoff.Retry(attempt, backoff.WithContext(backoff.WithMaxRetries(b, p.Retries), ctx))
}
