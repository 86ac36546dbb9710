package services

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/logging"
)

const maxRetryDelay = 10 * time.Minute

// retryPolicy doubles delay after each failed attempt, without jitter,
// and stops after attempts calls or when ctx ends
func retryPolicy(ctx context.Context, attempts int, delay time.Duration) backoff.BackOff {
	exp := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(delay),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0),
		backoff.WithMaxInterval(maxRetryDelay),
		backoff.WithMaxElapsedTime(0),
	)
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts-1)), ctx)
}

// WithRetry calls fn up to attempts times, doubling delay between tries.
// Only retryable failures (unreachable network, server errors) are retried;
// the service itself never retries.
func WithRetry[T any](ctx context.Context, attempts int, delay time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	if attempts < 1 {
		attempts = 1
	}

	attempt := 0
	operation := func() (T, error) {
		attempt++
		value, err := fn(ctx)
		if err != nil && !errclass.Retryable(err) {
			return value, backoff.Permanent(err)
		}
		return value, err
	}
	notify := func(err error, wait time.Duration) {
		logging.Logger.Info("Retrying", "attempt", attempt+1, "of", attempts, "after", wait, "error", err)
	}

	return backoff.RetryNotifyWithData(operation, retryPolicy(ctx, attempts, delay), notify)
}
