package database

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ysleecn1234/newspaper-project/internal/logger"
)

const (
	retryMaxAttempts = 3
	retryInitialWait = 500 * time.Millisecond
	retryMaxInterval = 4 * time.Second
)

// withRetry runs op, retrying transient database errors with exponential
// backoff. Non-transient errors propagate immediately.
func withRetry(ctx context.Context, log logger.Interface, name string, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInitialWait
	policy.MaxInterval = retryMaxInterval

	attempt := 0
	wrapped := func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			return backoff.Permanent(err)
		}
		log.Warn("transient database error, retrying",
			"operation", name,
			"attempt", attempt,
			"error", err)
		return err
	}

	return backoff.Retry(wrapped,
		backoff.WithContext(backoff.WithMaxRetries(policy, retryMaxAttempts), ctx))
}
