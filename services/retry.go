package services

import (
	"context"
	"time"
)

// Bounded exponential backoff for idempotent remote reads. Writes are never
// retried here: a delete or range overwrite that timed out may still have
// landed, and replaying it blind can violate the single-live-file invariant.
var (
	retryAttempts  = 3
	retryBaseDelay = 200 * time.Millisecond
)

func withRetry(ctx context.Context, fn func() error) error {
	var err error
	delay := retryBaseDelay
	for attempt := 0; attempt < retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}
