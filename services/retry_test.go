package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetryRecoversFromTransientFailures(t *testing.T) {
	attempts := 0
	err := withRetry(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestWithRetryGivesUpAfterBoundedAttempts(t *testing.T) {
	attempts := 0
	cause := errors.New("persistent")
	err := withRetry(context.Background(), func() error {
		attempts++
		return cause
	})
	assert.Equal(t, cause, err)
	assert.Equal(t, retryAttempts, attempts)
}

func TestWithRetryStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := withRetry(ctx, func() error {
		attempts++
		return errors.New("transient")
	})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 1, attempts, "no second attempt once the caller is gone")
}
