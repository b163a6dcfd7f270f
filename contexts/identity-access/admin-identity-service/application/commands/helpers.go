package commands

import (
	"context"
	"time"
)

const (
	minUsernameLength = 3
	minSecretLength   = 6

	defaultStoreTimeout = 5 * time.Second
)

// storeCall bounds a single store/provider call. No store call may block
// past the configured timeout; a timeout surfaces as that store's error.
func storeCall(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
