package mujairAuth

import (
	"context"
	"time"
)

// PurgeExpiredPending describes the purgeexpiredpending operation and its observable behavior.
//
// PurgeExpiredPending may return an error when input validation, dependency calls, or security checks fail.
// PurgeExpiredPending does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) PurgeExpiredPending(ctx context.Context) (int64, error) {
	if err := e.ready(); err != nil {
		return 0, err
	}

	// Expired rows are already unusable; the emailed token is the
	// authoritative expiry check. The sweep only reclaims storage.
	return e.pending.DeleteExpired(ctx, time.Now())
}
