//go:build integration
// +build integration

package test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestStoreConsistencyAbsoluteLifetimeCap(t *testing.T) {
	ctx := context.Background()
	store, _, cleanup := newIntegrationStore(t)
	defer cleanup()

	sess := makeSession("budi", "sid-cap")
	sess.CreatedAt = time.Now().Add(-2 * time.Hour).Unix()
	sess.ExpiresAt = time.Now().Add(time.Hour).Unix()
	if err := store.Save(ctx, sess, time.Hour); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// The stored expiry is still in the future, but the configured absolute
	// lifetime measured from CreatedAt has already passed.
	if _, err := store.Get(ctx, "sid-cap", time.Hour); !errors.Is(err, redis.Nil) {
		t.Fatalf("expected redis.Nil past the absolute lifetime, got %v", err)
	}

	// The username index entry is reclaimed along with the session key.
	ids, err := store.ActiveSessionIDs(ctx, "budi")
	if err != nil {
		t.Fatalf("ActiveSessionIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected empty index after reclaim, got %d entries", len(ids))
	}
}

func TestStoreConsistencyGetKeepsLiveSession(t *testing.T) {
	ctx := context.Background()
	store, _, cleanup := newIntegrationStore(t)
	defer cleanup()

	sess := makeSession("wati", "sid-live")
	if err := store.Save(ctx, sess, time.Hour); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		got, err := store.Get(ctx, "sid-live", time.Hour)
		if err != nil {
			t.Fatalf("Get %d failed: %v", i, err)
		}
		if got.Username != "wati" {
			t.Fatalf("Get %d returned username %q", i, got.Username)
		}
	}
}
