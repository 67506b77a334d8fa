//go:build integration
// +build integration

package test

import (
	"testing"
	"time"

	"github.com/TambakLabs/mujairAuth/session"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newIntegrationStore(t *testing.T) (*session.Store, *redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewStore(rdb, "ms", false)

	return store, rdb, func() {
		_ = rdb.Close()
		mr.Close()
	}
}

func makeSession(username, sessionID string) *session.Session {
	now := time.Now()

	return &session.Session{
		SessionID: sessionID,
		Username:  username,
		Role:      "cashier",
		Email:     username + "@example.com",
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	}
}
