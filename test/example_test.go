package test

import (
	"context"
	"time"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/mailer"
	"github.com/redis/go-redis/v9"
)

// ExampleNew demonstrates engine construction with production-style dependencies.
func ExampleNew() {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})

	cfg := mujairAuth.DefaultConfig()
	cfg.Token.Secret = []byte("at-least-32-bytes-of-signing-key")

	engine, _ := mujairAuth.New().
		WithConfig(cfg).
		WithRedis(rdb).
		WithAccountStore(&exampleAccountStore{}).
		WithPendingStore(&examplePendingStore{}).
		WithMailer(mailer.NewLog("https://geboymujair.id")).
		Build()
	_ = engine
}

// ExampleEngine_Login shows a typical login entrypoint call and structured error handling.
func ExampleEngine_Login() {
	var engine *mujairAuth.Engine
	_, err := engine.Login(context.Background(), "budi", "password")
	if err != nil {
		_ = err
	}
}

// ExampleEngine_RequestRegistration shows how a signup form submission maps
// onto the engine call that emails the verification link.
func ExampleEngine_RequestRegistration() {
	var engine *mujairAuth.Engine
	err := engine.RequestRegistration(context.Background(), "budi@example.com", mujairAuth.RoleCashier)
	if err != nil {
		_ = err
	}
}

// ExampleEngine_MetricsSnapshot shows how to read in-process metrics counters.
func ExampleEngine_MetricsSnapshot() {
	var engine *mujairAuth.Engine
	snapshot := engine.MetricsSnapshot()
	_ = snapshot
}

type exampleAccountStore struct{}

func (s *exampleAccountStore) GetByEmail(ctx context.Context, email string) (*mujairAuth.Account, error) {
	return nil, mujairAuth.ErrAccountNotFound
}
func (s *exampleAccountStore) GetByUsername(ctx context.Context, username string) (*mujairAuth.Account, error) {
	return nil, mujairAuth.ErrAccountNotFound
}
func (s *exampleAccountStore) Create(ctx context.Context, account *mujairAuth.Account) (*mujairAuth.Account, error) {
	return account, nil
}
func (s *exampleAccountStore) UpdatePasswordHash(ctx context.Context, accountID, newHash string) error {
	return nil
}

type examplePendingStore struct{}

func (s *examplePendingStore) GetByEmail(ctx context.Context, email string) (*mujairAuth.PendingRegistration, error) {
	return nil, mujairAuth.ErrPendingNotFound
}
func (s *examplePendingStore) Upsert(ctx context.Context, pending *mujairAuth.PendingRegistration) error {
	return nil
}
func (s *examplePendingStore) Delete(ctx context.Context, email string) error { return nil }
func (s *examplePendingStore) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}
