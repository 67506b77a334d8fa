package mujairAuth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TambakLabs/mujairAuth/password"
	"github.com/TambakLabs/mujairAuth/session"
	"github.com/TambakLabs/mujairAuth/token"
	"github.com/redis/go-redis/v9"
)

// Engine defines a public type used by mujairAuth APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config       Config
	accounts     AccountStore
	pending      PendingRegistrationStore
	sessionStore *session.Store
	tokens       *token.Manager
	passwordHash *password.Argon2
	mailer       Mailer
	metrics      *Metrics
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Validate(ctx context.Context, sessionID string) (*session.Session, error) {
	if e == nil || e.sessionStore == nil {
		return nil, ErrEngineNotReady
	}
	if e.metrics != nil && e.metrics.LatencyEnabled() {
		start := time.Now()
		defer e.metrics.Observe(MetricValidateLatency, time.Since(start))
	}

	if sessionID == "" {
		return nil, ErrSessionInvalid
	}

	sess, err := e.sessionStore.Get(ctx, sessionID, e.config.Session.TTL)
	if err != nil {
		if errors.Is(err, session.ErrRedisUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
		}
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionInvalid
		}
		return nil, ErrSessionInvalid
	}

	return sess, nil
}

// Logout describes the logout operation and its observable behavior.
//
// Logout may return an error when input validation, dependency calls, or security checks fail.
// Logout does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Logout(ctx context.Context, sessionID string) error {
	if e == nil || e.sessionStore == nil {
		return ErrEngineNotReady
	}
	if sessionID == "" {
		return nil
	}

	if err := e.sessionStore.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}

	e.metricInc(MetricLogout)
	e.metricInc(MetricSessionInvalidated)
	return nil
}

// LogoutAllForUsername describes the logoutallforusername operation and its observable behavior.
//
// LogoutAllForUsername may return an error when input validation, dependency calls, or security checks fail.
// LogoutAllForUsername does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) LogoutAllForUsername(ctx context.Context, username string) error {
	if e == nil || e.sessionStore == nil {
		return ErrEngineNotReady
	}

	if err := e.sessionStore.DeleteAllForUser(ctx, username); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}

	e.metricInc(MetricSessionInvalidated)
	return nil
}

func (e *Engine) ready() error {
	if e == nil || e.accounts == nil || e.pending == nil || e.tokens == nil ||
		e.passwordHash == nil || e.sessionStore == nil || e.mailer == nil {
		return ErrEngineNotReady
	}
	return nil
}
