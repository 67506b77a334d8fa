package mujairAuth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/TambakLabs/mujairAuth/internal"
	"github.com/TambakLabs/mujairAuth/session"
)

// Login describes the login operation and its observable behavior.
//
// Login may return an error when input validation, dependency calls, or security checks fail.
// Login does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Login(ctx context.Context, username, pass string) (*session.Session, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if username == "" || pass == "" {
		e.metricInc(MetricLoginFailure)
		return nil, ErrInvalidCredentials
	}

	account, err := e.accounts.GetByUsername(ctx, username)
	if err != nil {
		e.metricInc(MetricLoginFailure)
		// Unknown usernames collapse into the same generic failure as a
		// wrong password.
		if errors.Is(err, ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := e.passwordHash.Verify(pass, account.PasswordHash)
	if err != nil || !ok {
		e.metricInc(MetricLoginFailure)
		return nil, ErrInvalidCredentials
	}

	if e.config.Password.UpgradeOnLogin {
		if needsUpgrade, err := e.passwordHash.NeedsUpgrade(account.PasswordHash); err == nil && needsUpgrade {
			if upgradedHash, err := e.passwordHash.Hash(pass); err == nil {
				// Rehash update is best-effort and must not block successful login.
				if err := e.accounts.UpdatePasswordHash(ctx, account.ID, upgradedHash); err != nil {
					log.Print("mujairAuth: password hash upgrade update failed")
				}
			} else {
				log.Print("mujairAuth: password hash upgrade generation failed")
			}
		}
	}
	pass = ""

	sid, err := internal.NewSessionID()
	if err != nil {
		e.metricInc(MetricLoginFailure)
		return nil, err
	}

	now := time.Now()
	ttl := e.config.Session.TTL
	sess := &session.Session{
		SessionID: sid.String(),
		Username:  account.Username,
		Role:      string(account.Role),
		Email:     account.Email,
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(ttl).Unix(),
	}

	if err := e.sessionStore.Save(ctx, sess, ttl); err != nil {
		e.metricInc(MetricLoginFailure)
		return nil, fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	}

	e.metricInc(MetricSessionCreated)
	e.metricInc(MetricLoginSuccess)
	return sess, nil
}
