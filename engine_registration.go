package mujairAuth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/TambakLabs/mujairAuth/token"
)

// RequestRegistration describes the requestregistration operation and its observable behavior.
//
// RequestRegistration may return an error when input validation, dependency calls, or security checks fail.
// RequestRegistration does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) RequestRegistration(ctx context.Context, email string, role Role) error {
	if err := e.ready(); err != nil {
		return err
	}

	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		e.metricInc(MetricRegistrationInvalid)
		return ErrInvalidInput
	}
	if !ValidRole(role) {
		e.metricInc(MetricRegistrationInvalid)
		return ErrInvalidInput
	}

	if _, err := e.accounts.GetByEmail(ctx, email); err == nil {
		e.metricInc(MetricRegistrationDuplicate)
		return ErrDuplicateEmail
	} else if !errors.Is(err, ErrAccountNotFound) {
		return err
	}

	verificationToken, err := e.tokens.Issue(email, token.PurposeEmailVerification)
	if err != nil {
		return err
	}

	// The row's ExpiresAt mirrors the token window for maintenance sweeps;
	// token verification remains the authoritative expiry check.
	now := time.Now()
	pending := &PendingRegistration{
		Email:     email,
		Role:      role,
		Token:     verificationToken,
		CreatedAt: now,
		ExpiresAt: now.Add(e.config.Token.TTL),
	}
	if err := e.pending.Upsert(ctx, pending); err != nil {
		return err
	}

	// The pending row stays behind on dispatch failure so a retried
	// registration replaces it via upsert.
	if err := e.mailer.SendVerification(ctx, email, verificationToken); err != nil {
		e.metricInc(MetricEmailDispatchFailure)
		return fmt.Errorf("%w: %v", ErrEmailDispatchFailed, err)
	}

	e.metricInc(MetricRegistrationRequest)
	return nil
}
