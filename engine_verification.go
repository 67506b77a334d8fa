package mujairAuth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/TambakLabs/mujairAuth/password"
	"github.com/TambakLabs/mujairAuth/token"
)

// InspectRegistration describes the inspectregistration operation and its observable behavior.
//
// InspectRegistration may return an error when input validation, dependency calls, or security checks fail.
// InspectRegistration does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) InspectRegistration(ctx context.Context, verificationToken string) (*PendingRegistration, error) {
	if err := e.ready(); err != nil {
		return nil, err
	}

	email, err := e.tokens.Verify(verificationToken, token.PurposeEmailVerification, e.config.Token.TTL)
	if err != nil {
		e.metricInc(MetricVerificationFailure)
		if errors.Is(err, token.ErrExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	pending, err := e.pending.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrPendingNotFound) {
			e.metricInc(MetricVerificationFailure)
			return nil, ErrPendingNotFound
		}
		return nil, err
	}

	return pending, nil
}

// ConfirmRegistration describes the confirmregistration operation and its observable behavior.
//
// ConfirmRegistration may return an error when input validation, dependency calls, or security checks fail.
// ConfirmRegistration does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) ConfirmRegistration(ctx context.Context, req ConfirmRegistrationRequest) (*Account, error) {
	// Token and pending state are re-checked on submit; the earlier GET-side
	// inspection carries no authority of its own.
	pending, err := e.InspectRegistration(ctx, req.Token)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(req.Username)
	if utf8.RuneCountInString(username) < e.config.Registration.MinUsernameLength {
		e.metricInc(MetricVerificationFailure)
		return nil, ErrInvalidUsername
	}

	if _, err := e.accounts.GetByUsername(ctx, username); err == nil {
		e.metricInc(MetricUsernameConflict)
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrAccountNotFound) {
		return nil, err
	}

	if req.Password != req.ConfirmPassword {
		e.metricInc(MetricPasswordMismatch)
		return nil, ErrPasswordMismatch
	}
	if err := password.CheckPolicy(req.Password); err != nil {
		e.metricInc(MetricPasswordPolicyRejected)
		return nil, fmt.Errorf("%w: %v", ErrPasswordPolicy, err)
	}

	hash, err := e.passwordHash.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	// The pending record's role is authoritative; the submitted form never
	// carries one.
	account, err := e.accounts.Create(ctx, &Account{
		Email:        pending.Email,
		Username:     username,
		PasswordHash: hash,
		Role:         pending.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			e.metricInc(MetricUsernameConflict)
			return nil, ErrUsernameTaken
		case errors.Is(err, ErrDuplicateEmail):
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	// Cleanup is best-effort: the account exists, and a leftover pending row
	// is unusable once its token window closes.
	if err := e.pending.Delete(ctx, pending.Email); err != nil {
		log.Print("mujairAuth: pending registration cleanup failed")
	}

	e.metricInc(MetricVerificationSuccess)
	return account, nil
}
