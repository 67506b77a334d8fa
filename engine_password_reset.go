package mujairAuth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/TambakLabs/mujairAuth/password"
	"github.com/TambakLabs/mujairAuth/token"
)

// RequestPasswordReset describes the requestpasswordreset operation and its observable behavior.
//
// RequestPasswordReset may return an error when input validation, dependency calls, or security checks fail.
// RequestPasswordReset does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) RequestPasswordReset(ctx context.Context, email string) error {
	if err := e.ready(); err != nil {
		return err
	}

	email = strings.TrimSpace(email)

	account, err := e.accounts.GetByEmail(ctx, email)
	if err != nil {
		// Unknown addresses are disclosed to the caller so the page can say so.
		if errors.Is(err, ErrAccountNotFound) {
			e.metricInc(MetricResetFailure)
			return ErrEmailNotFound
		}
		return err
	}

	resetToken, err := e.tokens.Issue(account.Email, token.PurposePasswordReset)
	if err != nil {
		return err
	}

	if err := e.mailer.SendPasswordReset(ctx, account.Email, resetToken); err != nil {
		e.metricInc(MetricEmailDispatchFailure)
		return fmt.Errorf("%w: %v", ErrEmailDispatchFailed, err)
	}

	e.metricInc(MetricResetRequest)
	return nil
}

// InspectPasswordReset describes the inspectpasswordreset operation and its observable behavior.
//
// InspectPasswordReset may return an error when input validation, dependency calls, or security checks fail.
// InspectPasswordReset does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) InspectPasswordReset(ctx context.Context, resetToken string) (string, error) {
	if err := e.ready(); err != nil {
		return "", err
	}

	email, err := e.tokens.Verify(resetToken, token.PurposePasswordReset, e.config.Token.TTL)
	if err != nil {
		e.metricInc(MetricResetFailure)
		if errors.Is(err, token.ErrExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	return email, nil
}

// ConfirmPasswordReset describes the confirmpasswordreset operation and its observable behavior.
//
// ConfirmPasswordReset may return an error when input validation, dependency calls, or security checks fail.
// ConfirmPasswordReset does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) ConfirmPasswordReset(ctx context.Context, resetToken, pass, confirm string) error {
	email, err := e.InspectPasswordReset(ctx, resetToken)
	if err != nil {
		return err
	}

	if pass != confirm {
		e.metricInc(MetricPasswordMismatch)
		return ErrPasswordMismatch
	}
	if err := password.CheckPolicy(pass); err != nil {
		e.metricInc(MetricPasswordPolicyRejected)
		return fmt.Errorf("%w: %v", ErrPasswordPolicy, err)
	}

	// The account's existence anchors the reset; there is no pending record
	// in this flow.
	account, err := e.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			e.metricInc(MetricResetFailure)
			return ErrEmailNotFound
		}
		return err
	}

	hash, err := e.passwordHash.Hash(pass)
	if err != nil {
		return err
	}
	pass = ""
	confirm = ""

	if err := e.accounts.UpdatePasswordHash(ctx, account.ID, hash); err != nil {
		e.metricInc(MetricResetFailure)
		return err
	}

	// The password is already changed at this point; surviving sessions are a
	// reported failure, not a rollback.
	if err := e.sessionStore.DeleteAllForUser(ctx, account.Username); err != nil {
		e.metricInc(MetricResetSuccess)
		return errors.Join(ErrSessionInvalidationFailed, err)
	}

	e.metricInc(MetricSessionInvalidated)
	e.metricInc(MetricResetSuccess)
	return nil
}
