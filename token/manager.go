package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Purpose defines a public type used by mujairAuth APIs.
//
// Purpose instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Purpose string

const (
	// PurposeEmailVerification is an exported constant or variable used by the authentication engine.
	PurposeEmailVerification Purpose = "email-verification"
	// PurposePasswordReset is an exported constant or variable used by the authentication engine.
	PurposePasswordReset Purpose = "password-reset"
)

var (
	// ErrExpired is an exported constant or variable used by the authentication engine.
	ErrExpired = errors.New("token expired")
	// ErrInvalid is an exported constant or variable used by the authentication engine.
	ErrInvalid = errors.New("token invalid")
)

// Config defines a public type used by mujairAuth APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Secret       []byte
	Issuer       string
	MaxFutureIAT time.Duration
	TimeFunc     func() time.Time
}

// Manager defines a public type used by mujairAuth APIs.
//
// Manager instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Manager struct {
	config Config
}

type linkClaims struct {
	Purpose string `json:"pur"`
	jwt.RegisteredClaims
}

// NewManager describes the newmanager operation and its observable behavior.
//
// NewManager may return an error when input validation, dependency calls, or security checks fail.
// NewManager does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("signed tokens require a secret key")
	}
	if cfg.MaxFutureIAT == 0 {
		cfg.MaxFutureIAT = 10 * time.Minute
	}
	if cfg.MaxFutureIAT < 0 || cfg.MaxFutureIAT > 24*time.Hour {
		return nil, errors.New("invalid MaxFutureIAT configuration")
	}
	if cfg.TimeFunc == nil {
		cfg.TimeFunc = time.Now
	}

	return &Manager{config: cfg}, nil
}

// Issue describes the issue operation and its observable behavior.
//
// Issue may return an error when input validation, dependency calls, or security checks fail.
// Issue does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Manager) Issue(payload string, purpose Purpose) (string, error) {
	if payload == "" {
		return "", errors.New("empty token payload")
	}
	if purpose == "" {
		return "", errors.New("empty token purpose")
	}

	claims := linkClaims{
		Purpose: string(purpose),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  payload,
			IssuedAt: jwt.NewNumericDate(m.config.TimeFunc()),
			Issuer:   m.config.Issuer,
			// jti keeps two tokens for the same payload+purpose distinct
			// even when issued within the same second.
			ID: uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.config.Secret)
}

// Verify describes the verify operation and its observable behavior.
//
// Verify may return an error when input validation, dependency calls, or security checks fail.
// Verify does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Manager) Verify(tokenStr string, purpose Purpose, maxAge time.Duration) (string, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.config.TimeFunc),
	}
	if m.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(m.config.Issuer))
	}

	parser := jwt.NewParser(options...)
	parsed, err := parser.ParseWithClaims(tokenStr, &linkClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing algorithm: %s", t.Method.Alg())
		}
		return m.config.Secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	claims, ok := parsed.Claims.(*linkClaims)
	if !ok || !parsed.Valid {
		return "", ErrInvalid
	}
	if claims.Purpose != string(purpose) {
		return "", ErrInvalid
	}
	if claims.Subject == "" || claims.IssuedAt == nil {
		return "", ErrInvalid
	}

	now := m.config.TimeFunc()
	if claims.IssuedAt.Time.After(now.Add(m.config.MaxFutureIAT)) {
		return "", ErrInvalid
	}
	// Expiry is derived from age rather than an exp claim so the caller
	// owns the validity window. Age equal to maxAge still verifies.
	if now.Sub(claims.IssuedAt.Time) > maxAge {
		return "", ErrExpired
	}

	return claims.Subject, nil
}
