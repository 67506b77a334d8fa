package mailer

import (
	"context"
	"log"
	"strings"
)

// Log writes outgoing links to the standard logger instead of delivering
// mail. It is a development stand-in for [SMTP].
type Log struct {
	baseURL string
}

// NewLog builds a [Log] mailer that renders links against baseURL.
func NewLog(baseURL string) *Log {
	return &Log{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// SendVerification logs the verification link instead of mailing it.
func (l *Log) SendVerification(_ context.Context, email, token string) error {
	log.Printf("mailer: verification mail for %s: %s", email, verificationLink(l.baseURL, token))
	return nil
}

// SendPasswordReset logs the reset link instead of mailing it.
func (l *Log) SendPasswordReset(_ context.Context, email, token string) error {
	log.Printf("mailer: password reset mail for %s: %s", email, resetLink(l.baseURL, token))
	return nil
}
