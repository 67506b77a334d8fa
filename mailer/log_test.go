package mailer

import (
	"bytes"
	"context"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })
	return &buf
}

func TestLogMailerWritesVerificationLink(t *testing.T) {
	buf := captureLog(t)

	l := NewLog("http://localhost:8080/")
	if err := l.SendVerification(context.Background(), "budi@example.com", "tok-1"); err != nil {
		t.Fatalf("SendVerification failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "budi@example.com") {
		t.Fatalf("log missing recipient: %q", out)
	}
	if !strings.Contains(out, "http://localhost:8080/verify/tok-1") {
		t.Fatalf("log missing verification link: %q", out)
	}
}

func TestLogMailerWritesResetLink(t *testing.T) {
	buf := captureLog(t)

	l := NewLog("http://localhost:8080")
	if err := l.SendPasswordReset(context.Background(), "siti@example.com", "tok-2"); err != nil {
		t.Fatalf("SendPasswordReset failed: %v", err)
	}

	if !strings.Contains(buf.String(), "http://localhost:8080/reset-password/tok-2") {
		t.Fatalf("log missing reset link: %q", buf.String())
	}
}
