package password

import (
	"strings"
	"unicode/utf8"
)

// SpecialCharacters is the fixed set a new password must draw at least one
// character from.
const SpecialCharacters = `!@#$%^&*(),.?":{}|<>`

// PolicyViolation defines a public type used by mujairAuth APIs.
//
// PolicyViolation instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PolicyViolation struct {
	Reason string
}

func (e *PolicyViolation) Error() string {
	return e.Reason
}

// CheckPolicy describes the checkpolicy operation and its observable behavior.
//
// CheckPolicy may return an error when input validation, dependency calls, or security checks fail.
// CheckPolicy does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CheckPolicy(candidate string) error {
	// Rules run in declaration order; the first failure wins and its
	// reason is surfaced to the user verbatim.
	if n := utf8.RuneCountInString(candidate); n < 8 || n > 20 {
		return &PolicyViolation{Reason: "password must be 8-20 characters"}
	}
	if !strings.ContainsFunc(candidate, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return &PolicyViolation{Reason: "password must contain an uppercase letter"}
	}
	if !strings.ContainsFunc(candidate, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		return &PolicyViolation{Reason: "password must contain a lowercase letter"}
	}
	if !strings.ContainsAny(candidate, "0123456789") {
		return &PolicyViolation{Reason: "password must contain a digit"}
	}
	if !strings.ContainsAny(candidate, SpecialCharacters) {
		return &PolicyViolation{Reason: `password must contain a special character (!@#$%^&*...)`}
	}

	return nil
}
