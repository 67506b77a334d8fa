// Package mailer delivers the verification and password-reset email for the
// registration and reset flows.
//
// # Implementations
//
// [SMTP] sends real mail through an SMTP relay over STARTTLS with
// username/password authentication. [Log] writes the outgoing link to the
// process log instead of delivering it and is meant for development and
// examples.
//
// # Architecture boundaries
//
// This package builds public links and message bodies only. Token issuing and
// verification belong to the token package; the Engine decides when a message
// is sent.
//
// # What this package must NOT do
//
//   - Import mujairAuth or any store package (no upward imports).
//   - Interpret token contents or decide whether a message should be sent.
//   - Persist recipients or tokens.
package mailer
