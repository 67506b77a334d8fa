// Package mujairAuth provides the account registration and authentication engine
// for a role-based bookkeeping web application: email-verified signup, argon2id
// credential storage, Redis-backed login sessions, and signed-token password reset.
//
// The package is designed for concurrent server workloads: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// mujairAuth is the public surface. It exposes [Engine], [Builder], [Config], the
// store and mailer interfaces, and value types (Account, PendingRegistration,
// MetricsSnapshot). Token signing lives in token/, password hashing and policy in
// password/, session storage in session/, and the Postgres stores in store/postgres.
//
// # What this package must NOT do
//
//   - Expose Redis clients, SQL handles, or encoding details in its public API.
//   - Perform I/O outside of Engine methods (construction via Builder is allocation-only
//     until Build).
//   - Import any sub-package that re-imports mujairAuth (no import cycles).
//
// # Flow contract
//
// Every Engine method is a request-scoped, run-to-completion flow. Failures are
// reported through the exported sentinel errors and matched with [errors.Is];
// flows never partially roll back earlier steps (a persisted pending registration
// survives a later email dispatch failure so the user can retry).
package mujairAuth
