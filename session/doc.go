// Package session provides Redis-backed session persistence and compact binary
// session encoding for authenticated browser state.
//
// # Binary encoding
//
// Sessions are stored in Redis as a compact binary format with a leading schema
// version byte. The encoder is append-only: new versions add fields but never
// reinterpret old ones.
//
// # Architecture boundaries
//
// This package owns the [Store] (Redis operations) and the [Session] model. It
// does NOT verify credentials, interpret signed tokens, or enforce role
// routing — those responsibilities belong to the Engine and the web layer.
//
// # What this package must NOT do
//
//   - Import mujairAuth, token, or password (no upward imports).
//   - Perform application-level authorization decisions.
//   - Store plaintext secrets in [Session] fields.
package session
