// Package middleware exposes net/http middleware guards for session-gated
// routes built on top of mujairAuth Engine validation.
//
// # Guards
//
//   - [RequireSession] — any valid session.
//   - [RequireRole] — valid session bound to one specific role.
//
// Each guard reads the session cookie, calls Engine.Validate, and injects the
// validated session into the request context.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Engine calls. It does NOT
// implement authentication logic itself — all decisions are delegated to
// Engine.Validate.
//
// # What this package must NOT do
//
//   - Read or write session records directly (the Engine owns session I/O).
//   - Issue cookies or render pages (the web layer owns those).
//   - Make authorization decisions beyond pass/reject from Engine.Validate.
package middleware
