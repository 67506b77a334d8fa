// Package internal contains helper utilities that are intentionally private to
// mujairAuth, currently secure session ID generation.
//
// # Sub-packages
//
//   - config — YAML file configuration for the server binary
//   - dbx — shared database/sql abstractions for the Postgres stores
//   - handler — gin handlers for the registration and login pages
//   - middleware — gin middleware (flash messages, request logging, role gates)
//   - server — HTTP server assembly and HTML templates
//
// # What this package must NOT do
//
//   - Export types that appear in the public mujairAuth API.
//   - Be imported by any package outside the mujairAuth module.
package internal
