// Package postgres implements the mujairAuth account and pending registration
// stores on PostgreSQL via database/sql and the pgx stdlib driver, with schema
// migrations embedded and applied through goose.
//
// # Error contract
//
// "No such row" maps to the root sentinels ([mujairAuth.ErrAccountNotFound],
// [mujairAuth.ErrPendingNotFound]); unique-index violations on accounts map by
// constraint name to [mujairAuth.ErrDuplicateEmail] and
// [mujairAuth.ErrUsernameTaken]; every other database failure is wrapped in
// [mujairAuth.ErrStoreFailure].
//
// # What this package must NOT do
//
//   - Hash passwords, verify tokens, or apply flow rules; it persists what the
//     Engine hands it.
//   - Leak driver error types to callers.
package postgres
