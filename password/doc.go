// Package password implements password hashing, verification, and the
// composition policy applied to new credentials.
//
// # Output format
//
// Hashes are encoded in PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// The [Argon2] hasher supports transparent parameter upgrades: if the stored
// hash was produced with weaker parameters, [Argon2.NeedsUpgrade] returns true
// so the caller can re-hash on the next successful login.
//
// # Policy
//
// [CheckPolicy] is the single authority on password composition. Registration
// and password reset both call it and surface its reason text verbatim; the
// hasher itself never re-checks composition.
//
// # What this package must NOT do
//
//   - Store or retrieve passwords — callers supply plaintext and receive hashes.
//   - Import any other mujairAuth package.
//   - Log plaintext passwords or hash parameters at runtime.
package password
