// Package token manages purpose-bound signed token issuance and verification
// using a process-wide secret and strict validation semantics suitable for
// emailed confirmation links.
package token
