package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/internal/dbx"
)

// PendingStore is the PostgreSQL implementation of
// [mujairAuth.PendingRegistrationStore]. It holds the *sql.DB rather than a
// DBTX because Upsert owns a transaction.
type PendingStore struct {
	db *sql.DB
}

// NewPendingStore describes the newpendingstore operation and its observable behavior.
//
// NewPendingStore may return an error when input validation, dependency calls, or security checks fail.
// NewPendingStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewPendingStore(db *sql.DB) *PendingStore {
	return &PendingStore{db: db}
}

// GetByEmail describes the getbyemail operation and its observable behavior.
//
// GetByEmail may return an error when input validation, dependency calls, or security checks fail.
// GetByEmail does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *PendingStore) GetByEmail(ctx context.Context, email string) (*mujairAuth.PendingRegistration, error) {
	query :=
		`SELECT email, role, token, created_at, expires_at FROM pending_registrations
		 WHERE email = $1
		 `

	pending := &mujairAuth.PendingRegistration{}
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&pending.Email,
		&pending.Role,
		&pending.Token,
		&pending.CreatedAt,
		&pending.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, mujairAuth.ErrPendingNotFound
		}
		return nil, wrapStoreErr(err)
	}

	return pending, nil
}

// Upsert describes the upsert operation and its observable behavior.
//
// Upsert may return an error when input validation, dependency calls, or security checks fail.
// Upsert does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *PendingStore) Upsert(ctx context.Context, pending *mujairAuth.PendingRegistration) error {
	// Replacement is delete-then-insert inside one transaction, never a
	// merge; a concurrent reader sees the old row or the new one, nothing
	// in between.
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		deleteQuery :=
			`DELETE FROM pending_registrations
			 WHERE email = $1
			 `
		if _, err := tx.ExecContext(ctx, deleteQuery, pending.Email); err != nil {
			return err
		}

		insertQuery :=
			`INSERT INTO pending_registrations (email, role, token, created_at, expires_at)
			 VALUES ($1, $2, $3, $4, $5)
			 `
		_, err := tx.ExecContext(ctx, insertQuery,
			pending.Email, string(pending.Role), pending.Token, pending.CreatedAt, pending.ExpiresAt)
		return err
	})
	if err != nil {
		return wrapStoreErr(err)
	}

	return nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
// Delete does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *PendingStore) Delete(ctx context.Context, email string) error {
	query :=
		`DELETE FROM pending_registrations
		 WHERE email = $1
		 `

	// Deleting an absent row is not an error; consumption races resolve to
	// the same end state.
	if _, err := s.db.ExecContext(ctx, query, email); err != nil {
		return wrapStoreErr(err)
	}

	return nil
}

// DeleteExpired describes the deleteexpired operation and its observable behavior.
//
// DeleteExpired may return an error when input validation, dependency calls, or security checks fail.
// DeleteExpired does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *PendingStore) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	query :=
		`DELETE FROM pending_registrations
		 WHERE expires_at <= $1
		 `

	res, err := s.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, wrapStoreErr(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, wrapStoreErr(err)
	}

	return affected, nil
}
