package postgres

import (
	"context"
	"database/sql"
	"errors"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/internal/dbx"
	"github.com/google/uuid"
)

// AccountStore is the PostgreSQL implementation of [mujairAuth.AccountStore].
type AccountStore struct {
	db dbx.DBTX
}

// NewAccountStore describes the newaccountstore operation and its observable behavior.
//
// NewAccountStore may return an error when input validation, dependency calls, or security checks fail.
// NewAccountStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewAccountStore(db dbx.DBTX) *AccountStore {
	return &AccountStore{db: db}
}

// GetByEmail describes the getbyemail operation and its observable behavior.
//
// GetByEmail may return an error when input validation, dependency calls, or security checks fail.
// GetByEmail does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*mujairAuth.Account, error) {
	query :=
		`SELECT id, email, username, password_hash, role, created_at, updated_at FROM accounts
		 WHERE email = $1
		 `

	return s.getOne(ctx, query, email)
}

// GetByUsername describes the getbyusername operation and its observable behavior.
//
// GetByUsername may return an error when input validation, dependency calls, or security checks fail.
// GetByUsername does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *AccountStore) GetByUsername(ctx context.Context, username string) (*mujairAuth.Account, error) {
	query :=
		`SELECT id, email, username, password_hash, role, created_at, updated_at FROM accounts
		 WHERE username = $1
		 `

	return s.getOne(ctx, query, username)
}

func (s *AccountStore) getOne(ctx context.Context, query, arg string) (*mujairAuth.Account, error) {
	account := &mujairAuth.Account{}
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.Username,
		&account.PasswordHash,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, mujairAuth.ErrAccountNotFound
		}
		return nil, wrapStoreErr(err)
	}

	return account, nil
}

// Create describes the create operation and its observable behavior.
//
// Create may return an error when input validation, dependency calls, or security checks fail.
// Create does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *AccountStore) Create(ctx context.Context, account *mujairAuth.Account) (*mujairAuth.Account, error) {
	query :=
		`INSERT INTO accounts (id, email, username, password_hash, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	created := *account
	if created.ID == "" {
		created.ID = uuid.NewString()
	}

	err := s.db.QueryRowContext(ctx, query,
		created.ID, created.Email, created.Username, created.PasswordHash, string(created.Role)).
		Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		// A lost check-then-insert race surfaces here as a unique-index
		// violation and is reported as the matching conflict sentinel.
		if conflictErr, ok := mapUniqueViolation(err); ok {
			return nil, conflictErr
		}
		return nil, wrapStoreErr(err)
	}

	return &created, nil
}

// UpdatePasswordHash describes the updatepasswordhash operation and its observable behavior.
//
// UpdatePasswordHash may return an error when input validation, dependency calls, or security checks fail.
// UpdatePasswordHash does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *AccountStore) UpdatePasswordHash(ctx context.Context, accountID, newHash string) error {
	query :=
		`UPDATE accounts SET password_hash = $2, updated_at = now()
		 WHERE id = $1
		 `

	res, err := s.db.ExecContext(ctx, query, accountID, newHash)
	if err != nil {
		return wrapStoreErr(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return wrapStoreErr(err)
	}
	if affected == 0 {
		return mujairAuth.ErrAccountNotFound
	}

	return nil
}
