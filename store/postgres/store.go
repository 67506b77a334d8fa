package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	mujairAuth "github.com/TambakLabs/mujairAuth"
	"github.com/TambakLabs/mujairAuth/store/postgres/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const uniqueViolationCode = "23505"

// Open opens a database handle on the pgx stdlib driver and verifies
// connectivity before returning it.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// gooseUpContext is a seam for testing RunMigrations.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// wrapStoreErr keeps the sentinel matchable while preserving the driver
// message for logs.
func wrapStoreErr(err error) error {
	return fmt.Errorf("%w: %v", mujairAuth.ErrStoreFailure, err)
}

// mapUniqueViolation resolves an accounts unique-index violation to the
// sentinel for the column that collided. The index names are fixed by the
// migrations.
func mapUniqueViolation(err error) (error, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil, false
	}
	switch pgErr.ConstraintName {
	case "accounts_email_key":
		return mujairAuth.ErrDuplicateEmail, true
	case "accounts_username_key":
		return mujairAuth.ErrUsernameTaken, true
	default:
		return nil, false
	}
}
