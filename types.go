package mujairAuth

import (
	"context"
	"time"
)

// Role represents the fixed dashboard role assigned to an account at
// registration time.
type Role string

const (
	// RoleCashier is an exported constant or variable used by the authentication engine.
	RoleCashier Role = "cashier"
	// RoleAccountant is an exported constant or variable used by the authentication engine.
	RoleAccountant Role = "accountant"
	// RoleOwner is an exported constant or variable used by the authentication engine.
	RoleOwner Role = "owner"
	// RoleStaff is an exported constant or variable used by the authentication engine.
	RoleStaff Role = "staff"
)

// Roles describes the roles operation and its observable behavior.
//
// Roles may return an error when input validation, dependency calls, or security checks fail.
// Roles does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func Roles() []Role {
	return []Role{RoleCashier, RoleAccountant, RoleOwner, RoleStaff}
}

// ValidRole describes the validrole operation and its observable behavior.
//
// ValidRole may return an error when input validation, dependency calls, or security checks fail.
// ValidRole does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func ValidRole(r Role) bool {
	switch r {
	case RoleCashier, RoleAccountant, RoleOwner, RoleStaff:
		return true
	default:
		return false
	}
}

// Account is the full credential record held by an [AccountStore]. It carries
// the argon2id password hash in PHC form, never a plaintext password.
type Account struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PendingRegistration bridges "email verified intent" and "account fully
// created". At most one exists per email; Token is bookkeeping only, the
// emailed signed token is authoritative for expiry.
type PendingRegistration struct {
	Email     string
	Role      Role
	Token     string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ConfirmRegistrationRequest is the input for [Engine.ConfirmRegistration].
// Token must be the emailed verification token; the pending record's role,
// never a caller-supplied one, ends up on the created account.
type ConfirmRegistrationRequest struct {
	Token           string
	Username        string
	Password        string
	ConfirmPassword string
}

// AccountStore is the interface the Engine uses to persist accounts.
// Implementations must map "no such row" to [ErrAccountNotFound], uniqueness
// conflicts to [ErrDuplicateEmail] / [ErrUsernameTaken], and any other
// persistence failure to a wrapped [ErrStoreFailure].
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	Create(ctx context.Context, account *Account) (*Account, error)
	UpdatePasswordHash(ctx context.Context, accountID, newHash string) error
}

// PendingRegistrationStore is the interface the Engine uses to persist
// pending registrations. Upsert must replace any existing record for the
// email atomically (delete then insert in one transaction, never a merge).
// Implementations must map "no such row" to [ErrPendingNotFound] and any
// other persistence failure to a wrapped [ErrStoreFailure].
type PendingRegistrationStore interface {
	GetByEmail(ctx context.Context, email string) (*PendingRegistration, error)
	Upsert(ctx context.Context, pending *PendingRegistration) error
	Delete(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// Mailer delivers the verification and reset emails. The engine hands over
// the bare signed token; implementations own link construction and transport.
type Mailer interface {
	SendVerification(ctx context.Context, email, token string) error
	SendPasswordReset(ctx context.Context, email, token string) error
}
