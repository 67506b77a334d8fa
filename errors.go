package mujairAuth

import "errors"

var (
	// ErrInvalidInput is an exported constant or variable used by the authentication engine.
	ErrInvalidInput = errors.New("invalid registration input")
	// ErrInvalidUsername is an exported constant or variable used by the authentication engine.
	ErrInvalidUsername = errors.New("username too short")
	// ErrDuplicateEmail is an exported constant or variable used by the authentication engine.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrUsernameTaken is an exported constant or variable used by the authentication engine.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrPasswordMismatch is an exported constant or variable used by the authentication engine.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrPasswordPolicy is an exported constant or variable used by the authentication engine.
	ErrPasswordPolicy = errors.New("password policy violation")
	// ErrTokenExpired is an exported constant or variable used by the authentication engine.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is an exported constant or variable used by the authentication engine.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrPendingNotFound is an exported constant or variable used by the authentication engine.
	ErrPendingNotFound = errors.New("pending registration not found")
	// ErrAccountNotFound is an exported constant or variable used by the authentication engine.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailNotFound is an exported constant or variable used by the authentication engine.
	ErrEmailNotFound = errors.New("email not found")
	// ErrInvalidCredentials is an exported constant or variable used by the authentication engine.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailDispatchFailed is an exported constant or variable used by the authentication engine.
	ErrEmailDispatchFailed = errors.New("email dispatch failed")
	// ErrStoreFailure is an exported constant or variable used by the authentication engine.
	ErrStoreFailure = errors.New("store operation failed")
	// ErrEngineNotReady is an exported constant or variable used by the authentication engine.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrSessionUnavailable is an exported constant or variable used by the authentication engine.
	ErrSessionUnavailable = errors.New("session backend unavailable")
	// ErrSessionInvalid is an exported constant or variable used by the authentication engine.
	ErrSessionInvalid = errors.New("session invalid or expired")
	// ErrSessionInvalidationFailed is an exported constant or variable used by the authentication engine.
	ErrSessionInvalidationFailed = errors.New("session invalidation failed")
)
