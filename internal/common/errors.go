// Package common defines shared constants and sentinel errors used across
// LockVault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrNotFound = errors.New("not found")

	// Identity errors.
	ErrDuplicateIdentity = errors.New("login name or email already registered")
	ErrWeakCredential    = errors.New("credential fails the composition policy")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidCredential = errors.New("invalid credential")

	// Vault errors.
	ErrUnauthenticated    = errors.New("no authenticated session")
	ErrTamperedOrWrongKey = errors.New("record tampered or wrong key")

	// Generator errors.
	ErrEmptyPool = errors.New("no character classes enabled")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
)
