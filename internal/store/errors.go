package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrVaultItemNotFound is returned when an operation targets a vault
	// item id that does not exist in the database.
	ErrVaultItemNotFound = errors.New("vault item not found")

	// ErrNotOwner is returned when a vault item exists but belongs to a
	// different user than the caller. The ownership check runs before any
	// write is applied.
	ErrNotOwner = errors.New("vault item belongs to another user")

	// ErrLocalSessionNotFound is returned by the client session store when
	// no persisted session row exists.
	ErrLocalSessionNotFound = errors.New("local session not found")
)
