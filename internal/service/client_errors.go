package service

import "errors"

var (
	// ErrMissingRequiredFields is returned by Save when title, username or
	// password is empty.
	ErrMissingRequiredFields = errors.New("title, username and password are required")

	// ErrPasswordTooShort is returned by Signup when the master password is
	// shorter than the minimum length. The password doubles as the field
	// encryption secret, so a weak one weakens every stored record.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrNoSessionSecret is returned when an operation needs the session
	// secret but the session holds none, e.g. after restoring a persisted
	// session without logging in again.
	ErrNoSessionSecret = errors.New("no session secret available")
)
