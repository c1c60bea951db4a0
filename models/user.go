package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique user identifier used during authentication.
	// Stored and compared in lowercase.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's master password.
	// The plaintext master password itself is never stored anywhere:
	// it doubles as the client-side field-encryption secret, and the server
	// must stay unable to decrypt vault content even with full DB access.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the JSON shape of a user exposed by the auth endpoints.
type PublicUser struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Public returns the externally visible projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.UserID, Email: u.Email}
}
