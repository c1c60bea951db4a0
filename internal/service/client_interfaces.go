package service

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

// SecretSource hands out the session secret used for field encryption.
// The canonical implementation is the client session, which keeps the
// secret in process memory only.
type SecretSource interface {
	// Secret returns the current session secret, or "" when none is held.
	Secret() string

	// CanDecrypt reports whether a secret is available. A session restored
	// from disk has a token but no secret, so it cannot decrypt.
	CanDecrypt() bool
}

// ClientAuthService is the client-side contract for registration and
// login. Implementations validate credentials locally and delegate to the
// server adapter.
type ClientAuthService interface {
	// Signup registers a new account and returns the issued token with the
	// public user record.
	Signup(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates against the server. Bad credentials surface as
	// adapter.ErrUnauthorized (wrapped); the server does not say whether
	// the email or the password was wrong.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
}

// ClientVaultService is the client-side contract for working with vault
// records in plaintext form. It is the only layer where plaintext and
// ciphertext meet: records are decrypted after download and encrypted
// before upload, one field at a time.
type ClientVaultService interface {
	// List downloads the user's vault and decrypts every field. A field
	// that cannot be decrypted comes back empty instead of failing the
	// whole listing.
	List(ctx context.Context) ([]models.VaultRecord, error)

	// Save validates and encrypts record, then creates it (empty ID) or
	// fully updates it (non-empty ID) on the server. Returns
	// ErrMissingRequiredFields when title, username or password is empty
	// and ErrNoSessionSecret when the session holds no secret to encrypt
	// with.
	Save(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error)

	// Remove deletes the record with the given id from the server.
	Remove(ctx context.Context, id string) error

	// Filter returns the records whose title, username or URL contains
	// query, case-insensitively. An empty query returns records unchanged.
	Filter(records []models.VaultRecord, query string) []models.VaultRecord
}
