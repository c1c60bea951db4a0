package service

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

// AuthService covers account registration, credential verification, and
// the JWT token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account from the given credentials. The
	// password is hashed before it reaches storage.
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login verifies the given credentials against the stored account.
	// Unknown email and wrong password both surface as ErrWrongCredentials
	// so that a caller cannot distinguish the two cases.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService covers owner-scoped CRUD over encrypted vault items. All
// field values are ciphertext at this layer; the service stores and
// returns them without inspecting their content.
type VaultService interface {
	ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error)
	CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)
	DeleteItem(ctx context.Context, userID int64, id string) error
}
