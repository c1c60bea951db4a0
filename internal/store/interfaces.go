package store

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up an account by its (lowercased) email.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// VaultRepository is the persistence contract for encrypted vault items.
// Every method is owner-scoped: the repository never returns or touches a
// row that belongs to a different user without signalling ErrNotOwner.
// Ciphertext fields are opaque strings at this layer and below.
type VaultRepository interface {
	// List returns all vault items of the given owner in the store's
	// natural retrieval order.
	List(ctx context.Context, userID int64) ([]models.VaultItem, error)

	// Create inserts a new item for item.UserID, assigns it an id, and
	// returns the stored row.
	Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// Update overwrites all ciphertext fields of the item identified by
	// item.ID. The ownership check happens before the write: returns
	// ErrVaultItemNotFound for an unknown id and ErrNotOwner when the row
	// belongs to someone else.
	Update(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// Delete removes the item with the given id. Same NotFound/NotOwner
	// policy as Update.
	Delete(ctx context.Context, userID int64, id string) error
}
