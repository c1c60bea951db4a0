package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/models"
)

// vaultService is the concrete implementation of VaultService. It is a
// thin, owner-scoped layer over the VaultRepository: field values arrive
// as ciphertext and leave as ciphertext. The service never attempts to
// decode them, and field contents never appear in log output.
type vaultService struct {
	vaultRepository store.VaultRepository
	logger          *logger.Logger
}

// NewVaultService constructs a VaultService over the given repository.
func NewVaultService(vaultRepository store.VaultRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		logger:          logger,
	}
}

// ListItems returns all vault items owned by userID. An empty vault is a
// valid result, not an error.
func (v *vaultService) ListItems(ctx context.Context, userID int64) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	items, err := v.vaultRepository.List(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("vault listing failed")
		return nil, fmt.Errorf("vault listing failed: %w", err)
	}

	return items, nil
}

// CreateItem stores a new vault item for item.UserID. The id is assigned
// by the repository; any id supplied by the caller is ignored.
func (v *vaultService) CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if item.UserID <= 0 {
		return models.VaultItem{}, ErrInvalidDataProvided
	}
	item.ID = ""

	created, err := v.vaultRepository.Create(ctx, item)
	if err != nil {
		log.Err(err).Int64("user_id", item.UserID).Msg("vault item creation failed")
		return models.VaultItem{}, fmt.Errorf("vault item creation failed: %w", err)
	}

	return created, nil
}

// UpdateItem overwrites all field values of the item identified by
// item.ID. Repository-level sentinel errors (store.ErrVaultItemNotFound,
// store.ErrNotOwner) pass through unwrapped so the handler can map them to
// status codes.
func (v *vaultService) UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if item.UserID <= 0 || item.ID == "" {
		return models.VaultItem{}, ErrInvalidDataProvided
	}

	updated, err := v.vaultRepository.Update(ctx, item)
	if err != nil {
		log.Err(err).Str("id", item.ID).Int64("user_id", item.UserID).Msg("vault item update failed")
		return models.VaultItem{}, err
	}

	return updated, nil
}

// DeleteItem removes the item with the given id. Same sentinel pass-through
// policy as UpdateItem.
func (v *vaultService) DeleteItem(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || id == "" {
		return ErrInvalidDataProvided
	}

	if err := v.vaultRepository.Delete(ctx, userID, id); err != nil {
		log.Err(err).Str("id", id).Int64("user_id", userID).Msg("vault item deletion failed")
		return err
	}

	return nil
}
