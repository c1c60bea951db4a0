package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

// clientVaultService translates between plaintext VaultRecords and
// encrypted VaultItems. Every field is encrypted independently with the
// session secret before upload and decrypted after download; the server
// only ever sees ciphertext.
type clientVaultService struct {
	serverAdapter adapter.ServerAdapter
	fieldCipher   crypto.FieldCipher
	secretSource  SecretSource
	logger        *logger.Logger
}

// NewClientVaultService constructs a ClientVaultService over the given
// adapter, field cipher, and secret source.
func NewClientVaultService(serverAdapter adapter.ServerAdapter, fieldCipher crypto.FieldCipher, secretSource SecretSource, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{
		serverAdapter: serverAdapter,
		fieldCipher:   fieldCipher,
		secretSource:  secretSource,
		logger:        logger,
	}
}

// List implements [ClientVaultService]. Decryption is lenient: a field
// that fails to decrypt (wrong secret, corrupted blob, restored session
// without a secret) comes back as "" and the record keeps its place in
// the listing.
func (c *clientVaultService) List(ctx context.Context) ([]models.VaultRecord, error) {
	items, err := c.serverAdapter.List(ctx)
	if err != nil {
		c.logger.Err(err).Msg("vault download failed")
		return nil, fmt.Errorf("vault download failed: %w", err)
	}

	secret := c.secretSource.Secret()
	records := make([]models.VaultRecord, 0, len(items))
	for _, item := range items {
		records = append(records, c.decryptItem(item, secret))
	}

	return records, nil
}

// Save implements [ClientVaultService]. All five fields are encrypted,
// including empty URL and notes, so the server cannot tell a filled field
// from an empty one.
func (c *clientVaultService) Save(ctx context.Context, record models.VaultRecord) (models.VaultRecord, error) {
	if !record.Valid() {
		return models.VaultRecord{}, ErrMissingRequiredFields
	}
	if !c.secretSource.CanDecrypt() {
		return models.VaultRecord{}, ErrNoSessionSecret
	}

	item, err := c.encryptRecord(record, c.secretSource.Secret())
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("record encryption failed: %w", err)
	}

	var saved models.VaultItem
	if record.ID == "" {
		saved, err = c.serverAdapter.Create(ctx, item)
	} else {
		saved, err = c.serverAdapter.Update(ctx, item)
	}
	if err != nil {
		c.logger.Err(err).Str("id", record.ID).Msg("vault record save failed")
		return models.VaultRecord{}, fmt.Errorf("vault record save failed: %w", err)
	}

	record.ID = saved.ID
	return record, nil
}

// Remove implements [ClientVaultService].
func (c *clientVaultService) Remove(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := c.serverAdapter.Delete(ctx, id); err != nil {
		c.logger.Err(err).Str("id", id).Msg("vault record removal failed")
		return fmt.Errorf("vault record removal failed: %w", err)
	}

	return nil
}

// Filter implements [ClientVaultService]. Matching is a plain
// case-insensitive substring test over title, username and URL; notes and
// passwords are deliberately not searched.
func (c *clientVaultService) Filter(records []models.VaultRecord, query string) []models.VaultRecord {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}

	filtered := make([]models.VaultRecord, 0, len(records))
	for _, record := range records {
		if strings.Contains(strings.ToLower(record.Title), query) ||
			strings.Contains(strings.ToLower(record.Username), query) ||
			strings.Contains(strings.ToLower(record.URL), query) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func (c *clientVaultService) encryptRecord(record models.VaultRecord, secret string) (models.VaultItem, error) {
	item := models.VaultItem{ID: record.ID}

	fields := []struct {
		plaintext string
		target    *models.CipheredField
	}{
		{record.Title, &item.Title},
		{record.Username, &item.Username},
		{record.Password, &item.Password},
		{record.URL, &item.URL},
		{record.Notes, &item.Notes},
	}
	for _, field := range fields {
		ciphertext, err := c.fieldCipher.EncryptField(field.plaintext, secret)
		if err != nil {
			return models.VaultItem{}, err
		}
		*field.target = models.CipheredField(ciphertext)
	}

	return item, nil
}

func (c *clientVaultService) decryptItem(item models.VaultItem, secret string) models.VaultRecord {
	return models.VaultRecord{
		ID:       item.ID,
		Title:    c.fieldCipher.DecryptField(string(item.Title), secret),
		Username: c.fieldCipher.DecryptField(string(item.Username), secret),
		Password: c.fieldCipher.DecryptField(string(item.Password), secret),
		URL:      c.fieldCipher.DecryptField(string(item.URL), secret),
		Notes:    c.fieldCipher.DecryptField(string(item.Notes), secret),
	}
}
