package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository]. Ciphertext columns pass through it untouched: the
// repository scans and binds them as plain strings without ever decoding
// their content.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

// List implements [VaultRepository]. Rows come back in insertion order
// (created_at ascending); callers must not rely on the order being stable
// across calls.
func (r *vaultRepository) List(ctx context.Context, userID int64) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select(vaultColumns...).
		From("vault_items").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error listing vault items")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0)
	for rows.Next() {
		var item models.VaultItem
		if err = rows.Scan(
			&item.ID, &item.UserID,
			&item.Title, &item.Username, &item.Password, &item.URL, &item.Notes,
			&item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			log.Err(err).Msg("error scanning vault item row")
			return nil, fmt.Errorf("scan vault item: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vault items: %w", err)
	}

	return items, nil
}

// Create implements [VaultRepository]. The id is assigned here (UUID v4) so
// that the INSERT is a single round trip.
func (r *vaultRepository) Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	item.ID = uuid.NewString()

	query, args, err := psql.
		Insert("vault_items").
		Columns("id", "user_id", "title", "username", "password", "url", "notes").
		Values(item.ID, item.UserID, item.Title, item.Username, item.Password, item.URL, item.Notes).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("build create query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
		log.Err(err).Int64("user_id", item.UserID).Msg("error creating vault item")
		return models.VaultItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// Update implements [VaultRepository]. The ownership check runs first and
// separately from the write, so a cross-owner id is rejected before any
// column is touched.
func (r *vaultRepository) Update(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	if err := r.checkOwnership(ctx, item.ID, item.UserID); err != nil {
		return models.VaultItem{}, err
	}

	query, args, err := psql.
		Update("vault_items").
		Set("title", item.Title).
		Set("username", item.Username).
		Set("password", item.Password).
		Set("url", item.URL).
		Set("notes", item.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID, "user_id": item.UserID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("build update query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&item.CreatedAt, &item.UpdatedAt); err != nil {
		log.Err(err).Str("id", item.ID).Msg("error updating vault item")
		return models.VaultItem{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return item, nil
}

// Delete implements [VaultRepository]. Same ownership-before-write policy
// as Update.
func (r *vaultRepository) Delete(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	if err := r.checkOwnership(ctx, id, userID); err != nil {
		return err
	}

	query, args, err := psql.
		Delete("vault_items").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("id", id).Msg("error deleting vault item")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// checkOwnership resolves the owner of the row with the given id and
// compares it against userID. Returns ErrVaultItemNotFound when the id is
// unknown and ErrNotOwner when it belongs to a different user.
func (r *vaultRepository) checkOwnership(ctx context.Context, id string, userID int64) error {
	query, args, err := psql.
		Select("user_id").
		From("vault_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build ownership query: %w", err)
	}

	var owner int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&owner); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrVaultItemNotFound
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if owner != userID {
		return ErrNotOwner
	}

	return nil
}
