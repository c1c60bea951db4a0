package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVaultRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	now := time.Now()
	mock.ExpectQuery(`SELECT id, user_id, title, username, password, url, notes, created_at, updated_at FROM vault_items`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(vaultColumns).
			AddRow("item-1", int64(1), "ct-title", "ct-user", "ct-pass", "ct-url", "ct-notes", now, now).
			AddRow("item-2", int64(1), "ct-title-2", "ct-user-2", "ct-pass-2", "", "", now, now))

	items, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "item-1", items[0].ID)
	assert.Equal(t, models.CipheredField("ct-pass"), items[0].Password)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT id, user_id, title, username, password, url, notes, created_at, updated_at FROM vault_items`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(vaultColumns))

	items, err := repo.List(context.Background(), 7)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestVaultRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO vault_items`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), models.VaultItem{
		UserID:   1,
		Title:    "ct-title",
		Username: "ct-user",
		Password: "ct-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	require.NotNil(t, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	now := time.Now()
	mock.ExpectQuery(`SELECT user_id FROM vault_items`).
		WithArgs("item-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)))
	mock.ExpectQuery(`UPDATE vault_items`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	updated, err := repo.Update(context.Background(), models.VaultItem{
		ID:       "item-1",
		UserID:   1,
		Title:    "ct-title-new",
		Username: "ct-user",
		Password: "ct-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "item-1", updated.ID)
	require.NotNil(t, updated.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT user_id FROM vault_items`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := repo.Update(context.Background(), models.VaultItem{ID: "missing", UserID: 1})
	assert.ErrorIs(t, err, ErrVaultItemNotFound)
}

func TestVaultRepository_Update_NotOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT user_id FROM vault_items`).
		WithArgs("item-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(2)))

	_, err := repo.Update(context.Background(), models.VaultItem{ID: "item-1", UserID: 1})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestVaultRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT user_id FROM vault_items`).
		WithArgs("item-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(1)))
	mock.ExpectExec(`DELETE FROM vault_items`).
		WithArgs("item-1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 1, "item-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultRepository_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT user_id FROM vault_items`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	err := repo.Delete(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, ErrVaultItemNotFound)
}

func TestVaultRepository_Delete_NotOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVaultRepository(db, logger.Nop())

	mock.ExpectQuery(`SELECT user_id FROM vault_items`).
		WithArgs("item-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(9)))

	err := repo.Delete(context.Background(), 1, "item-1")
	assert.ErrorIs(t, err, ErrNotOwner)
}
