package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionStore(t *testing.T) SessionStore {
	t.Helper()

	store, err := NewSessionStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newTestSessionStore(t)

	saved := LocalSession{UserID: 42, Email: "john.doe@example.com", Token: "jwt-token"}
	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.UserID, loaded.UserID)
	assert.Equal(t, saved.Email, loaded.Email)
	assert.Equal(t, saved.Token, loaded.Token)
	assert.False(t, loaded.SavedAt.IsZero())
}

func TestSessionStore_SaveReplacesPreviousSession(t *testing.T) {
	ctx := context.Background()
	store := newTestSessionStore(t)

	require.NoError(t, store.Save(ctx, LocalSession{UserID: 1, Email: "old@example.com", Token: "old-token"}))
	require.NoError(t, store.Save(ctx, LocalSession{UserID: 2, Email: "new@example.com", Token: "new-token"}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loaded.UserID)
	assert.Equal(t, "new@example.com", loaded.Email)
	assert.Equal(t, "new-token", loaded.Token)
}

func TestSessionStore_LoadEmpty(t *testing.T) {
	store := newTestSessionStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := newTestSessionStore(t)

	require.NoError(t, store.Save(ctx, LocalSession{UserID: 7, Email: "john.doe@example.com", Token: "jwt-token"}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSessionStore_ClearEmptyStore(t *testing.T) {
	store := newTestSessionStore(t)

	assert.NoError(t, store.Clear(context.Background()))
}

func TestSessionStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	first, err := NewSessionStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(ctx, LocalSession{UserID: 9, Email: "john.doe@example.com", Token: "jwt-token"}))
	require.NoError(t, first.Close())

	second, err := NewSessionStore(path)
	require.NoError(t, err)
	defer second.Close()

	loaded, err := second.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), loaded.UserID)
	assert.Equal(t, "jwt-token", loaded.Token)
}
