package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListScreenModel() appModel {
	identity := func(records []models.VaultRecord, _ string) []models.VaultRecord {
		return records
	}
	return appModel{
		currentScreen: screenList,
		list:          newListModel(identity),
	}
}

func TestUpdate_DeleteStaleRecord(t *testing.T) {
	m := newListScreenModel()

	updated, cmd := m.Update(itemDeletedMsg{err: adapter.ErrNotFound})

	got := updated.(appModel)
	assert.Equal(t, screenList, got.currentScreen)
	assert.Equal(t, "record no longer exists, refreshing", got.status)
	assert.True(t, got.list.loading)
	require.NotNil(t, cmd, "a stale delete must trigger a list reload")
}

func TestUpdate_SaveStaleRecord(t *testing.T) {
	m := newListScreenModel()
	m.currentScreen = screenForm

	updated, cmd := m.Update(itemSavedMsg{err: adapter.ErrNotFound})

	got := updated.(appModel)
	assert.Equal(t, screenList, got.currentScreen)
	assert.Equal(t, "record no longer exists, refreshing", got.status)
	require.NotNil(t, cmd, "a stale save must trigger a list reload")
}

func TestUpdate_DeleteTransportError(t *testing.T) {
	m := newListScreenModel()

	updated, cmd := m.Update(itemDeletedMsg{err: errors.New("connection refused")})

	got := updated.(appModel)
	assert.Equal(t, "server unavailable", got.status)
	assert.False(t, got.list.loading)
	assert.Nil(t, cmd)
}
