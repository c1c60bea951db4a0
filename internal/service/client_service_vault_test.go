// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServerAdapter is a hand-rolled adapter.ServerAdapter backed by an
// in-memory item map, enough to exercise the encrypt/decrypt round trip
// without a server.
type fakeServerAdapter struct {
	token string
	items map[string]models.VaultItem
	order []string

	listErr   error
	createErr error
	updateErr error
	deleteErr error
}

func newFakeServerAdapter() *fakeServerAdapter {
	return &fakeServerAdapter{items: map[string]models.VaultItem{}}
}

func (f *fakeServerAdapter) SetToken(token string) { f.token = token }
func (f *fakeServerAdapter) Token() string         { return f.token }

func (f *fakeServerAdapter) Signup(_ context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return models.AuthResponse{Token: "signup-token", User: models.PublicUser{ID: 1, Email: credentials.Email}}, nil
}

func (f *fakeServerAdapter) Login(_ context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return models.AuthResponse{Token: "login-token", User: models.PublicUser{ID: 1, Email: credentials.Email}}, nil
}

func (f *fakeServerAdapter) List(_ context.Context) ([]models.VaultItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	items := make([]models.VaultItem, 0, len(f.order))
	for _, id := range f.order {
		items = append(items, f.items[id])
	}
	return items, nil
}

func (f *fakeServerAdapter) Create(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
	if f.createErr != nil {
		return models.VaultItem{}, f.createErr
	}
	item.ID = "item-" + string(rune('1'+len(f.order)))
	f.items[item.ID] = item
	f.order = append(f.order, item.ID)
	return item, nil
}

func (f *fakeServerAdapter) Update(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
	if f.updateErr != nil {
		return models.VaultItem{}, f.updateErr
	}
	if _, ok := f.items[item.ID]; !ok {
		return models.VaultItem{}, adapter.ErrNotFound
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeServerAdapter) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.items, id)
	return nil
}

// fakeSecretSource is a SecretSource with a settable secret.
type fakeSecretSource struct {
	secret string
}

func (f *fakeSecretSource) Secret() string   { return f.secret }
func (f *fakeSecretSource) CanDecrypt() bool { return f.secret != "" }

func newTestVaultService(t *testing.T, secret string) (ClientVaultService, *fakeServerAdapter, *fakeSecretSource) {
	t.Helper()

	srv := newFakeServerAdapter()
	source := &fakeSecretSource{secret: secret}
	svc := NewClientVaultService(srv, crypto.NewFieldCipher(logger.Nop()), source, logger.Nop())

	return svc, srv, source
}

func TestClientVaultService_SaveAndList_RoundTrip(t *testing.T) {
	svc, srv, _ := newTestVaultService(t, "master-password")
	ctx := context.Background()

	record := models.VaultRecord{
		Title:    "personal mail",
		Username: "john.doe@example.com",
		Password: "p@ssw0rd",
		URL:      "https://mail.example.com",
		Notes:    "recovery codes in the drawer",
	}

	saved, err := svc.Save(ctx, record)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	// The server side must hold ciphertext only.
	stored := srv.items[saved.ID]
	assert.NotEqual(t, models.CipheredField(record.Title), stored.Title)
	assert.NotEqual(t, models.CipheredField(record.Password), stored.Password)
	assert.NotContains(t, string(stored.Password), record.Password)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, record.Title, got.Title)
	assert.Equal(t, record.Username, got.Username)
	assert.Equal(t, record.Password, got.Password)
	assert.Equal(t, record.URL, got.URL)
	assert.Equal(t, record.Notes, got.Notes)
}

func TestClientVaultService_SaveAndList_EmptyOptionalFields(t *testing.T) {
	svc, srv, _ := newTestVaultService(t, "master-password")
	ctx := context.Background()

	saved, err := svc.Save(ctx, models.VaultRecord{Title: "wifi", Username: "admin", Password: "hunter2"})
	require.NoError(t, err)

	// Empty optional fields are encrypted too: the blob is never "".
	stored := srv.items[saved.ID]
	assert.NotEmpty(t, stored.URL)
	assert.NotEmpty(t, stored.Notes)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].URL)
	assert.Empty(t, records[0].Notes)
}

func TestClientVaultService_Save_MissingRequiredFields(t *testing.T) {
	svc, _, _ := newTestVaultService(t, "master-password")
	ctx := context.Background()

	tests := []struct {
		name   string
		record models.VaultRecord
	}{
		{name: "no title", record: models.VaultRecord{Username: "u", Password: "p"}},
		{name: "no username", record: models.VaultRecord{Title: "t", Password: "p"}},
		{name: "no password", record: models.VaultRecord{Title: "t", Username: "u"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(ctx, tt.record)
			assert.ErrorIs(t, err, ErrMissingRequiredFields)
		})
	}
}

func TestClientVaultService_Save_NoSessionSecret(t *testing.T) {
	svc, _, source := newTestVaultService(t, "master-password")
	source.secret = ""

	_, err := svc.Save(context.Background(), models.VaultRecord{Title: "t", Username: "u", Password: "p"})
	assert.ErrorIs(t, err, ErrNoSessionSecret)
}

func TestClientVaultService_Save_UpdateExisting(t *testing.T) {
	svc, srv, _ := newTestVaultService(t, "master-password")
	ctx := context.Background()

	saved, err := svc.Save(ctx, models.VaultRecord{Title: "bank", Username: "john", Password: "old"})
	require.NoError(t, err)
	before := srv.items[saved.ID]

	saved.Password = "new"
	updated, err := svc.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	require.Len(t, srv.items, 1)
	assert.NotEqual(t, before.Password, srv.items[saved.ID].Password)

	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].Password)
}

// A wrong or absent secret degrades fields to "" instead of erroring the
// listing, and the record ids stay visible.
func TestClientVaultService_List_DegradesPerField(t *testing.T) {
	svc, srv, source := newTestVaultService(t, "master-password")
	ctx := context.Background()

	saved, err := svc.Save(ctx, models.VaultRecord{Title: "mail", Username: "john", Password: "secret"})
	require.NoError(t, err)

	source.secret = "wrong-password"
	records, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, saved.ID, records[0].ID)
	assert.Empty(t, records[0].Title)
	assert.Empty(t, records[0].Password)

	// Restored session without any secret behaves the same way.
	source.secret = ""
	records, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Title)

	// A corrupted blob degrades only its own field.
	item := srv.items[saved.ID]
	item.Username = "garbage"
	srv.items[saved.ID] = item
	source.secret = "master-password"

	records, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Username)
	assert.Equal(t, "mail", records[0].Title)
	assert.Equal(t, "secret", records[0].Password)
}

func TestClientVaultService_List_TransportError(t *testing.T) {
	svc, srv, _ := newTestVaultService(t, "master-password")
	srv.listErr = errors.New("connection refused")

	_, err := svc.List(context.Background())
	assert.Error(t, err)
}

func TestClientVaultService_Remove(t *testing.T) {
	svc, srv, _ := newTestVaultService(t, "master-password")
	ctx := context.Background()

	saved, err := svc.Save(ctx, models.VaultRecord{Title: "t", Username: "u", Password: "p"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, saved.ID))
	assert.Empty(t, srv.items)

	assert.ErrorIs(t, svc.Remove(ctx, ""), ErrInvalidDataProvided)
}

func TestClientVaultService_Filter(t *testing.T) {
	svc, _, _ := newTestVaultService(t, "master-password")

	records := []models.VaultRecord{
		{ID: "1", Title: "Personal Mail", Username: "john", URL: "https://mail.example.com"},
		{ID: "2", Title: "Bank", Username: "john.doe", URL: "https://bank.example.com"},
		{ID: "3", Title: "wifi", Username: "admin", Notes: "MAIL router"},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "title match case-insensitive", query: "mail", wantIDs: []string{"1"}},
		{name: "username match", query: "DOE", wantIDs: []string{"2"}},
		{name: "url match", query: "bank.example", wantIDs: []string{"2"}},
		{name: "notes are not searched", query: "router", wantIDs: []string{}},
		{name: "empty query returns all", query: "  ", wantIDs: []string{"1", "2", "3"}},
		{name: "no match", query: "zzz", wantIDs: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Filter(records, tt.query)
			ids := make([]string, 0, len(got))
			for _, r := range got {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
