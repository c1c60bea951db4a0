// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a
}

func TestNewHTTPServerAdapter_AddressValidation(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full url", address: "http://localhost:8080"},
		{name: "host port only", address: "localhost:8080"},
		{name: "empty", address: "", wantErr: true},
		{name: "whitespace", address: "   ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHTTPServerAdapter_Signup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var credentials models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&credentials))
		assert.Equal(t, "john.doe@example.com", credentials.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Message: "user registered",
			Token:   "issued-token",
			User:    models.PublicUser{ID: 1, Email: credentials.Email},
		})
	})
	a := newTestAdapter(t, mux)

	authResponse, err := a.Signup(context.Background(), models.Credentials{Email: "john.doe@example.com", Password: "pass"})
	require.NoError(t, err)
	assert.Equal(t, "issued-token", authResponse.Token)
	assert.Equal(t, int64(1), authResponse.User.ID)
	assert.Equal(t, "issued-token", a.Token(), "token must be retained for later requests")
}

func TestHTTPServerAdapter_Signup_DuplicateEmail(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Detail: "email already registered"})
	})
	a := newTestAdapter(t, mux)

	_, err := a.Signup(context.Background(), models.Credentials{Email: "a@b.c", Password: "pass"})
	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "email already registered")
}

func TestHTTPServerAdapter_Login_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Detail: "wrong email or password"})
	})
	a := newTestAdapter(t, mux)

	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestHTTPServerAdapter_List_SendsBearerToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/vault", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer stored-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.VaultItem{
			{ID: "item-1", Title: "ct-title", Username: "ct-user", Password: "ct-pass"},
		})
	})
	a := newTestAdapter(t, mux)
	a.SetToken("stored-token")

	items, err := a.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.CipheredField("ct-pass"), items[0].Password)
}

func TestHTTPServerAdapter_Create(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/vault", func(w http.ResponseWriter, r *http.Request) {
		var item models.VaultItem
		require.NoError(t, json.NewDecoder(r.Body).Decode(&item))
		item.ID = "server-assigned"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.ItemResponse{Message: "item created", Item: item})
	})
	a := newTestAdapter(t, mux)
	a.SetToken("stored-token")

	created, err := a.Create(context.Background(), models.VaultItem{Title: "ct-title"})
	require.NoError(t, err)
	assert.Equal(t, "server-assigned", created.ID)
	assert.Equal(t, models.CipheredField("ct-title"), created.Title)
}

func TestHTTPServerAdapter_Update_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/vault/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Detail: "vault item not found"})
	})
	a := newTestAdapter(t, mux)
	a.SetToken("stored-token")

	_, err := a.Update(context.Background(), models.VaultItem{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHTTPServerAdapter_Delete(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/vault/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "item-1", r.PathValue("id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "item deleted"})
	})
	a := newTestAdapter(t, mux)
	a.SetToken("stored-token")

	assert.NoError(t, a.Delete(context.Background(), "item-1"))
}

func TestHTTPServerAdapter_TransportFailure(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		// Reserved TEST-NET address, nothing listens there.
		HTTPAddress:    "http://192.0.2.1:9",
		RequestTimeout: 200 * time.Millisecond,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.List(context.Background())
	assert.Error(t, err)
}
