// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the client uses to talk to
// the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-secret-vault/models"
)

// ServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, bearer token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Every vault payload crossing this boundary is already encrypted: the
// adapter moves ciphertext, never plaintext field values.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Call it after a successful Signup or Login,
	// or when restoring a persisted session.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// Signup registers a new account and returns the issued token together
	// with the public user record. The token is also stored via SetToken.
	Signup(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates an existing account. Same token handling as
	// Signup. Returns ErrUnauthorized (wrapped) on bad credentials.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// List fetches all vault items of the authenticated user.
	List(ctx context.Context) ([]models.VaultItem, error)

	// Create stores a new vault item and returns it with server-assigned
	// id and timestamps.
	Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// Update overwrites all field values of an existing item. Returns
	// ErrNotFound (wrapped) for an unknown id and ErrUnauthorized for an
	// item owned by someone else.
	Update(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// Delete removes the item with the given id. Same error mapping as
	// Update.
	Delete(ctx context.Context, id string) error
}
