// Package client implements the interactive client application runtime.
//
// It wires the server adapter, the local session store, the in-memory
// session, and the terminal UI into a single process lifecycle.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/config"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
)

// App bundles everything the client process needs: the session, the
// client services, and the local store handle for shutdown.
type App struct {
	Session  *Session
	Adapter  adapter.ServerAdapter
	sessions store.SessionStore
	logger   *logger.Logger
}

// NewApp wires the transport and storage layers from cfg. The terminal UI
// is attached by the caller; this keeps the package free of a UI
// dependency.
func NewApp(cfg config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	sessionStore, err := store.NewSessionStore(cfg.Storage.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	return &App{
		Session:  NewSession(serverAdapter, sessionStore, log),
		Adapter:  serverAdapter,
		sessions: sessionStore,
		logger:   log,
	}, nil
}

// RestoreSession tries to rehydrate a persisted session. A missing
// session is a normal first start, not an error.
func (a *App) RestoreSession(ctx context.Context) error {
	err := a.Session.Restore(ctx)
	if err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
		return err
	}

	if err == nil {
		a.logger.Info().Str("email", a.Session.Email()).Msg("restored persisted session")
	}
	return nil
}

// Close releases the local store handle.
func (a *App) Close() error {
	return a.sessions.Close()
}
