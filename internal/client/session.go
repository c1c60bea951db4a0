package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/store"
	"github.com/MKhiriev/go-secret-vault/internal/utils"
	"github.com/MKhiriev/go-secret-vault/models"
)

// Session is the client's authentication state. It has two layers with
// very different lifetimes:
//
//   - the session secret (the master password), held in process memory
//     only and wiped on logout. It never reaches the session store, the
//     adapter, or a log line;
//   - the token and identity, persisted in the local session store so the
//     next start can skip the login screen.
//
// A session restored from disk therefore has a token but no secret:
// Authenticated reports true while CanDecrypt reports false, and vault
// fields stay blank until the user logs in again.
//
// Session implements service.SecretSource. It is safe for concurrent use.
type Session struct {
	serverAdapter adapter.ServerAdapter
	sessionStore  store.SessionStore
	logger        *logger.Logger

	mu     sync.RWMutex
	secret string
	token  string
	userID int64
	email  string
}

// NewSession constructs an unauthenticated Session over the given adapter
// and session store.
func NewSession(serverAdapter adapter.ServerAdapter, sessionStore store.SessionStore, logger *logger.Logger) *Session {
	return &Session{
		serverAdapter: serverAdapter,
		sessionStore:  sessionStore,
		logger:        logger,
	}
}

// Start establishes an authenticated session from a successful signup or
// login response. The password becomes the in-memory session secret; the
// token and identity are also persisted so the session survives a
// restart. A persistence failure is logged but does not fail the session:
// the user is still logged in, just not across restarts.
func (s *Session) Start(ctx context.Context, auth models.AuthResponse, password string) {
	s.mu.Lock()
	s.secret = password
	s.token = auth.Token
	s.userID = auth.User.ID
	s.email = auth.User.Email
	s.mu.Unlock()

	s.serverAdapter.SetToken(auth.Token)

	err := s.sessionStore.Save(ctx, store.LocalSession{
		UserID: auth.User.ID,
		Email:  auth.User.Email,
		Token:  auth.Token,
	})
	if err != nil {
		s.logger.Err(err).Msg("failed to persist local session")
	}
}

// Restore rehydrates the token and identity from the local session store.
// The user id is taken from the token's "sub" claim, not the stored row:
// the token is the identity the server will act on. The secret cannot be
// restored; CanDecrypt stays false until the next Start. Returns
// store.ErrLocalSessionNotFound when nothing is persisted.
func (s *Session) Restore(ctx context.Context) error {
	persisted, err := s.sessionStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore local session: %w", err)
	}

	userID, err := utils.ParseUserIDFromJWT(persisted.Token)
	if err != nil {
		return fmt.Errorf("restore local session: unusable token: %w", err)
	}

	s.mu.Lock()
	s.secret = ""
	s.token = persisted.Token
	s.userID = userID
	s.email = persisted.Email
	s.mu.Unlock()

	s.serverAdapter.SetToken(persisted.Token)
	return nil
}

// Logout wipes the in-memory state, including the secret, and clears the
// persisted session. Used both for an explicit logout and when the server
// rejects the token.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.secret = ""
	s.token = ""
	s.userID = 0
	s.email = ""
	s.mu.Unlock()

	s.serverAdapter.SetToken("")

	if err := s.sessionStore.Clear(ctx); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}

	return nil
}

// Secret implements service.SecretSource.
func (s *Session) Secret() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.secret
}

// CanDecrypt implements service.SecretSource.
func (s *Session) CanDecrypt() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.secret != ""
}

// Authenticated reports whether the session holds a token. It says
// nothing about the secret: a restored session is authenticated but
// cannot decrypt.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Email returns the identity of the current session, or "" when logged
// out.
func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// UserID returns the user id of the current session, or 0 when logged
// out.
func (s *Session) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}
