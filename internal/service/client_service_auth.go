package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/models"
)

// clientAuthService is a thin validation layer in front of the server
// adapter. Key material never appears here: the password goes to the
// server as-is over the transport channel, and the same password doubles
// as the session secret held by the caller.
type clientAuthService struct {
	serverAdapter adapter.ServerAdapter
	logger        *logger.Logger
}

// NewClientAuthService constructs a ClientAuthService over the given
// server adapter.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

// minPasswordLength is enforced on signup only; login accepts whatever
// the account was created with.
const minPasswordLength = 8

// Signup implements [ClientAuthService].
func (c *clientAuthService) Signup(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)
	if credentials.Email == "" || credentials.Password == "" {
		return models.AuthResponse{}, ErrInvalidDataProvided
	}
	if len(credentials.Password) < minPasswordLength {
		return models.AuthResponse{}, ErrPasswordTooShort
	}

	authResponse, err := c.serverAdapter.Signup(ctx, credentials)
	if err != nil {
		c.logger.Err(err).Msg("signup failed")
		return models.AuthResponse{}, fmt.Errorf("signup failed: %w", err)
	}

	return authResponse, nil
}

// Login implements [ClientAuthService].
func (c *clientAuthService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	credentials.Email = strings.TrimSpace(credentials.Email)
	if credentials.Email == "" || credentials.Password == "" {
		return models.AuthResponse{}, ErrInvalidDataProvided
	}

	authResponse, err := c.serverAdapter.Login(ctx, credentials)
	if err != nil {
		c.logger.Err(err).Msg("login failed")
		return models.AuthResponse{}, fmt.Errorf("login failed: %w", err)
	}

	return authResponse, nil
}
