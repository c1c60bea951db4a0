package service

import (
	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
)

type ClientServices struct {
	AuthService  ClientAuthService
	VaultService ClientVaultService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, secretSource SecretSource, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, logger),
		VaultService: NewClientVaultService(serverAdapter, crypto.NewFieldCipher(logger), secretSource, logger),
	}
}
