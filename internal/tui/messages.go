package tui

import "github.com/MKhiriev/go-secret-vault/models"

type authDoneMsg struct {
	auth     models.AuthResponse
	password string
	err      error
}

type listLoadedMsg struct {
	records []models.VaultRecord
	err     error
}

type itemSavedMsg struct {
	err error
}

type itemDeletedMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type loggedOutMsg struct{}
