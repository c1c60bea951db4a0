// Package tui implements the interactive terminal client.
//
// One bubbletea program drives all screens: welcome, login and signup
// forms, the vault list with incremental search, the record detail view
// with clipboard copy, the create/edit form with a password generator,
// and the delete confirmation. Decrypted values exist only inside the
// program model; nothing in this package writes them anywhere else.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-secret-vault/internal/client"
	"github.com/MKhiriev/go-secret-vault/internal/logger"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	session  *client.Session
	logger   *logger.Logger
}

func New(services *service.ClientServices, session *client.Session, logger *logger.Logger) *TUI {
	return &TUI{services: services, session: session, logger: logger}
}

// Run starts the interactive client and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.session)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
