package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-secret-vault/internal/adapter"
	"github.com/MKhiriev/go-secret-vault/internal/client"
	"github.com/MKhiriev/go-secret-vault/internal/service"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenSignup
	screenList
	screenDetail
	screenForm
	screenConfirmDelete
)

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  *client.Session

	currentScreen screen

	welcome welcomeModel
	login   authFormModel
	signup  authFormModel
	list    listModel
	detail  detailModel
	form    formModel

	pendingDelete models.VaultRecord
	status        string
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, session *client.Session) appModel {
	m := appModel{
		ctx:           ctx,
		services:      services,
		session:       session,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newAuthFormModel("log in"),
		signup:        newAuthFormModel("sign up"),
		list:          newListModel(services.VaultService.Filter),
	}

	// A persisted session skips the login screen. Without the secret the
	// vault stays locked, but the list is reachable.
	if session.Authenticated() {
		m.currentScreen = screenList
	}

	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenList {
		return m.cmdLoadList()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case authDoneMsg:
		return m.updateAuthDone(msg)
	case listLoadedMsg:
		if msg.err != nil {
			return m.handleTransportError(msg.err)
		}
		m.list = m.list.setRecords(msg.records)
		return m, nil
	case itemSavedMsg:
		if msg.err != nil {
			if unauthorized(msg.err) {
				return m.forceLogout()
			}
			if errors.Is(msg.err, adapter.ErrNotFound) {
				return m.staleRecord()
			}
			m.form.busy = false
			m.form.errMsg = saveErrorMessage(msg.err)
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		m.status = "record saved"
		return m, m.cmdLoadList()
	case itemDeletedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, adapter.ErrNotFound) {
				return m.staleRecord()
			}
			return m.handleTransportError(msg.err)
		}
		m.currentScreen = screenList
		m.list.loading = true
		m.status = "record deleted"
		return m, m.cmdLoadList()
	case copiedMsg:
		if msg.err != nil {
			m.status = "clipboard unavailable"
		} else {
			m.status = msg.what + " copied"
		}
		return m, nil
	case loggedOutMsg:
		m.currentScreen = screenWelcome
		m.login = m.login.reset()
		m.signup = m.signup.reset()
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit, except while typing in a form input.
	if key.Matches(msg, keys.quit) && !m.typing() {
		m.quitByUser = true
		return m, tea.Quit
	}

	switch m.currentScreen {
	case screenWelcome:
		var choice int
		m.welcome, choice = m.welcome.update(msg)
		switch choice {
		case 0:
			m.currentScreen = screenLogin
			m.login = m.login.reset()
		case 1:
			m.currentScreen = screenSignup
			m.signup = m.signup.reset()
		}
		return m, nil

	case screenLogin:
		if key.Matches(msg, keys.esc) {
			m.currentScreen = screenWelcome
			return m, nil
		}
		var cmd tea.Cmd
		var submitted bool
		m.login, cmd, submitted = m.login.update(msg)
		if submitted {
			return m, m.cmdLogin(m.login.email.Value(), m.login.pass.Value())
		}
		return m, cmd

	case screenSignup:
		if key.Matches(msg, keys.esc) {
			m.currentScreen = screenWelcome
			return m, nil
		}
		var cmd tea.Cmd
		var submitted bool
		m.signup, cmd, submitted = m.signup.update(msg)
		if submitted {
			return m, m.cmdSignup(m.signup.email.Value(), m.signup.pass.Value())
		}
		return m, cmd

	case screenList:
		return m.updateListKey(msg)

	case screenDetail:
		return m.updateDetailKey(msg)

	case screenForm:
		if key.Matches(msg, keys.esc) {
			m.currentScreen = screenList
			return m, nil
		}
		var cmd tea.Cmd
		var submitted bool
		m.form, cmd, submitted = m.form.update(msg)
		if submitted {
			return m, m.cmdSave(m.form.record())
		}
		return m, cmd

	case screenConfirmDelete:
		switch {
		case key.Matches(msg, keys.yes):
			return m, m.cmdDelete(m.pendingDelete.ID)
		case key.Matches(msg, keys.no):
			m.currentScreen = screenList
		}
		return m, nil
	}

	return m, nil
}

func (m appModel) updateListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		switch {
		case key.Matches(msg, keys.esc):
			m.list.searching = false
			m.list.search.SetValue("")
			m.list = m.list.applyFilter()
		case key.Matches(msg, keys.enter):
			m.list.searching = false
		default:
			var cmd tea.Cmd
			m.list.search, cmd = m.list.search.Update(msg)
			m.list = m.list.applyFilter()
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.list.cursor > 0 {
			m.list.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.list.cursor < len(m.list.filtered)-1 {
			m.list.cursor++
		}
	case key.Matches(msg, keys.search):
		m.list.searching = true
		m.list.search.Focus()
	case key.Matches(msg, keys.enter):
		if record, ok := m.list.selected(); ok {
			m.detail = newDetailModel(record)
			m.currentScreen = screenDetail
			m.status = ""
		}
	case key.Matches(msg, keys.newItem):
		m.form = newFormModel(models.VaultRecord{})
		m.currentScreen = screenForm
		m.status = ""
	case key.Matches(msg, keys.edit):
		if record, ok := m.list.selected(); ok {
			m.form = newFormModel(record)
			m.currentScreen = screenForm
			m.status = ""
		}
	case key.Matches(msg, keys.delete):
		if record, ok := m.list.selected(); ok {
			m.pendingDelete = record
			m.currentScreen = screenConfirmDelete
		}
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	}
	return m, nil
}

func (m appModel) updateDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenList
		m.status = ""
	case key.Matches(msg, keys.reveal):
		m.detail.revealed = !m.detail.revealed
	case key.Matches(msg, keys.copy):
		return m, cmdCopy("password", m.detail.record.Password)
	case key.Matches(msg, keys.copyUser):
		return m, cmdCopy("username", m.detail.record.Username)
	case key.Matches(msg, keys.edit):
		m.form = newFormModel(m.detail.record)
		m.currentScreen = screenForm
	case key.Matches(msg, keys.delete):
		m.pendingDelete = m.detail.record
		m.currentScreen = screenConfirmDelete
	}
	return m, nil
}

func (m appModel) updateAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	form := &m.login
	if m.currentScreen == screenSignup {
		form = &m.signup
	}

	if msg.err != nil {
		form.busy = false
		form.errMsg = authErrorMessage(msg.err)
		return m, nil
	}

	m.session.Start(m.ctx, msg.auth, msg.password)
	m.currentScreen = screenList
	m.list = newListModel(m.services.VaultService.Filter)
	m.status = ""
	return m, m.cmdLoadList()
}

// typing reports whether a text input currently has focus, so plain
// letters are not hijacked as shortcuts.
func (m appModel) typing() bool {
	switch m.currentScreen {
	case screenLogin, screenSignup, screenForm:
		return true
	case screenList:
		return m.list.searching
	}
	return false
}

func (m appModel) forceLogout() (tea.Model, tea.Cmd) {
	return m, m.cmdLogout()
}

// staleRecord handles a write against an id the server no longer has:
// tell the user and reload so the local list drops the stale row.
func (m appModel) staleRecord() (tea.Model, tea.Cmd) {
	m.currentScreen = screenList
	m.list.loading = true
	m.status = "record no longer exists, refreshing"
	return m, m.cmdLoadList()
}

func (m appModel) handleTransportError(err error) (tea.Model, tea.Cmd) {
	if unauthorized(err) {
		// The server no longer accepts the token. Drop the session and
		// start over at the welcome screen.
		return m.forceLogout()
	}
	m.list.loading = false
	m.status = "server unavailable"
	return m, nil
}

func unauthorized(err error) bool {
	return errors.Is(err, adapter.ErrUnauthorized)
}

func authErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "email and password are required"
	case errors.Is(err, service.ErrPasswordTooShort):
		return "password must be at least 8 characters"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "wrong email or password"
	case errors.Is(err, adapter.ErrBadRequest):
		return "registration rejected: " + err.Error()
	default:
		return "server unavailable"
	}
}

func saveErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingRequiredFields):
		return "title, username and password are required"
	case errors.Is(err, service.ErrNoSessionSecret):
		return "log in again before editing records"
	case errors.Is(err, adapter.ErrNotFound):
		return "record no longer exists"
	default:
		return "save failed"
	}
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.view()
	case screenLogin:
		body = m.login.view()
	case screenSignup:
		body = m.signup.view()
	case screenList:
		body = m.list.view(m.session.Email(), m.session.CanDecrypt(), m.status)
	case screenDetail:
		body = m.detail.view(m.status)
	case screenForm:
		body = m.form.view()
	case screenConfirmDelete:
		body = confirmStyle.Render("delete \"" + m.pendingDelete.Title + "\"?\n\ny delete • n cancel")
	}
	return appStyle.Render(body)
}

// Commands. Each one runs on its own goroutine and reports back with a
// message; models never block.

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	return func() tea.Msg {
		auth, err := m.services.AuthService.Login(m.ctx, models.Credentials{Email: email, Password: password})
		return authDoneMsg{auth: auth, password: password, err: err}
	}
}

func (m appModel) cmdSignup(email, password string) tea.Cmd {
	return func() tea.Msg {
		auth, err := m.services.AuthService.Signup(m.ctx, models.Credentials{Email: email, Password: password})
		return authDoneMsg{auth: auth, password: password, err: err}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	return func() tea.Msg {
		records, err := m.services.VaultService.List(m.ctx)
		return listLoadedMsg{records: records, err: err}
	}
}

func (m appModel) cmdSave(record models.VaultRecord) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.VaultService.Save(m.ctx, record)
		return itemSavedMsg{err: err}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	return func() tea.Msg {
		return itemDeletedMsg{err: m.services.VaultService.Remove(m.ctx, id)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	return func() tea.Msg {
		_ = m.session.Logout(m.ctx)
		return loggedOutMsg{}
	}
}

func cmdCopy(what, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboard.WriteAll(value)}
	}
}
