package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authFormModel is the shared email+password form behind both the login
// and the signup screens. The password input echoes asterisks; the typed
// value stays inside the model until submission.
type authFormModel struct {
	title  string
	email  textinput.Model
	pass   textinput.Model
	focus  int
	errMsg string
	busy   bool
}

func newAuthFormModel(title string) authFormModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "master password"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	return authFormModel{title: title, email: email, pass: pass}
}

func (m authFormModel) reset() authFormModel {
	m.email.SetValue("")
	m.pass.SetValue("")
	m.errMsg = ""
	m.busy = false
	m.focus = 0
	m.email.Focus()
	m.pass.Blur()
	return m
}

// update returns the new model, a command, and whether the form was
// submitted with both fields filled.
func (m authFormModel) update(msg tea.Msg) (authFormModel, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.busy {
		switch {
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.email.Focus()
				m.pass.Blur()
			} else {
				m.email.Blur()
				m.pass.Focus()
			}
			return m, nil, false
		case key.Matches(keyMsg, keys.enter):
			if m.focus == 0 {
				m.focus = 1
				m.email.Blur()
				m.pass.Focus()
				return m, nil, false
			}
			if strings.TrimSpace(m.email.Value()) == "" || m.pass.Value() == "" {
				m.errMsg = "email and master password are required"
				return m, nil, false
			}
			m.busy = true
			m.errMsg = ""
			return m, nil, true
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.pass, cmd = m.pass.Update(msg)
	}
	return m, cmd, false
}

func (m authFormModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(m.pass.View())
	b.WriteString("\n\n")
	if m.busy {
		b.WriteString(statusStyle.Render("talking to server..."))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter submit • tab next field • esc back"))
	return b.String()
}
