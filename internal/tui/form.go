package tui

import (
	"strings"

	"github.com/MKhiriev/go-secret-vault/internal/crypto"
	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldTitle = iota
	fieldUsername
	fieldPassword
	fieldURL
	fieldNotes
	fieldCount
)

// formModel is the create/edit form for one vault record. Ctrl+G fills
// the password field from the password generator.
type formModel struct {
	recordID string
	inputs   []textinput.Model
	focus    int
	errMsg   string
	busy     bool
}

func newFormModel(record models.VaultRecord) formModel {
	labels := []string{"title", "username", "password", "url", "notes"}
	values := []string{record.Title, record.Username, record.Password, record.URL, record.Notes}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		input := textinput.New()
		input.Placeholder = labels[i]
		input.CharLimit = 1024
		input.SetValue(values[i])
		inputs[i] = input
	}
	inputs[fieldTitle].Focus()

	return formModel{recordID: record.ID, inputs: inputs}
}

func (m formModel) record() models.VaultRecord {
	return models.VaultRecord{
		ID:       m.recordID,
		Title:    strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Username: m.inputs[fieldUsername].Value(),
		Password: m.inputs[fieldPassword].Value(),
		URL:      strings.TrimSpace(m.inputs[fieldURL].Value()),
		Notes:    m.inputs[fieldNotes].Value(),
	}
}

func (m formModel) setFocus(focus int) formModel {
	m.focus = (focus + fieldCount) % fieldCount
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

// update returns the new model, a command, and whether the form was
// submitted.
func (m formModel) update(msg tea.Msg) (formModel, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.busy {
		switch {
		case key.Matches(keyMsg, keys.tab):
			return m.setFocus(m.focus + 1), nil, false
		case key.Matches(keyMsg, keys.backtab):
			return m.setFocus(m.focus - 1), nil, false
		case key.Matches(keyMsg, keys.generate):
			if password, err := crypto.GeneratePassword(crypto.DefaultPasswordOptions()); err == nil {
				m.inputs[fieldPassword].SetValue(password)
			}
			return m, nil, false
		case key.Matches(keyMsg, keys.enter):
			if m.focus < fieldNotes {
				return m.setFocus(m.focus + 1), nil, false
			}
			record := m.record()
			if !record.Valid() {
				m.errMsg = "title, username and password are required"
				return m, nil, false
			}
			m.busy = true
			m.errMsg = ""
			return m, nil, true
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, false
}

func (m formModel) view() string {
	var b strings.Builder
	if m.recordID == "" {
		b.WriteString(titleStyle.Render("new record"))
	} else {
		b.WriteString(titleStyle.Render("edit record"))
	}
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.busy {
		b.WriteString(statusStyle.Render("saving..."))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter next/save • tab next field • ctrl+g generate password • esc cancel"))
	return b.String()
}
