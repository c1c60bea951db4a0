package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

type welcomeModel struct {
	cursor  int
	choices []string
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{choices: []string{"Log in", "Sign up"}}
}

func (m welcomeModel) update(msg tea.KeyMsg) (welcomeModel, int) {
	switch {
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.enter):
		return m, m.cursor
	}
	return m, -1
}

func (m welcomeModel) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("go-secret-vault"))
	b.WriteString("\n\n")
	for i, choice := range m.choices {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("> %s\n", selectedStyle.Render(choice)))
		} else {
			b.WriteString(fmt.Sprintf("  %s\n", choice))
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter select • q quit"))
	return b.String()
}
