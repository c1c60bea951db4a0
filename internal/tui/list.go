package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secret-vault/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// listModel renders the vault records with an incremental search bar.
// Filtering happens on already-decrypted records, so a session without a
// secret simply shows blank titles.
type listModel struct {
	records  []models.VaultRecord
	filtered []models.VaultRecord
	cursor   int
	loading  bool

	searching bool
	search    textinput.Model

	// filter reuses the vault service's matching rules.
	filter func(records []models.VaultRecord, query string) []models.VaultRecord
}

func newListModel(filter func(records []models.VaultRecord, query string) []models.VaultRecord) listModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 64

	return listModel{loading: true, search: search, filter: filter}
}

func (m listModel) setRecords(records []models.VaultRecord) listModel {
	m.records = records
	m.loading = false
	return m.applyFilter()
}

func (m listModel) applyFilter() listModel {
	m.filtered = m.filter(m.records, m.search.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	return m
}

func (m listModel) selected() (models.VaultRecord, bool) {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return models.VaultRecord{}, false
	}
	return m.filtered[m.cursor], true
}

func (m listModel) view(email string, canDecrypt bool, status string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("vault"))
	if email != "" {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  %s", email)))
	}
	b.WriteString("\n")
	if !canDecrypt {
		b.WriteString(errorStyle.Render("locked: log in again to decrypt fields"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString("/" + m.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString(statusStyle.Render("loading..."))
		b.WriteString("\n")
	case len(m.filtered) == 0:
		b.WriteString(helpStyle.Render("no records"))
		b.WriteString("\n")
	default:
		for i, record := range m.filtered {
			title := record.Title
			if title == "" {
				title = maskedStyle.Render("(encrypted)")
			}
			line := fmt.Sprintf("%s  %s", title, helpStyle.Render(record.Username))
			if i == m.cursor {
				b.WriteString("> " + selectedStyle.Render(line) + "\n")
			} else {
				b.WriteString("  " + line + "\n")
			}
		}
	}

	b.WriteString("\n")
	if status != "" {
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter open • n new • e edit • d delete • / search • L logout • q quit"))
	return b.String()
}
