package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-secret-vault/models"
)

// detailModel shows a single decrypted record. The password is masked
// until the user reveals it; copying goes straight to the clipboard
// without revealing.
type detailModel struct {
	record   models.VaultRecord
	revealed bool
}

func newDetailModel(record models.VaultRecord) detailModel {
	return detailModel{record: record}
}

func (m detailModel) view(status string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.record.Title))
	b.WriteString("\n\n")

	password := strings.Repeat("*", 8)
	if m.revealed {
		password = m.record.Password
	}

	rows := []struct{ label, value string }{
		{"username", m.record.Username},
		{"password", password},
		{"url", m.record.URL},
		{"notes", m.record.Notes},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-10s %s\n", helpStyle.Render(row.label), row.value))
	}

	b.WriteString("\n")
	if status != "" {
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("c copy password • u copy username • r reveal • e edit • d delete • esc back"))
	return b.String()
}
