// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-cache/models"
	"github.com/charmbracelet/bubbles/spinner"
)

// titleFields are tried in order to label a tombstone in the list.
var titleFields = []string{"title", "name", "email", "username"}

type binModel struct {
	items   []models.Record
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newBinModel() binModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return binModel{spinner: s, loading: true}
}

func (m binModel) current() (models.Record, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Record{}, false
	}
	return m.items[m.idx], true
}

func (m *binModel) move(delta int) {
	m.idx = max(0, min(m.idx+delta, len(m.items)-1))
}

// setItems replaces the list, keeping the cursor on the same id when it is
// still present and on the same row otherwise.
func (m *binModel) setItems(items []models.Record) {
	selected, ok := m.current()
	prev := m.idx
	m.items = items
	if ok {
		for i, r := range items {
			if r.ID == selected.ID {
				m.idx = i
				return
			}
		}
	}
	m.idx = max(0, min(prev, len(items)-1))
}

func (m binModel) ids() []string {
	out := make([]string, 0, len(m.items))
	for _, r := range m.items {
		out = append(out, r.ID)
	}
	return out
}

func recordTitle(r models.Record) string {
	for _, f := range titleFields {
		if s, ok := r.Fields[f].(string); ok && s != "" {
			return s
		}
	}
	return r.ID
}

func (m binModel) View(busy bool) string {
	header := fmt.Sprintf("Recycle bin (%d)", len(m.items))
	if m.loading || busy {
		header += "  " + m.spinner.View()
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("Loading...")
	case len(m.items) == 0:
		b.WriteString(mutedStyle.Render("The recycle bin is empty"))
	default:
		for i, item := range m.items {
			origin := item.DocType
			if origin == "" {
				origin = "?"
			}
			line := fmt.Sprintf("%-12s %-32s %s", fitText(origin, 12), fitText(recordTitle(item), 32), formatMillis(item.DocUpdated))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			if i < len(m.items)-1 {
				b.WriteString("\n")
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	return renderPage(header, b.String(), helpLine(
		keys.enter, keys.restore, keys.purge, keys.purgeAll, keys.copy, keys.refresh, keys.about, keys.quit,
	))
}
