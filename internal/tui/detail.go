// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-form-cache/models"
)

type detailModel struct {
	item   models.Record
	status string
}

func (m detailModel) View() string {
	var b strings.Builder

	origin := m.item.DocType
	if origin == "" {
		origin = errorStyle.Render("unknown, cannot be restored")
	}
	fmt.Fprintf(&b, "ID:         %s\n", m.item.ID)
	fmt.Fprintf(&b, "Collection: %s\n", origin)
	fmt.Fprintf(&b, "Deleted at: %s\n", formatMillis(m.item.DocUpdated))

	if len(m.item.Fields) > 0 {
		b.WriteString("\n")
		for _, k := range slices.Sorted(maps.Keys(m.item.Fields)) {
			fmt.Fprintf(&b, "%-16s %s\n", fitText(k, 16)+":", formatValue(m.item.Fields[k]))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage(recordTitle(m.item), strings.TrimRight(b.String(), "\n"), helpLine(
		keys.restore, keys.purge, keys.copy, keys.esc,
	))
}
