// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	content := m.message + "?\n\n"
	content += helpLine(keys.yes, keys.no)
	return overlayBoxStyle.Render(content)
}
