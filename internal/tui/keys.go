// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	restore  key.Binding
	purge    key.Binding
	purgeAll key.Binding
	copy     key.Binding
	refresh  key.Binding
	about    key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	esc:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	restore:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restore")),
	purge:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "purge")),
	purgeAll: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "purge all")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy id")),
	refresh:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "refresh")),
	about:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
	yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
	no:       key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
}

// helpLine renders bindings as "key action" pairs.
func helpLine(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return helpStyle.Render(out)
}
