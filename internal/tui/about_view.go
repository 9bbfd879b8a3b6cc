// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-form-cache/models"
)

func renderAboutWindow(version string, user models.User) string {
	var b strings.Builder

	b.WriteString("Application: form cache recycle bin\n")
	b.WriteString("Version:     ")
	b.WriteString(valueOrNA(version))
	b.WriteString("\n")
	b.WriteString("Signed in:   ")
	b.WriteString(valueOrNA(user.Email))
	b.WriteString("\n")
	b.WriteString("Role:        ")
	b.WriteString(valueOrNA(user.Role))

	return renderPage("ABOUT", b.String(), helpLine(keys.esc))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
