// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-form-cache/models"

type binLoadedMsg struct {
	items []models.Record
	err   error
}

type restoredMsg struct {
	id       string
	target   string
	restored bool
	err      error
}

type purgedMsg struct {
	count int
	err   error
}

type copiedMsg struct {
	id  string
	err error
}

type clearStatusMsg struct{}
