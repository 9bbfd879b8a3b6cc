// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal recycle bin of the client: it lists tombstones
// from the local cache and restores or purges them through the sync engine.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/internal/service"
	"github.com/MKhiriev/go-form-cache/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	cache       service.DocumentCache
	collections []string
	user        models.User
	version     string

	logger *logger.Logger
}

// New builds the recycle bin. collections are re-read on refresh.
func New(cache service.DocumentCache, collections []string, user models.User, version string, log *logger.Logger) *TUI {
	return &TUI{
		cache:       cache,
		collections: collections,
		user:        user,
		version:     version,
		logger:      log,
	}
}

// Run blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.cache, t.collections, t.user, t.version)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Error().Err(err).Msg("tui stopped with error")
		return err
	}
	t.logger.Info().Msg("tui closed")
	return nil
}
