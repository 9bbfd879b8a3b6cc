// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-cache/internal/adapter"
	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/internal/service"
	"github.com/MKhiriev/go-form-cache/internal/store"
	"github.com/MKhiriev/go-form-cache/internal/tui"
	"github.com/MKhiriev/go-form-cache/internal/workers"
	"github.com/MKhiriev/go-form-cache/models"
)

// runUI is swapped in tests; the real UI needs a terminal.
var runUI = func(ctx context.Context, ui *tui.TUI) error {
	return ui.Run(ctx)
}

type App struct {
	cfg       *config.ClientConfig
	version   string
	snapshots store.SnapshotStore
	services  *service.ClientServices
	workers   *workers.Workers

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the snapshot store, connects the remote adapter and seeds the
// cache engine from the last snapshot.
func NewApp(ctx context.Context, cfg *config.ClientConfig, version string, log *logger.Logger) (*App, error) {
	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create remote adapter: %w", err)
	}

	snapshots, err := store.NewSnapshotStore(ctx, cfg.Storage.Snapshot, log)
	if err != nil {
		return nil, fmt.Errorf("create snapshot store: %w", err)
	}

	return newApp(ctx, cfg, version, remote, remote, snapshots, log), nil
}

func newApp(ctx context.Context, cfg *config.ClientConfig, version string, remote adapter.RemoteStore, identity adapter.IdentityProvider, snapshots store.SnapshotStore, log *logger.Logger) *App {
	services := service.NewClientServices(ctx, remote, identity, snapshots, service.ClientOptionsFromConfig(*cfg), log)

	return &App{
		cfg:       cfg,
		version:   version,
		snapshots: snapshots,
		services:  services,
		workers:   workers.NewWorkers(workers.NewSyncWorker(services.SyncJob, cfg.Workers.SyncInterval)),
		logger:    log,
	}
}

func (a *App) Run(ctx context.Context) error {
	user, err := a.preload(ctx)
	if err != nil {
		return err
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	ui := tui.New(a.services.Cache, a.cfg.Workers.Preload, user, a.version, a.logger)
	return runUI(ctx, ui)
}

func (a *App) preload(ctx context.Context) (models.User, error) {
	user, err := a.services.PreloadService.Preload(ctx, a.cfg.Workers.Preload)
	if err != nil {
		return models.User{}, fmt.Errorf("preload cache: %w", err)
	}

	a.logger.Info().
		Str("email", user.Email).
		Str("role", user.Role).
		Strs("collections", a.cfg.Workers.Preload).
		Msg("client ready")
	return user, nil
}

func (a *App) Close() error {
	if err := a.snapshots.Close(); err != nil {
		return fmt.Errorf("close snapshot store: %w", err)
	}
	return nil
}
