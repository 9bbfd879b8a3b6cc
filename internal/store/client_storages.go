// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/logger"
)

// NewSnapshotStore builds the client snapshot store selected by
// cfg.Driver. The sqlite driver opens the file and applies its migrations.
func NewSnapshotStore(ctx context.Context, cfg config.Snapshot, logger *logger.Logger) (SnapshotStore, error) {
	logger.Debug().
		Str("func", "NewSnapshotStore").
		Str("driver", cfg.Driver).
		Str("path", cfg.Path).
		Msg("creating snapshot store")

	switch cfg.Driver {
	case "file", "":
		return NewFileSnapshotStore(cfg.Path), nil
	case "memory":
		return NewMemorySnapshotStore(), nil
	case "bolt":
		return NewBoltSnapshotStore(cfg.Path)
	case "sqlite":
		db, err := NewConnectSQLite(ctx, cfg.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.MigrateSQLite(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteSnapshotStore(db, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSnapshotDriver, cfg.Driver)
	}
}

func createLocalDBFileDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	return nil
}
