// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/logger"
)

// Storages groups the document server repositories.
type Storages struct {
	DocumentRepository DocumentRepository
	UserRepository     UserRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DocumentRepository: NewDocumentRepository(db, logger),
		UserRepository:     NewUserRepository(db, logger),
		db:                 db,
	}, nil
}

// IsRetryable classifies a repository error.
func (s *Storages) IsRetryable(err error) bool {
	return s.db.IsRetryable(err)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
