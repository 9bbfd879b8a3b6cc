// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/migrations"
)

// DB is a database handle shared by repositories of one backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the PostgreSQL document schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateSQLite applies the SQLite snapshot schema.
func (db *DB) MigrateSQLite() error {
	return migrations.MigrateSQLite(db.DB)
}

// IsRetryable reports whether err is a transient database failure.
func (db *DB) IsRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
