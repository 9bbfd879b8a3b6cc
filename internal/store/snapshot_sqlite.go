// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/models"
)

const (
	selectCacheEntries = `SELECT collection, last_sync, records, saved_at FROM cache_entries;`
	deleteCacheEntries = `DELETE FROM cache_entries;`
	insertCacheEntry   = `INSERT INTO cache_entries (collection, last_sync, records, saved_at) VALUES (?, ?, ?, ?);`
)

// sqliteSnapshotStore keeps one row per collection in the local SQLite file.
type sqliteSnapshotStore struct {
	db     *DB
	logger *logger.Logger
}

func NewSQLiteSnapshotStore(db *DB, logger *logger.Logger) SnapshotStore {
	return &sqliteSnapshotStore{db: db, logger: logger}
}

func (s *sqliteSnapshotStore) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, selectCacheEntries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var snap *models.Snapshot
	for rows.Next() {
		var (
			name    string
			entry   models.CacheEntry
			records string
			savedAt int64
		)
		if err = rows.Scan(&name, &entry.LastSync, &records, &savedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = json.Unmarshal([]byte(records), &entry.Records); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingBody, err)
		}

		if snap == nil {
			snap = &models.Snapshot{Collections: make(map[string]models.CacheEntry)}
		}
		snap.Collections[name] = entry
		snap.SavedAt = max(snap.SavedAt, savedAt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snap, nil
}

func (s *sqliteSnapshotStore) SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteCacheEntries); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	for name, entry := range snapshot.Collections {
		records := entry.Records
		if records == nil {
			records = []models.Record{}
		}
		payload, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("encode collection %s: %w", name, err)
		}
		if _, err = tx.ExecContext(ctx, insertCacheEntry, name, entry.LastSync, string(payload), snapshot.SavedAt); err != nil {
			s.logger.Err(err).
				Str("func", "sqliteSnapshotStore.SaveSnapshot").
				Str("collection", name).
				Msg("failed to insert cache entry")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (s *sqliteSnapshotStore) Close() error {
	return s.db.Close()
}
