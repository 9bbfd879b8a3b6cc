// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layers of both binaries: the document
// server's PostgreSQL repositories and the client's cache snapshot stores.
package store

import (
	"context"

	"github.com/MKhiriev/go-form-cache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository persists documents of every collection in one JSONB
// table keyed by (collection, id).
type DocumentRepository interface {
	// QueryChangedSince returns documents with docUpdated > since ordered by
	// docUpdated. since == 0 returns the whole collection.
	QueryChangedSince(ctx context.Context, collection string, since int64) ([]models.Record, error)
	// GetOne returns [ErrDocumentNotFound] when the document does not exist.
	GetOne(ctx context.Context, collection, id string) (models.Record, error)
	// MergeWrite overlays r onto the stored body, inserting when absent.
	MergeWrite(ctx context.Context, collection string, r models.Record) error
	// DeleteOne returns [ErrDocumentNotFound] when nothing was deleted.
	DeleteOne(ctx context.Context, collection, id string) error
	// CommitBatch applies all operations in one transaction.
	CommitBatch(ctx context.Context, ops []models.Operation) (int, error)
}

// UserRepository resolves user profiles stored in the users collection.
type UserRepository interface {
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SnapshotStore persists the client cache between runs.
type SnapshotStore interface {
	// LoadSnapshot returns nil, nil when nothing was saved yet.
	LoadSnapshot(ctx context.Context) (*models.Snapshot, error)
	SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error
	Close() error
}

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
