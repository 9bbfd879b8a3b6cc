// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-cache/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService serves collections from the local cache and keeps them in
// step with the remote store.
type ClientSyncService interface {
	// GetAll returns the collection. A collection synced within the freshness
	// window is served from memory; otherwise only documents changed since the
	// watermark are fetched and merged. force fetches everything.
	// Remote failures never surface: the stale list (or an empty one) is
	// returned and the watermark stays where it was.
	GetAll(ctx context.Context, collection string, force bool) []models.Record

	// GetOne reads a document from the remote store and refreshes its cached
	// copy. On remote failure the cached copy is returned. ok is false when
	// the remote store does not know the document, or when it is unreachable
	// and nothing is cached.
	GetOne(ctx context.Context, collection, id string) (record models.Record, ok bool)

	// CachedAll returns the cached list without touching the remote store.
	CachedAll(collection string) []models.Record

	// RefreshLatest invalidates the collection and reads it again.
	RefreshLatest(ctx context.Context, collection string) []models.Record

	// Invalidate resets the watermark; cached records stay available.
	Invalidate(collection string)
}

// ClientWriteService writes documents to the remote store and mirrors every
// committed change into the cache.
type ClientWriteService interface {
	// UpsertOne assigns an id when missing, stamps docUpdated and merge-writes
	// the record. The cache is updated even when the remote write fails; the
	// error is still returned.
	UpsertOne(ctx context.Context, collection string, record models.Record) (models.Record, error)

	// UpsertMany writes records in sequential batches of at most the batch
	// limit. A failed batch aborts the rest with [ErrBatchAborted].
	UpsertMany(ctx context.Context, collection string, records []models.Record) error

	// RemoveMany permanently deletes the referenced documents in batches.
	RemoveMany(ctx context.Context, refs []models.DocumentRef) error
}

// ClientTombstoneService moves documents between their collection and the
// recycle bin.
type ClientTombstoneService interface {
	// SoftDelete turns a cached document into a tombstone. Uncached ids are
	// ignored.
	SoftDelete(ctx context.Context, collection, id string) error

	// Restore moves a tombstone back to its docType collection. restored is
	// false when the tombstone is unknown or has no docType.
	Restore(ctx context.Context, id string) (restored bool, err error)

	// Purge deletes a tombstone permanently.
	Purge(ctx context.Context, id string) error

	// PurgeMany deletes tombstones permanently in batches. Tombstones without
	// docType are skipped.
	PurgeMany(ctx context.Context, ids []string) error
}

// ClientPreloadService warms the cache for the signed-in user.
type ClientPreloadService interface {
	// Preload loads the users collection, resolves the current user, then
	// loads collections and the recycle bin.
	Preload(ctx context.Context, collections []string) (models.User, error)
}

// ClientSyncJob defines the contract for a background worker that
// periodically re-reads a set of collections.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to one minute if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// DocumentCache is the whole client API of the cache engine.
type DocumentCache interface {
	ClientSyncService
	ClientWriteService
	ClientTombstoneService
}
