// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote document store.
//
// [RemoteStore] decouples the sync engine from the underlying protocol and
// [IdentityProvider] supplies the signed-in user. The package ships an
// HTTP/REST implementation of both ([NewHTTPRemoteStore]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-form-cache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_store_mock.go -package=mock

// RemoteStore is the document store the cache mirrors. Documents are
// addressed by collection and id; tombstones are ordinary documents with
// deleted set.
type RemoteStore interface {
	// QueryChangedSince returns every document of collection whose
	// docUpdated is strictly greater than since (unix millis), tombstones
	// included.
	QueryChangedSince(ctx context.Context, collection string, since int64) ([]models.Record, error)

	// QueryAll returns the whole collection.
	QueryAll(ctx context.Context, collection string) ([]models.Record, error)

	// GetOne fetches a single document. Returns [ErrNotFound] (wrapped) when
	// it does not exist.
	GetOne(ctx context.Context, collection, id string) (models.Record, error)

	// MergeWrite overlays r onto the stored document, creating it if absent.
	MergeWrite(ctx context.Context, collection string, r models.Record) error

	// DeleteOne removes the document permanently.
	DeleteOne(ctx context.Context, collection, id string) error

	// CommitBatch applies ops atomically. The caller guarantees that
	// len(ops) does not exceed the store's batch limit.
	CommitBatch(ctx context.Context, ops []models.Operation) error
}

// IdentityProvider returns the currently signed-in user.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (models.User, error)
}
