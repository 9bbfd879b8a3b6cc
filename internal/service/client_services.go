// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-form-cache/internal/adapter"
	"github.com/MKhiriev/go-form-cache/internal/cache"
	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/internal/store"
)

type ClientServices struct {
	SyncService      ClientSyncService
	WriteService     ClientWriteService
	TombstoneService ClientTombstoneService
	PreloadService   ClientPreloadService
	SyncJob          ClientSyncJob

	// Cache bundles the read, write and tombstone services.
	Cache DocumentCache
}

type documentCache struct {
	ClientSyncService
	ClientWriteService
	ClientTombstoneService
}

// NewClientServices wires the cache engine and seeds it from the last saved
// snapshot. A snapshot that cannot be read is logged and the engine starts
// cold.
func NewClientServices(ctx context.Context, remote adapter.RemoteStore, identity adapter.IdentityProvider, snapshots store.SnapshotStore, opts ClientOptions, log *logger.Logger) *ClientServices {
	core := newCacheCore(cache.New(), remote, snapshots, opts, log)
	if err := core.loadSnapshot(ctx); err != nil {
		core.logger.Warn().Err(err).Msg("starting with an empty cache")
	}

	syncSvc := newClientSyncService(core)
	writeSvc := newClientWriteService(core)
	tombstoneSvc := newClientTombstoneService(core, writeSvc)

	return &ClientServices{
		SyncService:      syncSvc,
		WriteService:     writeSvc,
		TombstoneService: tombstoneSvc,
		PreloadService:   newClientPreloadService(core, identity, syncSvc),
		SyncJob:          NewClientSyncJob(syncSvc, core.opts.Preload),
		Cache: documentCache{
			ClientSyncService:      syncSvc,
			ClientWriteService:     writeSvc,
			ClientTombstoneService: tombstoneSvc,
		},
	}
}
