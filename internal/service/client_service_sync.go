// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-form-cache/internal/adapter"
	"github.com/MKhiriev/go-form-cache/models"
)

type clientSyncService struct {
	*cacheCore
}

// newClientSyncService returns the read side of the cache engine.
func newClientSyncService(core *cacheCore) ClientSyncService {
	return &clientSyncService{cacheCore: core}
}

func (s *clientSyncService) GetAll(ctx context.Context, collection string, force bool) []models.Record {
	log := s.logger.With().Str("collection", collection).Bool("force", force).Logger()

	if collection == models.DeletedCollection {
		return s.CachedAll(collection)
	}

	unlock := s.lock(collection, models.DeletedCollection)
	defer unlock()

	now := s.opts.Now()
	cutoff := now.Add(-s.opts.FreshnessWindow).UnixMilli()

	cached, isCached := s.cache.Get(collection)
	watermark := s.cache.Watermark(collection)
	if !force && isCached && watermark >= cutoff {
		return cached
	}

	since := watermark
	if force || !isCached {
		since = 0
	}

	var (
		fetched []models.Record
		err     error
	)
	if since == 0 {
		fetched, err = s.remote.QueryAll(ctx, collection)
	} else {
		fetched, err = s.remote.QueryChangedSince(ctx, collection, since)
	}
	if err != nil {
		log.Error().Err(err).Int64("since", since).Msg("remote read failed, serving cached list")
		if cached == nil {
			return []models.Record{}
		}
		return cached
	}

	merged := s.merge(collection, cached, fetched)
	s.cache.Replace(collection, merged)
	s.cache.SetWatermark(collection, now)
	s.saveSnapshot(ctx)

	log.Debug().Int64("since", since).Int("fetched", len(fetched)).Int("count", len(merged)).Msg("collection synced")
	return merged
}

// merge overlays fetched onto the cached list by id. Live records are
// replaced in place or appended; tombstones leave the list and go to the
// recycle bin.
func (s *clientSyncService) merge(collection string, cached, fetched []models.Record) []models.Record {
	working := make([]models.Record, 0, len(cached)+len(fetched))
	working = append(working, cached...)

	index := make(map[string]int, len(working))
	for i, r := range working {
		index[r.ID] = i
	}

	gone := make(map[int]struct{})
	for _, r := range fetched {
		if r.Kind() == models.KindTombstone {
			if r.DocType == "" {
				r.DocType = collection
			}
			if i, ok := index[r.ID]; ok {
				gone[i] = struct{}{}
				delete(index, r.ID)
			}
			s.cache.UpsertOne(models.DeletedCollection, r)
			continue
		}

		if i, ok := index[r.ID]; ok {
			working[i] = r
		} else {
			index[r.ID] = len(working)
			working = append(working, r)
		}
		if tomb, ok := s.cache.GetOne(models.DeletedCollection, r.ID); ok && tomb.DocType == collection {
			s.cache.RemoveOne(models.DeletedCollection, r.ID)
		}
	}

	if len(gone) == 0 {
		return working
	}
	out := make([]models.Record, 0, len(working)-len(gone))
	for i, r := range working {
		if _, ok := gone[i]; !ok {
			out = append(out, r)
		}
	}
	return out
}

func (s *clientSyncService) GetOne(ctx context.Context, collection, id string) (models.Record, bool) {
	if collection == models.DeletedCollection {
		return s.cache.GetOne(collection, id)
	}

	unlock := s.lock(collection, models.DeletedCollection)
	defer unlock()

	r, err := s.remote.GetOne(ctx, collection, id)
	if errors.Is(err, adapter.ErrNotFound) {
		return models.Record{}, false
	}
	if err != nil {
		s.logger.Error().Err(err).Str("collection", collection).Str("id", id).Msg("remote get failed, serving cached copy")
		return s.cache.GetOne(collection, id)
	}

	s.apply(collection, r)
	s.saveSnapshot(ctx)
	return r, true
}

func (s *clientSyncService) CachedAll(collection string) []models.Record {
	records, ok := s.cache.Get(collection)
	if !ok {
		return []models.Record{}
	}
	return records
}

func (s *clientSyncService) RefreshLatest(ctx context.Context, collection string) []models.Record {
	s.Invalidate(collection)
	return s.GetAll(ctx, collection, false)
}

func (s *clientSyncService) Invalidate(collection string) {
	s.cache.Invalidate(collection)
}
