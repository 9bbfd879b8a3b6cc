// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-form-cache/internal/adapter"
	"github.com/MKhiriev/go-form-cache/models"
)

type clientTombstoneService struct {
	*cacheCore
	writer *clientWriteService
}

func newClientTombstoneService(core *cacheCore, writer *clientWriteService) ClientTombstoneService {
	return &clientTombstoneService{cacheCore: core, writer: writer}
}

func (s *clientTombstoneService) SoftDelete(ctx context.Context, collection, id string) error {
	if err := s.checkWritable(ctx, collection); err != nil {
		return err
	}

	unlock := s.lock(collection, models.DeletedCollection)
	defer unlock()

	r, ok := s.cache.GetOne(collection, id)
	if !ok {
		s.logger.Warn().Str("collection", collection).Str("id", id).Msg("soft delete of an uncached document ignored")
		return nil
	}

	r.Deleted = true
	r.DocType = collection
	r.Touch(s.opts.Now())

	if err := s.writer.upsertLocked(ctx, collection, r, false); err != nil {
		return fmt.Errorf("soft delete: %w", err)
	}
	return nil
}

func (s *clientTombstoneService) Restore(ctx context.Context, id string) (bool, error) {
	tomb, ok := s.tombstone(id)
	if !ok {
		return false, nil
	}

	unlock := s.lock(models.DeletedCollection, tomb.DocType)
	defer unlock()

	// The bin may have changed while the locks were taken.
	current, ok := s.cache.GetOne(models.DeletedCollection, id)
	if !ok || current.DocType != tomb.DocType {
		s.logger.Warn().Str("id", id).Msg("tombstone changed before restore, skipped")
		return false, nil
	}

	target := current.DocType
	r := current
	r.Deleted = false
	r.DocType = ""
	r.Touch(s.opts.Now())

	if err := s.writer.upsertLocked(ctx, target, r, false); err != nil {
		return false, fmt.Errorf("restore: %w", err)
	}
	return true, nil
}

func (s *clientTombstoneService) Purge(ctx context.Context, id string) error {
	tomb, ok := s.cache.GetOne(models.DeletedCollection, id)
	if !ok {
		s.logger.Warn().Str("id", id).Msg("purge of an unknown tombstone ignored")
		return nil
	}
	if tomb.DocType == "" {
		s.logger.Error().Str("id", id).Msg("tombstone has no docType, purge skipped")
		return fmt.Errorf("purge %s: %w", id, ErrMalformedTombstone)
	}

	unlock := s.lock(models.DeletedCollection, tomb.DocType)
	defer unlock()

	// A restore holding the locks may have moved the record out of the bin.
	current, ok := s.cache.GetOne(models.DeletedCollection, id)
	if !ok || current.DocType != tomb.DocType {
		s.logger.Warn().Str("id", id).Msg("tombstone changed before purge, skipped")
		return nil
	}

	err := s.withRetry(ctx, "delete_one", func(ctx context.Context) error {
		return s.remote.DeleteOne(ctx, tomb.DocType, id)
	})
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		s.logger.Error().Err(err).Str("collection", tomb.DocType).Str("id", id).Msg("purge failed")
		return fmt.Errorf("purge %s/%s: %w", tomb.DocType, id, err)
	}

	s.forget(models.DocumentRef{Collection: tomb.DocType, ID: id})
	s.saveSnapshot(ctx)
	return nil
}

func (s *clientTombstoneService) PurgeMany(ctx context.Context, ids []string) error {
	collections := []string{models.DeletedCollection}
	docTypes := make(map[string]string, len(ids))
	for _, id := range ids {
		tomb, ok := s.tombstone(id)
		if !ok {
			continue
		}
		docTypes[id] = tomb.DocType
		collections = append(collections, tomb.DocType)
	}
	if len(docTypes) == 0 {
		return nil
	}

	unlock := s.lock(collections...)
	defer unlock()

	refs := make([]models.DocumentRef, 0, len(docTypes))
	for _, id := range ids {
		docType, ok := docTypes[id]
		if !ok {
			continue
		}
		current, ok := s.cache.GetOne(models.DeletedCollection, id)
		if !ok || current.DocType != docType {
			continue
		}
		refs = append(refs, models.DocumentRef{Collection: docType, ID: id})
		delete(docTypes, id)
	}
	if len(refs) == 0 {
		return nil
	}

	s.logger.Info().Int("count", len(refs)).Msg("purging tombstones")
	return s.writer.removeLocked(ctx, refs)
}

// tombstone looks up a cached tombstone that can be addressed remotely. Unknown
// ids are logged as warnings, tombstones without docType as errors.
func (s *clientTombstoneService) tombstone(id string) (models.Record, bool) {
	tomb, ok := s.cache.GetOne(models.DeletedCollection, id)
	if !ok {
		s.logger.Warn().Str("id", id).Msg("tombstone not found in cache")
		return models.Record{}, false
	}
	if tomb.DocType == "" {
		s.logger.Error().Err(ErrMalformedTombstone).Str("id", id).Msg("tombstone skipped")
		return models.Record{}, false
	}
	return tomb, true
}
