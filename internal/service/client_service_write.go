// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-cache/internal/validators"
	"github.com/MKhiriev/go-form-cache/models"
)

type clientWriteService struct {
	*cacheCore
}

func newClientWriteService(core *cacheCore) *clientWriteService {
	return &clientWriteService{cacheCore: core}
}

func (s *clientWriteService) UpsertOne(ctx context.Context, collection string, record models.Record) (models.Record, error) {
	if err := s.checkWritable(ctx, collection); err != nil {
		return models.Record{}, err
	}

	unlock := s.lock(collection, models.DeletedCollection)
	defer unlock()

	r, err := s.prepare(ctx, collection, record, s.opts.Now())
	if err != nil {
		return models.Record{}, err
	}
	return r, s.upsertLocked(ctx, collection, r, true)
}

func (s *clientWriteService) UpsertMany(ctx context.Context, collection string, records []models.Record) error {
	if err := s.checkWritable(ctx, collection); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	unlock := s.lock(collection, models.DeletedCollection)
	defer unlock()

	now := s.opts.Now()
	ops := make([]models.Operation, 0, len(records))
	for _, record := range records {
		r, err := s.prepare(ctx, collection, record, now)
		if err != nil {
			return err
		}
		ops = append(ops, models.MergeOp(collection, r))
	}

	return s.commitChunks(ctx, ops, func(chunk []models.Operation) {
		for _, op := range chunk {
			s.apply(collection, *op.Record)
		}
	})
}

func (s *clientWriteService) RemoveMany(ctx context.Context, refs []models.DocumentRef) error {
	if len(refs) == 0 {
		return nil
	}

	collections := []string{models.DeletedCollection}
	for _, ref := range refs {
		if err := s.checkWritable(ctx, ref.Collection); err != nil {
			return err
		}
		if err := s.validator.Validate(ctx, ref, validators.FieldID); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		collections = append(collections, ref.Collection)
	}

	unlock := s.lock(collections...)
	defer unlock()

	return s.removeLocked(ctx, refs)
}

// prepare clones record, assigns a fresh id when it has none and stamps it.
func (s *clientWriteService) prepare(ctx context.Context, collection string, record models.Record, now time.Time) (models.Record, error) {
	r := record.Clone()
	if r.ID == "" {
		r.ID = s.opts.NewID()
	}
	if r.Kind() == models.KindTombstone && r.DocType == "" {
		r.DocType = collection
	}
	r.Touch(now)

	if err := s.validator.Validate(ctx, r); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return r, nil
}

// upsertLocked merge-writes r to collection and mirrors it into the cache.
// With applyOnFailure the cache is updated even when the remote write fails.
// Callers hold the locks of collection and the recycle bin.
func (s *clientWriteService) upsertLocked(ctx context.Context, collection string, r models.Record, applyOnFailure bool) error {
	err := s.withRetry(ctx, "merge_write", func(ctx context.Context) error {
		return s.remote.MergeWrite(ctx, collection, r)
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("collection", collection).
			Str("id", r.ID).
			Bool("cached", applyOnFailure).
			Msg("merge-write failed")
		if applyOnFailure {
			s.apply(collection, r)
		}
		return fmt.Errorf("merge-write %s/%s: %w", collection, r.ID, err)
	}

	s.apply(collection, r)
	s.saveSnapshot(ctx)
	return nil
}

// removeLocked deletes refs remotely in batches and drops every committed one
// from the cache. Callers hold the locks of all referenced collections and the
// recycle bin.
func (s *clientWriteService) removeLocked(ctx context.Context, refs []models.DocumentRef) error {
	ops := make([]models.Operation, 0, len(refs))
	for _, ref := range refs {
		ops = append(ops, models.DeleteOp(ref))
	}

	return s.commitChunks(ctx, ops, func(chunk []models.Operation) {
		for _, op := range chunk {
			s.forget(models.DocumentRef{Collection: op.Collection, ID: op.ID})
		}
	})
}
