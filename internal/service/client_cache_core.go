// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-form-cache/internal/adapter"
	"github.com/MKhiriev/go-form-cache/internal/cache"
	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/internal/store"
	"github.com/MKhiriev/go-form-cache/internal/validators"
	"github.com/MKhiriev/go-form-cache/models"
	"github.com/sethvargo/go-retry"
)

// cacheCore is the state shared by the client services: the in-memory cache,
// the remote store it mirrors and the snapshot store it is persisted to.
type cacheCore struct {
	cache     *cache.Store
	remote    adapter.RemoteStore
	snapshots store.SnapshotStore
	validator validators.Validator
	opts      ClientOptions
	logger    *logger.Logger
}

func newCacheCore(c *cache.Store, remote adapter.RemoteStore, snapshots store.SnapshotStore, opts ClientOptions, log *logger.Logger) *cacheCore {
	if c == nil {
		c = cache.New()
	}
	if log == nil {
		log = logger.Nop()
	}
	opts = opts.withDefaults()
	return &cacheCore{
		cache:     c,
		remote:    remote,
		snapshots: snapshots,
		validator: validators.NewDocumentValidator(opts.BatchLimit),
		opts:      opts,
		logger:    log,
	}
}

// checkWritable rejects names the remote store cannot hold, including the
// recycle bin.
func (c *cacheCore) checkWritable(ctx context.Context, collection string) error {
	if collection == models.DeletedCollection {
		return fmt.Errorf("%w: %s", ErrReadOnlyCollection, collection)
	}
	ref := models.DocumentRef{Collection: collection}
	if err := c.validator.Validate(ctx, ref, validators.FieldCollection); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// lock takes the per-collection locks of every named collection in sorted
// order, so two callers locking overlapping sets never deadlock.
func (c *cacheCore) lock(collections ...string) (unlock func()) {
	names := slices.Clone(collections)
	slices.Sort(names)
	names = slices.Compact(names)

	unlocks := make([]func(), 0, len(names))
	for _, name := range names {
		unlocks = append(unlocks, c.cache.Lock(name))
	}
	return func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
}

// apply routes r to the cache list it belongs to. A tombstone leaves its
// origin collection and lands in the recycle bin; a live record takes the
// place of any tombstone it had. Callers hold the locks of collection and
// the recycle bin.
func (c *cacheCore) apply(collection string, r models.Record) {
	if r.Kind() == models.KindTombstone {
		if r.DocType == "" {
			r.DocType = collection
		}
		c.cache.RemoveOne(r.DocType, r.ID)
		c.cache.UpsertOne(models.DeletedCollection, r)
		return
	}

	c.cache.UpsertOne(collection, r)
	if tomb, ok := c.cache.GetOne(models.DeletedCollection, r.ID); ok && tomb.DocType == collection {
		c.cache.RemoveOne(models.DeletedCollection, r.ID)
	}
}

// forget drops a permanently deleted document from the cache.
func (c *cacheCore) forget(ref models.DocumentRef) {
	c.cache.RemoveOne(ref.Collection, ref.ID)
	if tomb, ok := c.cache.GetOne(models.DeletedCollection, ref.ID); ok && tomb.DocType == ref.Collection {
		c.cache.RemoveOne(models.DeletedCollection, ref.ID)
	}
}

// saveSnapshot persists the whole cache. Failures are logged, not returned.
func (c *cacheCore) saveSnapshot(ctx context.Context) {
	if c.snapshots == nil {
		return
	}
	snap := c.cache.Export()
	if err := c.snapshots.SaveSnapshot(ctx, snap); err != nil {
		c.logger.Warn().Err(err).Int("count", snap.Len()).Msg("failed to save cache snapshot")
	}
}

// loadSnapshot seeds the cache from the last saved snapshot, if any.
func (c *cacheCore) loadSnapshot(ctx context.Context) error {
	if c.snapshots == nil {
		return nil
	}
	snap, err := c.snapshots.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("load cache snapshot: %w", err)
	}
	if snap == nil {
		c.logger.Debug().Msg("no cache snapshot found, starting cold")
		return nil
	}
	c.cache.Import(*snap)
	c.logger.Info().Int("count", snap.Len()).Int64("saved_at", snap.SavedAt).Msg("cache snapshot loaded")
	return nil
}

// withRetry runs a remote write with bounded exponential backoff. Only
// failures the adapter reports as transient are attempted again.
func (c *cacheCore) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	attempt := 0
	backoff := retry.WithMaxRetries(uint64(c.opts.RetryAttempts), retry.NewExponential(c.opts.RetryBaseDelay))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if adapter.IsRetryable(err) {
			c.logger.Debug().Err(err).Str("op", op).Int("attempt", attempt).Msg("retrying remote write")
			return retry.RetryableError(err)
		}
		return err
	})
}

// commitChunks sends ops to the remote store in consecutive batches of at most
// BatchLimit operations. onCommitted runs after each committed batch, before
// the next one is sent. The first failing batch stops the sequence.
func (c *cacheCore) commitChunks(ctx context.Context, ops []models.Operation, onCommitted func(chunk []models.Operation)) error {
	committed := 0
	for chunk := range slices.Chunk(ops, c.opts.BatchLimit) {
		err := c.withRetry(ctx, "commit_batch", func(ctx context.Context) error {
			return c.remote.CommitBatch(ctx, chunk)
		})
		if err != nil {
			c.logger.Error().Err(err).
				Int("committed", committed).
				Int("count", len(ops)).
				Msg("batch commit failed")
			return fmt.Errorf("%w: committed %d of %d operations: %w", ErrBatchAborted, committed, len(ops), err)
		}

		committed += len(chunk)
		onCommitted(chunk)
		c.saveSnapshot(ctx)
	}
	return nil
}
