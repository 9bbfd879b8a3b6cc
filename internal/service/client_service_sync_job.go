// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-form-cache/models"
)

const defaultSyncInterval = time.Minute

type clientSyncJob struct {
	reader      ClientSyncService
	collections []string

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that re-reads collections through
// reader on a ticker. The job is idle until Start is called.
func NewClientSyncJob(reader ClientSyncService, collections []string) ClientSyncJob {
	return &clientSyncJob{reader: reader, collections: slices.Clone(collections)}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that syncs every interval. If interval is
// zero or negative it defaults to one minute. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.syncOnce(jobCtx)
			}
		}
	}()
}

// syncOnce reads every collection once. GetAll debounces on its own, so a
// collection the user just read is not fetched again. The users list is left
// alone: preload narrows it by role and a delta merge would widen it again.
func (j *clientSyncJob) syncOnce(ctx context.Context) {
	for _, collection := range j.collections {
		if ctx.Err() != nil {
			return
		}
		if collection == models.UsersCollection {
			continue
		}
		j.reader.GetAll(ctx, collection, false)
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
