// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-form-cache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySyncService counts GetAll calls and remembers the collections read.
type spySyncService struct {
	calls atomic.Int64

	mu   sync.Mutex
	seen map[string]int
}

func (s *spySyncService) GetAll(_ context.Context, collection string, _ bool) []models.Record {
	s.calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen == nil {
		s.seen = make(map[string]int)
	}
	s.seen[collection]++
	return nil
}

func (s *spySyncService) GetOne(context.Context, string, string) (models.Record, bool) {
	return models.Record{}, false
}
func (s *spySyncService) CachedAll(string) []models.Record { return nil }
func (s *spySyncService) RefreshLatest(context.Context, string) []models.Record {
	return nil
}
func (s *spySyncService) Invalidate(string) {}

func (s *spySyncService) count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen[collection]
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, []string{"forms"})
	require.NotNil(t, job)

	var _ ClientSyncJob = job
}

func TestNewClientSyncJob_CopiesCollections(t *testing.T) {
	collections := []string{"forms"}
	job := NewClientSyncJob(&spySyncService{}, collections).(*clientSyncJob)

	collections[0] = "changed"
	assert.Equal(t, []string{"forms"}, job.collections)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_ReadsEveryCollection(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, []string{"forms", "answers"})

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.count("forms"), 3)
	assert.GreaterOrEqual(t, spy.count("answers"), 3)
}

func TestClientSyncJob_SyncOnce_SkipsUsers(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, []string{models.UsersCollection, "forms"}).(*clientSyncJob)

	job.syncOnce(context.Background())

	assert.Equal(t, 0, spy.count(models.UsersCollection))
	assert.Equal(t, 1, spy.count("forms"))
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, []string{"forms"})

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no reads expected after Stop")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, nil)

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, []string{"forms"})

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
	}{
		{name: "zero", interval: 0},
		{name: "negative", interval: -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := &spySyncService{}
			job := NewClientSyncJob(spy, []string{"forms"})
			ctx, cancel := context.WithCancel(context.Background())

			job.Start(ctx, tt.interval)
			time.Sleep(20 * time.Millisecond)
			cancel()
			job.Stop()

			assert.Equal(t, int64(0), spy.calls.Load(), "a one-minute default must not tick within 20ms")
		})
	}
}

func TestClientSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, []string{"forms"})
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	require.Greater(t, callsBefore, int64(0))

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore, "second Start must keep syncing")
}

func TestClientSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewClientSyncJob(&spySyncService{}, []string{"forms"})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestClientSyncJob_NoCollections_NoReads(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, nil)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}
