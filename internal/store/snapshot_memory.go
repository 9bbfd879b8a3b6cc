// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/MKhiriev/go-form-cache/models"
)

// memorySnapshotStore holds the last snapshot in process memory. Used when
// persistence is switched off and in tests.
type memorySnapshotStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemorySnapshotStore() SnapshotStore {
	return &memorySnapshotStore{}
}

func (s *memorySnapshotStore) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, nil
	}
	var snap models.Snapshot
	if err := json.Unmarshal(s.data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// SaveSnapshot stores an encoded copy so later cache changes never leak
// into the saved state.
func (s *memorySnapshotStore) SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

func (s *memorySnapshotStore) Close() error {
	return nil
}
