// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-form-cache/models"
	bolt "go.etcd.io/bbolt"
)

var (
	collectionsBucket = []byte("collections")
	metaBucket        = []byte("meta")
	savedAtKey        = []byte("saved_at")
)

// boltSnapshotStore keeps one key per collection in an embedded bbolt file.
type boltSnapshotStore struct {
	db *bolt.DB
}

// NewBoltSnapshotStore creates or opens a bbolt database at path.
func NewBoltSnapshotStore(path string) (SnapshotStore, error) {
	if err := createLocalDBFileDir(path); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}
	return &boltSnapshotStore{db: db}, nil
}

func (s *boltSnapshotStore) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	var snap *models.Snapshot

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(collectionsBucket)
		if b == nil {
			return nil
		}

		snap = &models.Snapshot{Collections: make(map[string]models.CacheEntry)}
		if meta := tx.Bucket(metaBucket); meta != nil {
			if v := meta.Get(savedAtKey); v != nil {
				snap.SavedAt, _ = strconv.ParseInt(string(v), 10, 64)
			}
		}

		return b.ForEach(func(k, v []byte) error {
			var entry models.CacheEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("decode collection %s: %w", k, err)
			}
			snap.Collections[string(k)] = entry
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// SaveSnapshot replaces the stored collections in one write transaction.
func (s *boltSnapshotStore) SaveSnapshot(ctx context.Context, snapshot models.Snapshot) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(collectionsBucket) != nil {
			if err := tx.DeleteBucket(collectionsBucket); err != nil {
				return fmt.Errorf("reset bucket: %w", err)
			}
		}
		b, err := tx.CreateBucket(collectionsBucket)
		if err != nil {
			return fmt.Errorf("creating bucket: %w", err)
		}

		for name, entry := range snapshot.Collections {
			v, err := json.Marshal(entry)
			if err != nil {
				return fmt.Errorf("encode collection %s: %w", name, err)
			}
			if err = b.Put([]byte(name), v); err != nil {
				return err
			}
		}

		meta, err := tx.CreateBucketIfNotExists(metaBucket)
		if err != nil {
			return fmt.Errorf("creating bucket: %w", err)
		}
		return meta.Put(savedAtKey, []byte(strconv.FormatInt(snapshot.SavedAt, 10)))
	})
}

func (s *boltSnapshotStore) Close() error {
	return s.db.Close()
}
