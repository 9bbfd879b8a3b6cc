// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-form-cache/models"
)

type entry struct {
	records  []models.Record
	index    map[string]int
	lastSync int64
}

func newEntry(records []models.Record) *entry {
	e := &entry{}
	e.reset(records)
	return e
}

func (e *entry) reset(records []models.Record) {
	e.records = make([]models.Record, 0, len(records))
	e.index = make(map[string]int, len(records))
	for _, r := range records {
		e.upsert(r)
	}
}

func (e *entry) upsert(r models.Record) {
	if i, ok := e.index[r.ID]; ok {
		e.records[i] = r.Clone()
		return
	}
	e.index[r.ID] = len(e.records)
	e.records = append(e.records, r.Clone())
}

func (e *entry) remove(id string) bool {
	i, ok := e.index[id]
	if !ok {
		return false
	}
	e.records = slices.Delete(e.records, i, i+1)
	delete(e.index, id)
	for j := i; j < len(e.records); j++ {
		e.index[e.records[j].ID] = j
	}
	return true
}

func (e *entry) copyRecords() []models.Record {
	out := make([]models.Record, len(e.records))
	for i, r := range e.records {
		out[i] = r.Clone()
	}
	return out
}

// Store is the in-memory cache of all collections.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		entries: make(map[string]*entry),
		locks:   make(map[string]*sync.Mutex),
	}
}

// Lock acquires the per-collection lock and returns its release function.
func (s *Store) Lock(collection string) (unlock func()) {
	s.locksMu.Lock()
	l, ok := s.locks[collection]
	if !ok {
		l = &sync.Mutex{}
		s.locks[collection] = l
	}
	s.locksMu.Unlock()

	l.Lock()
	return l.Unlock
}

// Get returns a copy of the cached list. ok is false when the collection has
// never been populated, which is different from a populated empty list.
func (s *Store) Get(collection string) (records []models.Record, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[collection]
	if !ok {
		return nil, false
	}
	return e.copyRecords(), true
}

// GetOne returns a copy of a single cached record.
func (s *Store) GetOne(collection, id string) (models.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[collection]
	if !ok {
		return models.Record{}, false
	}
	i, ok := e.index[id]
	if !ok {
		return models.Record{}, false
	}
	return e.records[i].Clone(), true
}

// Watermark returns the last sync time of collection in unix milliseconds,
// zero if it has never been synced.
func (s *Store) Watermark(collection string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.entries[collection]; ok {
		return e.lastSync
	}
	return 0
}

// SetWatermark advances the watermark of collection. Values older than the
// current watermark are ignored.
func (s *Store) SetWatermark(collection string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entryLocked(collection)
	if ms := at.UnixMilli(); ms > e.lastSync {
		e.lastSync = ms
	}
}

// Replace swaps the whole cached list of collection.
func (s *Store) Replace(collection string, records []models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entryLocked(collection).reset(records)
}

// UpsertOne inserts r or overwrites the cached record with the same id in
// place. The collection becomes populated if it was not.
func (s *Store) UpsertOne(collection string, r models.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entryLocked(collection).upsert(r)
}

// RemoveOne drops a record and reports whether it was cached.
func (s *Store) RemoveOne(collection, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[collection]
	if !ok {
		return false
	}
	return e.remove(id)
}

// Invalidate resets the watermark so the next read refetches everything.
// Cached records are kept and served if that fetch fails.
func (s *Store) Invalidate(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[collection]; ok {
		e.lastSync = 0
	}
}

// Collections returns the names of all populated collections, sorted.
func (s *Store) Collections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Export copies the whole cache into a snapshot.
func (s *Store) Export() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := models.Snapshot{
		Collections: make(map[string]models.CacheEntry, len(s.entries)),
		SavedAt:     time.Now().UnixMilli(),
	}
	for name, e := range s.entries {
		snap.Collections[name] = models.CacheEntry{
			Records:  e.copyRecords(),
			LastSync: e.lastSync,
		}
	}
	return snap
}

// Import replaces the whole cache with the content of snap.
func (s *Store) Import(snap models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*entry, len(snap.Collections))
	for name, ce := range snap.Collections {
		e := newEntry(ce.Records)
		e.lastSync = ce.LastSync
		s.entries[name] = e
	}
}

func (s *Store) entryLocked(collection string) *entry {
	e, ok := s.entries[collection]
	if !ok {
		e = newEntry(nil)
		s.entries[collection] = e
	}
	return e
}
