// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CacheEntry is the cached state of one collection.
type CacheEntry struct {
	// Records is the ordered list of cached documents.
	Records []Record `json:"records"`
	// LastSync is the watermark in unix milliseconds. Zero means never synced
	// or invalidated.
	LastSync int64 `json:"last_sync"`
}

// Snapshot is the whole cache serialized for persistence.
type Snapshot struct {
	Collections map[string]CacheEntry `json:"collections"`
	SavedAt     int64                 `json:"saved_at"`
}

// Len returns the number of cached records across all collections.
func (s Snapshot) Len() int {
	n := 0
	for _, e := range s.Collections {
		n += len(e.Records)
	}
	return n
}
