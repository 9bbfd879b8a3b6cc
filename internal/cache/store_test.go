// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-form-cache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id, v string) models.Record {
	return models.Record{ID: id, Fields: map[string]any{"v": v}}
}

func TestStore_GetDistinguishesAbsentFromEmpty(t *testing.T) {
	s := New()

	_, ok := s.Get("forms")
	assert.False(t, ok)

	s.Replace("forms", nil)
	got, ok := s.Get("forms")
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestStore_UpsertOneKeepsOrderAndOverwritesInPlace(t *testing.T) {
	s := New()
	s.UpsertOne("forms", rec("1", "a"))
	s.UpsertOne("forms", rec("2", "b"))
	s.UpsertOne("forms", rec("1", "c"))

	got, ok := s.Get("forms")
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "c", got[0].Fields["v"])
	assert.Equal(t, "2", got[1].ID)
}

func TestStore_RemoveOneReindexes(t *testing.T) {
	s := New()
	s.Replace("forms", []models.Record{rec("1", "a"), rec("2", "b"), rec("3", "c")})

	assert.True(t, s.RemoveOne("forms", "1"))
	assert.False(t, s.RemoveOne("forms", "1"))
	assert.False(t, s.RemoveOne("missing", "1"))

	r, ok := s.GetOne("forms", "3")
	require.True(t, ok)
	assert.Equal(t, "c", r.Fields["v"])

	s.UpsertOne("forms", rec("3", "z"))
	got, _ := s.Get("forms")
	assert.Len(t, got, 2)
	assert.Equal(t, "z", got[1].Fields["v"])
}

func TestStore_ReturnedSlicesAreCopies(t *testing.T) {
	s := New()
	s.UpsertOne("forms", rec("1", "a"))

	got, _ := s.Get("forms")
	got[0].Fields["v"] = "mutated"

	again, _ := s.GetOne("forms", "1")
	assert.Equal(t, "a", again.Fields["v"])
}

func TestStore_WatermarkOnlyMovesForward(t *testing.T) {
	s := New()
	assert.Zero(t, s.Watermark("forms"))

	t1 := time.UnixMilli(2000)
	s.SetWatermark("forms", t1)
	s.SetWatermark("forms", time.UnixMilli(1000))
	assert.Equal(t, int64(2000), s.Watermark("forms"))

	s.Invalidate("forms")
	assert.Zero(t, s.Watermark("forms"))
	_, ok := s.Get("forms")
	assert.True(t, ok, "invalidate keeps cached records")
}

func TestStore_ExportImportRoundTrip(t *testing.T) {
	s := New()
	s.Replace("forms", []models.Record{rec("1", "a")})
	s.SetWatermark("forms", time.UnixMilli(99))
	s.UpsertOne(models.DeletedCollection, models.Record{ID: "2", Deleted: true, DocType: "forms"})

	snap := s.Export()
	assert.Equal(t, 2, snap.Len())

	restored := New()
	restored.Import(snap)

	assert.Equal(t, []string{models.DeletedCollection, "forms"}, restored.Collections())
	assert.Equal(t, int64(99), restored.Watermark("forms"))
	r, ok := restored.GetOne(models.DeletedCollection, "2")
	require.True(t, ok)
	assert.Equal(t, "forms", r.DocType)
}

func TestStore_LockSerializesCollection(t *testing.T) {
	s := New()
	s.Replace("forms", nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := s.Lock("forms")
			defer unlock()

			cur, _ := s.Get("forms")
			cur = append(cur, models.Record{ID: strconv.Itoa(len(cur))})
			s.Replace("forms", cur)
		}()
	}
	wg.Wait()

	got, _ := s.Get("forms")
	assert.Len(t, got, 50)
}
