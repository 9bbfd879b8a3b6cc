// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-form-cache/internal/adapter"
	"github.com/MKhiriev/go-form-cache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── UpsertOne ────────────────────────────────────────────────────────────────

func TestClientWriteService_UpsertOne_AssignsIDAndStamps(t *testing.T) {
	e := newEngine(t)
	now := e.clock.Now().UnixMilli()

	e.remote.EXPECT().MergeWrite(gomock.Any(), "forms", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, r models.Record) error {
			assert.Equal(t, "gen-0001", r.ID)
			assert.Equal(t, now, r.DocUpdated)
			assert.Equal(t, "A", r.Fields["title"])
			return nil
		})

	got, err := e.write.UpsertOne(context.Background(), "forms", doc("", "A"))

	require.NoError(t, err)
	assert.Equal(t, "gen-0001", got.ID)
	assert.Equal(t, now, got.DocUpdated)
	assert.Equal(t, []string{"gen-0001"}, ids(e.cached("forms")))

	snap := e.savedSnapshot(t)
	require.NotNil(t, snap)
	assert.Len(t, snap.Collections["forms"].Records, 1)
}

func TestClientWriteService_UpsertOne_KeepsIDAndDoesNotMutateInput(t *testing.T) {
	e := newEngine(t)
	in := doc("a", "A")

	e.remote.EXPECT().MergeWrite(gomock.Any(), "forms", gomock.Any()).Return(nil)

	got, err := e.write.UpsertOne(context.Background(), "forms", in)

	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)
	assert.Zero(t, in.DocUpdated)

	got.Fields["title"] = "changed"
	cached, ok := e.core.cache.GetOne("forms", "a")
	require.True(t, ok)
	assert.Equal(t, "A", cached.Fields["title"])
}

func TestClientWriteService_UpsertOne_RemoteFailureStillCaches(t *testing.T) {
	e := newEngine(t)

	e.remote.EXPECT().MergeWrite(gomock.Any(), "forms", gomock.Any()).Return(adapter.ErrBadRequest)

	got, err := e.write.UpsertOne(context.Background(), "forms", doc("a", "A"))

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, []string{"a"}, ids(e.cached("forms")))
	assert.Nil(t, e.savedSnapshot(t), "failed writes are not persisted")
}

func TestClientWriteService_UpsertOne_LiveRecordReplacesTombstone(t *testing.T) {
	e := newEngine(t)
	e.core.cache.UpsertOne(models.DeletedCollection, tombstone("a", "forms"))

	e.remote.EXPECT().MergeWrite(gomock.Any(), "forms", gomock.Any()).Return(nil)

	_, err := e.write.UpsertOne(context.Background(), "forms", doc("a", "A"))

	require.NoError(t, err)
	assert.Empty(t, e.cached(models.DeletedCollection))
	assertExclusive(t, e, "forms")
}

func TestClientWriteService_UpsertOne_TombstoneGoesToBin(t *testing.T) {
	e := newEngine(t)
	e.core.cache.Replace("forms", []models.Record{doc("a", "A")})

	e.remote.EXPECT().MergeWrite(gomock.Any(), "forms", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, r models.Record) error {
			assert.Equal(t, "forms", r.DocType)
			return nil
		})

	_, err := e.write.UpsertOne(context.Background(), "forms", models.Record{ID: "a", Deleted: true, Fields: map[string]any{}})

	require.NoError(t, err)
	assert.Empty(t, e.cached("forms"))
	assert.Equal(t, []string{"a"}, ids(e.cached(models.DeletedCollection)))
}

func TestClientWriteService_UpsertOne_RejectsBadTargets(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		record     models.Record
		wantErr    error
	}{
		{name: "recycle bin", collection: models.DeletedCollection, record: doc("a", "A"), wantErr: ErrReadOnlyCollection},
		{name: "invalid collection", collection: "forms/x", record: doc("a", "A"), wantErr: ErrInvalidDataProvided},
		{name: "empty collection", collection: "", record: doc("a", "A"), wantErr: ErrInvalidDataProvided},
		{name: "invalid id", collection: "forms", record: doc("a/b", "A"), wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)

			_, err := e.write.UpsertOne(context.Background(), tt.collection, tt.record)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientWriteService_UpsertOne_Retry(t *testing.T) {
	t.Run("transient failure is retried", func(t *testing.T) {
		e := newEngine(t, func(o *ClientOptions) { o.RetryAttempts = 2 })

		gomock.InOrder(
			e.remote.EXPECT().MergeWrite(gomock.Any(), "forms", gomock.Any()).Return(adapter.ErrServiceUnavailable),
			e.remote.EXPECT().MergeWrite(gomock.Any(), "forms", gomock.Any()).Return(nil),
		)

		_, err := e.write.UpsertOne(context.Background(), "forms", doc("a", "A"))

		require.NoError(t, err)
	})

	t.Run("attempts are bounded", func(t *testing.T) {
		e := newEngine(t, func(o *ClientOptions) { o.RetryAttempts = 2 })

		e.remote.EXPECT().MergeWrite(gomock.Any(), "forms", gomock.Any()).Return(adapter.ErrTransport).Times(3)

		_, err := e.write.UpsertOne(context.Background(), "forms", doc("a", "A"))

		assert.ErrorIs(t, err, adapter.ErrTransport)
	})

	t.Run("permanent failure is not retried", func(t *testing.T) {
		e := newEngine(t, func(o *ClientOptions) { o.RetryAttempts = 2 })

		e.remote.EXPECT().MergeWrite(gomock.Any(), "forms", gomock.Any()).Return(adapter.ErrForbidden).Times(1)

		_, err := e.write.UpsertOne(context.Background(), "forms", doc("a", "A"))

		assert.ErrorIs(t, err, adapter.ErrForbidden)
	})
}

// ── UpsertMany ───────────────────────────────────────────────────────────────

func newDocs(n int) []models.Record {
	records := make([]models.Record, 0, n)
	for i := range n {
		records = append(records, doc(fmt.Sprintf("doc-%04d", i), fmt.Sprintf("title %d", i)))
	}
	return records
}

func TestClientWriteService_UpsertMany_ChunksInOrder(t *testing.T) {
	e := newEngine(t)
	records := newDocs(1200)

	var sizes []int
	var firstIDs []string
	e.remote.EXPECT().CommitBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ops []models.Operation) error {
			sizes = append(sizes, len(ops))
			firstIDs = append(firstIDs, ops[0].ID)
			for _, op := range ops {
				assert.Equal(t, models.OpMerge, op.Kind)
				assert.Equal(t, "forms", op.Collection)
				require.NotNil(t, op.Record)
				assert.Equal(t, e.clock.Now().UnixMilli(), op.Record.DocUpdated)
			}
			return nil
		}).Times(3)

	err := e.write.UpsertMany(context.Background(), "forms", records)

	require.NoError(t, err)
	assert.Equal(t, []int{500, 500, 200}, sizes)
	assert.Equal(t, []string{"doc-0000", "doc-0500", "doc-1000"}, firstIDs)

	cached := e.cached("forms")
	require.Len(t, cached, 1200)
	assert.Equal(t, "doc-0000", cached[0].ID)
	assert.Equal(t, "doc-1199", cached[1199].ID)
}

func TestClientWriteService_UpsertMany_CustomBatchLimit(t *testing.T) {
	e := newEngine(t, func(o *ClientOptions) { o.BatchLimit = 2 })

	var sizes []int
	e.remote.EXPECT().CommitBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ops []models.Operation) error {
			sizes = append(sizes, len(ops))
			return nil
		}).Times(3)

	require.NoError(t, e.write.UpsertMany(context.Background(), "forms", newDocs(5)))
	assert.Equal(t, []int{2, 2, 1}, sizes)
}

func TestClientWriteService_UpsertMany_FailedChunkAbortsRest(t *testing.T) {
	e := newEngine(t)
	cause := errors.New("quota exceeded")

	gomock.InOrder(
		e.remote.EXPECT().CommitBatch(gomock.Any(), gomock.Len(500)).Return(nil),
		e.remote.EXPECT().CommitBatch(gomock.Any(), gomock.Len(500)).Return(cause),
	)

	err := e.write.UpsertMany(context.Background(), "forms", newDocs(1200))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBatchAborted)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "committed 500 of 1200 operations")

	assert.Len(t, e.cached("forms"), 500, "only the committed chunk is cached")
	snap := e.savedSnapshot(t)
	require.NotNil(t, snap)
	assert.Len(t, snap.Collections["forms"].Records, 500)
}

func TestClientWriteService_UpsertMany_AssignsUniqueIDs(t *testing.T) {
	e := newEngine(t, func(o *ClientOptions) { o.NewID = nil })

	e.remote.EXPECT().CommitBatch(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	records := make([]models.Record, 1000)
	for i := range records {
		records[i] = models.Record{Fields: map[string]any{"n": i}}
	}

	require.NoError(t, e.write.UpsertMany(context.Background(), "answers", records))

	seen := make(map[string]bool)
	for _, r := range e.cached("answers") {
		require.NotEmpty(t, r.ID)
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
	assert.Len(t, seen, 1000)
}

func TestClientWriteService_UpsertMany_Empty(t *testing.T) {
	e := newEngine(t)

	assert.NoError(t, e.write.UpsertMany(context.Background(), "forms", nil))
}

func TestClientWriteService_UpsertMany_InvalidRecordSendsNothing(t *testing.T) {
	e := newEngine(t)
	records := append(newDocs(3), doc("bad/id", "x"))

	err := e.write.UpsertMany(context.Background(), "forms", records)

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Empty(t, e.cached("forms"))
}

// ── RemoveMany ───────────────────────────────────────────────────────────────

func TestClientWriteService_RemoveMany(t *testing.T) {
	e := newEngine(t)
	e.core.cache.Replace("forms", []models.Record{doc("a", "A"), doc("b", "B")})
	e.core.cache.Replace("answers", []models.Record{doc("x", "X")})
	e.core.cache.UpsertOne(models.DeletedCollection, tombstone("t", "forms"))

	refs := []models.DocumentRef{
		{Collection: "forms", ID: "a"},
		{Collection: "answers", ID: "x"},
		{Collection: "forms", ID: "t"},
	}
	e.remote.EXPECT().CommitBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ops []models.Operation) error {
			require.Len(t, ops, 3)
			for i, op := range ops {
				assert.Equal(t, models.OpDelete, op.Kind)
				assert.Equal(t, refs[i].Collection, op.Collection)
				assert.Equal(t, refs[i].ID, op.ID)
				assert.Nil(t, op.Record)
			}
			return nil
		})

	require.NoError(t, e.write.RemoveMany(context.Background(), refs))

	assert.Equal(t, []string{"b"}, ids(e.cached("forms")))
	assert.Empty(t, e.cached("answers"))
	assert.Empty(t, e.cached(models.DeletedCollection))
}

func TestClientWriteService_RemoveMany_Validation(t *testing.T) {
	e := newEngine(t)

	err := e.write.RemoveMany(context.Background(), []models.DocumentRef{{Collection: models.DeletedCollection, ID: "a"}})
	assert.ErrorIs(t, err, ErrReadOnlyCollection)

	err = e.write.RemoveMany(context.Background(), []models.DocumentRef{{Collection: "forms", ID: ""}})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	assert.NoError(t, e.write.RemoveMany(context.Background(), nil))
}
