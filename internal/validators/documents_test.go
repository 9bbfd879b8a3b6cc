// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-form-cache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tombstone(id, docType string) models.Record {
	r := models.NewRecord(id, nil)
	r.Deleted = true
	r.DocType = docType
	return r
}

func TestDocumentValidator_Record(t *testing.T) {
	v := NewDocumentValidator(0)
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{name: "live record", obj: models.NewRecord("a", nil)},
		{name: "pointer", obj: &models.Record{ID: "a"}},
		{name: "tombstone with docType", obj: tombstone("a", "forms")},
		{name: "tombstone without docType", obj: tombstone("a", ""), wantErr: ErrMissingDocType},
		{name: "empty id", obj: models.NewRecord("", nil), wantErr: ErrInvalidDocumentID},
		{name: "empty id allowed when only docType checked", obj: models.NewRecord("", nil), fields: []string{FieldDocType}},
		{name: "slash in id", obj: models.NewRecord("a/b", nil), wantErr: ErrInvalidDocumentID},
		{name: "too long id", obj: models.NewRecord(strings.Repeat("x", 257), nil), wantErr: ErrInvalidDocumentID},
		{name: "unknown field", obj: models.NewRecord("a", nil), fields: []string{"title"}, wantErr: ErrUnknownField},
		{name: "unsupported type", obj: 42, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDocumentValidator_Ref(t *testing.T) {
	v := NewDocumentValidator(0)
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.DocumentRef{Collection: "forms", ID: "a"}))
	require.ErrorIs(t, v.Validate(ctx, models.DocumentRef{Collection: "", ID: "a"}), ErrInvalidCollection)
	require.ErrorIs(t, v.Validate(ctx, models.DocumentRef{Collection: "bad name", ID: "a"}), ErrInvalidCollection)
	require.ErrorIs(t,
		v.Validate(ctx, models.DocumentRef{Collection: models.DeletedCollection, ID: "a"}, FieldCollection, FieldWritable),
		ErrReservedCollection)
	require.NoError(t, v.Validate(ctx, models.DocumentRef{Collection: "forms"}, FieldCollection))
}

func TestDocumentValidator_Batch(t *testing.T) {
	v := NewDocumentValidator(3)
	ctx := context.Background()

	op := func(id string) models.Operation {
		return models.MergeOp("forms", models.NewRecord(id, nil))
	}

	ok := models.BatchRequest{Operations: []models.Operation{op("a"), op("b")}, Length: 2}
	require.NoError(t, v.Validate(ctx, ok))
	require.NoError(t, v.Validate(ctx, &ok))

	require.ErrorIs(t, v.Validate(ctx, models.BatchRequest{}), ErrEmptyBatch)

	big := models.BatchRequest{Operations: []models.Operation{op("a"), op("b"), op("c"), op("d")}, Length: 4}
	require.ErrorIs(t, v.Validate(ctx, big), ErrBatchTooLarge)

	require.ErrorIs(t, v.Validate(ctx, models.BatchRequest{Operations: []models.Operation{op("a")}, Length: 5}), ErrBatchLengthMismatch)

	noRecord := models.BatchRequest{Operations: []models.Operation{{Kind: models.OpMerge, Collection: "forms", ID: "a"}}, Length: 1}
	require.ErrorIs(t, v.Validate(ctx, noRecord), ErrMissingRecord)

	badKind := models.BatchRequest{Operations: []models.Operation{{Kind: "upsert", Collection: "forms", ID: "a"}}, Length: 1}
	err := v.Validate(ctx, badKind)
	require.ErrorIs(t, err, ErrInvalidOperationKind)
	assert.Contains(t, err.Error(), "operation 0")

	del := models.BatchRequest{Operations: []models.Operation{models.DeleteOp(models.DocumentRef{Collection: "forms", ID: "x"})}, Length: 1}
	require.NoError(t, v.Validate(ctx, del))
}

func TestNewDocumentValidator_DefaultLimit(t *testing.T) {
	v := NewDocumentValidator(-1).(*DocumentValidator)
	assert.Equal(t, models.DefaultBatchLimit, v.batchLimit)
}
