// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-form-cache/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldCollection targets the collection name of a reference or operation.
	FieldCollection = "collection"
	// FieldID targets the document id.
	FieldID = "id"
	// FieldDocType targets the tombstone's origin collection.
	FieldDocType = "docType"
	// FieldWritable rejects the virtual deleted collection as a write target.
	FieldWritable = "writable"
	// FieldOperations targets the operation list of a batch.
	FieldOperations = "operations"
)

const maxIDLength = 256

var collectionName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// DocumentValidator checks records, document references and batches.
type DocumentValidator struct {
	batchLimit int
}

// NewDocumentValidator returns a validator that rejects batches larger than
// batchLimit. A non-positive limit falls back to [models.DefaultBatchLimit].
func NewDocumentValidator(batchLimit int) Validator {
	if batchLimit <= 0 {
		batchLimit = models.DefaultBatchLimit
	}
	return &DocumentValidator{batchLimit: batchLimit}
}

func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(value, fields...)
	case *models.Record:
		return v.validateRecord(*value, fields...)

	case models.DocumentRef:
		return v.validateRef(value, fields...)
	case *models.DocumentRef:
		return v.validateRef(*value, fields...)

	case models.Operation:
		return v.validateOperation(value)
	case *models.Operation:
		return v.validateOperation(*value)

	case models.BatchRequest:
		return v.validateBatch(value, fields...)
	case *models.BatchRequest:
		return v.validateBatch(*value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *DocumentValidator) validateRecord(r models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldDocType}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			if err := validateID(r.ID); err != nil {
				return err
			}
		case FieldDocType:
			if r.Kind() == models.KindTombstone && r.DocType == "" {
				return fmt.Errorf("%w: %s", ErrMissingDocType, r.ID)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *DocumentValidator) validateRef(ref models.DocumentRef, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCollection, FieldID}
	}

	for _, field := range fields {
		switch field {
		case FieldCollection:
			if err := validateCollection(ref.Collection); err != nil {
				return err
			}
		case FieldWritable:
			if ref.Collection == models.DeletedCollection {
				return fmt.Errorf("%w: %s", ErrReservedCollection, ref.Collection)
			}
		case FieldID:
			if err := validateID(ref.ID); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *DocumentValidator) validateOperation(op models.Operation) error {
	if err := v.validateRef(models.DocumentRef{Collection: op.Collection, ID: op.ID}); err != nil {
		return err
	}

	switch op.Kind {
	case models.OpMerge:
		if op.Record == nil {
			return fmt.Errorf("%w: %s/%s", ErrMissingRecord, op.Collection, op.ID)
		}
		return v.validateRecord(*op.Record, FieldDocType)
	case models.OpDelete:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOperationKind, op.Kind)
	}
}

func (v *DocumentValidator) validateBatch(req models.BatchRequest, fields ...string) error {
	switch {
	case len(req.Operations) == 0:
		return ErrEmptyBatch
	case len(req.Operations) > v.batchLimit:
		return fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(req.Operations), v.batchLimit)
	case req.Length != len(req.Operations):
		return fmt.Errorf("%w: %d != %d", ErrBatchLengthMismatch, req.Length, len(req.Operations))
	}

	if len(fields) > 0 && fields[0] != FieldOperations {
		return fmt.Errorf("%w: %s", ErrUnknownField, fields[0])
	}

	for i, op := range req.Operations {
		if err := v.validateOperation(op); err != nil {
			return fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return nil
}

func validateCollection(name string) error {
	if !collectionName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, name)
	}
	return nil
}

func validateID(id string) error {
	if id == "" || len(id) > maxIDLength {
		return fmt.Errorf("%w: %q", ErrInvalidDocumentID, id)
	}
	for _, c := range id {
		if c == '/' || c < 0x20 {
			return fmt.Errorf("%w: %q", ErrInvalidDocumentID, id)
		}
	}
	return nil
}
