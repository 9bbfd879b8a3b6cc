// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-form-cache/internal/validators"
	"github.com/MKhiriev/go-form-cache/models"
)

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// logging or validating.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService // returns a decorated DocumentService applying additional behavior
}

// DocumentValidationService rejects malformed input before it reaches the
// wrapped DocumentService.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService(batchLimit int) DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(batchLimit),
	}
}

func (v *DocumentValidationService) Changes(ctx context.Context, collection string, since int64) ([]models.Record, error) {
	if err := v.validateRef(ctx, models.DocumentRef{Collection: collection}, validators.FieldCollection, validators.FieldWritable); err != nil {
		return nil, err
	}
	if since < 0 {
		return nil, fmt.Errorf("%w: negative since %d", ErrInvalidDataProvided, since)
	}
	return v.inner.Changes(ctx, collection, since)
}

func (v *DocumentValidationService) Get(ctx context.Context, collection, id string) (models.Record, error) {
	if err := v.validateRef(ctx, models.DocumentRef{Collection: collection, ID: id}); err != nil {
		return models.Record{}, err
	}
	return v.inner.Get(ctx, collection, id)
}

func (v *DocumentValidationService) Merge(ctx context.Context, collection string, r models.Record) error {
	ref := models.DocumentRef{Collection: collection, ID: r.ID}
	if err := v.validateRef(ctx, ref, validators.FieldCollection, validators.FieldWritable, validators.FieldID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, r, validators.FieldDocType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Merge(ctx, collection, r)
}

func (v *DocumentValidationService) Delete(ctx context.Context, collection, id string) error {
	ref := models.DocumentRef{Collection: collection, ID: id}
	if err := v.validateRef(ctx, ref, validators.FieldCollection, validators.FieldWritable, validators.FieldID); err != nil {
		return err
	}
	return v.inner.Delete(ctx, collection, id)
}

func (v *DocumentValidationService) Batch(ctx context.Context, req models.BatchRequest) (int, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldOperations); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	for i, op := range req.Operations {
		if err := v.validateRef(ctx, models.DocumentRef{Collection: op.Collection}, validators.FieldWritable); err != nil {
			return 0, fmt.Errorf("operation %d: %w", i, err)
		}
	}
	return v.inner.Batch(ctx, req)
}

func (v *DocumentValidationService) Wrap(wrapped DocumentService) DocumentService {
	v.inner = wrapped
	return v
}

func (v *DocumentValidationService) validateRef(ctx context.Context, ref models.DocumentRef, fields ...string) error {
	if err := v.validator.Validate(ctx, ref, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
