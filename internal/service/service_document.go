// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/internal/store"
	"github.com/MKhiriev/go-form-cache/internal/utils"
	"github.com/MKhiriev/go-form-cache/models"
	"github.com/sethvargo/go-retry"
)

const (
	defaultServerRetryAttempts = 2
	defaultServerRetryDelay    = 50 * time.Millisecond
)

type documentService struct {
	documentRepository store.DocumentRepository
	isRetryable        func(error) bool

	retryAttempts  int
	retryBaseDelay time.Duration

	logger *logger.Logger
}

// NewDocumentService builds the document service. isRetryable classifies
// repository errors; transient ones are attempted again with exponential
// backoff.
func NewDocumentService(documentRepository store.DocumentRepository, isRetryable func(error) bool, cfg config.Cache, logger *logger.Logger) DocumentService {
	s := &documentService{
		documentRepository: documentRepository,
		isRetryable:        isRetryable,
		retryAttempts:      cfg.RetryAttempts,
		retryBaseDelay:     cfg.RetryBaseDelay,
		logger:             logger,
	}
	if s.isRetryable == nil {
		s.isRetryable = func(error) bool { return false }
	}
	if s.retryAttempts <= 0 {
		s.retryAttempts = defaultServerRetryAttempts
	}
	if s.retryBaseDelay <= 0 {
		s.retryBaseDelay = defaultServerRetryDelay
	}
	return s
}

func (d *documentService) Changes(ctx context.Context, collection string, since int64) ([]models.Record, error) {
	var records []models.Record
	err := d.withRetry(ctx, func(ctx context.Context) error {
		var err error
		records, err = d.documentRepository.QueryChangedSince(ctx, collection, since)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("query %s since %d: %w", collection, since, err)
	}
	return records, nil
}

func (d *documentService) Get(ctx context.Context, collection, id string) (models.Record, error) {
	var record models.Record
	err := d.withRetry(ctx, func(ctx context.Context) error {
		var err error
		record, err = d.documentRepository.GetOne(ctx, collection, id)
		return err
	})
	if err != nil {
		return models.Record{}, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return record, nil
}

func (d *documentService) Merge(ctx context.Context, collection string, r models.Record) error {
	if err := d.checkWrite(ctx, collection); err != nil {
		return err
	}

	err := d.withRetry(ctx, func(ctx context.Context) error {
		return d.documentRepository.MergeWrite(ctx, collection, r)
	})
	if err != nil {
		return fmt.Errorf("merge %s/%s: %w", collection, r.ID, err)
	}
	return nil
}

func (d *documentService) Delete(ctx context.Context, collection, id string) error {
	if err := d.checkWrite(ctx, collection); err != nil {
		return err
	}

	err := d.withRetry(ctx, func(ctx context.Context) error {
		return d.documentRepository.DeleteOne(ctx, collection, id)
	})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

func (d *documentService) Batch(ctx context.Context, req models.BatchRequest) (int, error) {
	for _, op := range req.Operations {
		if err := d.checkWrite(ctx, op.Collection); err != nil {
			return 0, err
		}
	}

	var committed int
	err := d.withRetry(ctx, func(ctx context.Context) error {
		var err error
		committed, err = d.documentRepository.CommitBatch(ctx, req.Operations)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("commit batch of %d: %w", len(req.Operations), err)
	}
	return committed, nil
}

// checkWrite allows writes to the users collection to admins only.
func (d *documentService) checkWrite(ctx context.Context, collection string) error {
	if collection != models.UsersCollection {
		return nil
	}
	user, ok := utils.GetUserFromContext(ctx)
	if !ok || !user.IsAdmin() {
		logger.FromContext(ctx).Warn().
			Str("email", user.Email).
			Str("collection", collection).
			Msg("write rejected: admin role required")
		return fmt.Errorf("%w: %s is writable by admins only", ErrForbidden, collection)
	}
	return nil
}

// withRetry attempts fn again while the repository reports a transient error.
// The transaction of a failed batch is rolled back, so batches are safe to
// repeat.
func (d *documentService) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(uint64(d.retryAttempts), retry.NewExponential(d.retryBaseDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && d.isRetryable(err) {
			d.logger.Debug().Err(err).Msg("retrying transient database error")
			return retry.RetryableError(err)
		}
		return err
	})
}
