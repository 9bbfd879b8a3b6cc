// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/models"
)

// documentRepository is the PostgreSQL-backed implementation of
// [DocumentRepository]. Every document is one row of the "documents" table;
// the full flat JSON form lives in body while doc_updated and deleted are
// mirrored into columns for filtering.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (d *documentRepository) QueryChangedSince(ctx context.Context, collection string, since int64) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildQueryDocuments(collection, since)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.QueryChangedSince").
			Str("collection", collection).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.QueryChangedSince").
			Str("collection", collection).
			Int64("since", since).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute query for changed documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Record, 0, 50)
	for rows.Next() {
		var body []byte
		if scanErr := rows.Scan(&body); scanErr != nil {
			log.Err(scanErr).
				Str("func", "documentRepository.QueryChangedSince").
				Str("collection", collection).
				Msg("failed to scan document row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		rec, decodeErr := decodeBody(body)
		if decodeErr != nil {
			return nil, decodeErr
		}
		results = append(results, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "documentRepository.QueryChangedSince").
			Str("collection", collection).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

func (d *documentRepository) GetOne(ctx context.Context, collection, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDocument(collection, id)
	if err != nil {
		return models.Record{}, err
	}

	var body []byte
	err = d.DB.QueryRowContext(ctx, query, args...).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.GetOne").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to get document")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return decodeBody(body)
}

func (d *documentRepository) MergeWrite(ctx context.Context, collection string, r models.Record) error {
	log := logger.FromContext(ctx)

	if err := mergeOne(ctx, d.DB.DB, collection, r); err != nil {
		log.Err(err).
			Str("func", "documentRepository.MergeWrite").
			Str("collection", collection).
			Str("id", r.ID).
			Str("pg_code", postgresError(err)).
			Msg("failed to merge document")
		return err
	}
	return nil
}

func (d *documentRepository) DeleteOne(ctx context.Context, collection, id string) error {
	log := logger.FromContext(ctx)

	affected, err := deleteOne(ctx, d.DB.DB, collection, id)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.DeleteOne").
			Str("collection", collection).
			Str("id", id).
			Msg("failed to delete document")
		return err
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// CommitBatch applies ops in one transaction and returns how many were
// applied. Deleting a missing document is not an error inside a batch.
func (d *documentRepository) CommitBatch(ctx context.Context, ops []models.Operation) (int, error) {
	log := logger.FromContext(ctx)

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.CommitBatch").
			Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for i, op := range ops {
		switch op.Kind {
		case models.OpMerge:
			if op.Record == nil {
				return 0, fmt.Errorf("%w: merge of %s/%s without record", ErrInvalidOperation, op.Collection, op.ID)
			}
			rec := *op.Record
			rec.ID = op.ID
			err = mergeOne(ctx, tx, op.Collection, rec)
		case models.OpDelete:
			_, err = deleteOne(ctx, tx, op.Collection, op.ID)
		default:
			return 0, fmt.Errorf("%w: kind %q", ErrInvalidOperation, op.Kind)
		}
		if err != nil {
			log.Err(err).
				Str("func", "documentRepository.CommitBatch").
				Int("iteration", i).
				Str("collection", op.Collection).
				Str("id", op.ID).
				Str("pg_code", postgresError(err)).
				Msg("batch operation failed")
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "documentRepository.CommitBatch").
			Int("count", len(ops)).
			Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return len(ops), nil
}

func mergeOne(ctx context.Context, ex execer, collection string, r models.Record) error {
	if r.DocUpdated == 0 {
		r.Touch(time.Now())
	}

	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingBody, err)
	}

	if _, err = ex.ExecContext(ctx, mergeDocument, collection, r.ID, r.DocUpdated, r.Deleted, body); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func deleteOne(ctx context.Context, ex execer, collection, id string) (int64, error) {
	query, args, err := buildDeleteDocument(collection, id)
	if err != nil {
		return 0, err
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return res.RowsAffected()
}

func decodeBody(body []byte) (models.Record, error) {
	var rec models.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrDecodingBody, err)
	}
	return rec, nil
}
