// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocumentRepo(t *testing.T) (*documentRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := logger.Nop()
	repo := &documentRepository{
		DB:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ── QueryChangedSince ──

func TestQueryChangedSince_DecodesBodies(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	rows := sqlmock.NewRows([]string{"body"}).
		AddRow([]byte(`{"id":"a","docUpdated":10,"title":"A"}`)).
		AddRow([]byte(`{"id":"b","docUpdated":11,"deleted":true,"docType":"forms"}`))
	mock.ExpectQuery("SELECT body FROM documents WHERE collection = \\$1 AND doc_updated > \\$2").
		WithArgs("forms", int64(9)).
		WillReturnRows(rows)

	got, err := repo.QueryChangedSince(context.Background(), "forms", 9)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Fields["title"])
	assert.Equal(t, models.KindTombstone, got[1].Kind())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryChangedSince_QueryError(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectQuery("SELECT body FROM documents").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.QueryChangedSince(context.Background(), "forms", 0)

	require.ErrorIs(t, err, ErrExecutingQuery)
	assert.True(t, repo.IsRetryable(err))
}

func TestQueryChangedSince_BadBody(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectQuery("SELECT body FROM documents").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(`not json`)))

	_, err := repo.QueryChangedSince(context.Background(), "forms", 0)
	require.ErrorIs(t, err, ErrDecodingBody)
}

// ── GetOne ──

func TestGetOne_NotFound(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectQuery("SELECT body FROM documents").
		WithArgs("forms", "nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetOne(context.Background(), "forms", "nope")
	require.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestGetOne_Success(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectQuery("SELECT body FROM documents").
		WithArgs("forms", "f1").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).AddRow([]byte(`{"id":"f1","docUpdated":3}`)))

	got, err := repo.GetOne(context.Background(), "forms", "f1")
	require.NoError(t, err)
	assert.Equal(t, "f1", got.ID)
	assert.Equal(t, int64(3), got.DocUpdated)
}

// ── MergeWrite / DeleteOne ──

func TestMergeWrite_UsesJSONBOverlay(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	rec := models.NewRecord("f1", map[string]any{"title": "Intake"})
	rec.DocUpdated = 42

	mock.ExpectExec("INSERT INTO documents .* ON CONFLICT \\(collection, id\\) DO UPDATE").
		WithArgs("forms", "f1", int64(42), false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MergeWrite(context.Background(), "forms", rec))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMergeWrite_StampsMissingDocUpdated(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectExec("INSERT INTO documents").
		WithArgs("forms", "f1", sqlmock.AnyArg(), false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MergeWrite(context.Background(), "forms", models.NewRecord("f1", nil)))
}

func TestMergeWrite_ExecError(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectExec("INSERT INTO documents").
		WillReturnError(pgError(pgerrcode.CheckViolation))

	err := repo.MergeWrite(context.Background(), "forms", models.NewRecord("f1", nil))
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.False(t, repo.IsRetryable(err))
}

func TestDeleteOne(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectExec("DELETE FROM documents").
		WithArgs("forms", "f1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM documents").
		WithArgs("forms", "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteOne(context.Background(), "forms", "f1"))
	require.ErrorIs(t, repo.DeleteOne(context.Background(), "forms", "gone"), ErrDocumentNotFound)
}

// ── CommitBatch ──

func TestCommitBatch_SingleTransaction(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	rec := models.NewRecord("a", map[string]any{"n": 1})
	rec.DocUpdated = 5

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO documents").
		WithArgs("forms", "a", int64(5), false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM documents").
		WithArgs("deleted", "b").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	n, err := repo.CommitBatch(context.Background(), []models.Operation{
		models.MergeOp("forms", rec),
		models.DeleteOp(models.DocumentRef{Collection: "deleted", ID: "b"}),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitBatch_RollsBackOnFailure(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO documents").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	n, err := repo.CommitBatch(context.Background(), []models.Operation{
		models.MergeOp("forms", models.NewRecord("a", nil)),
		models.MergeOp("forms", models.NewRecord("b", nil)),
	})

	require.Error(t, err)
	assert.Zero(t, n)
	assert.True(t, repo.IsRetryable(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCommitBatch_InvalidOperation(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := repo.CommitBatch(context.Background(), []models.Operation{{Kind: "upsert", Collection: "forms", ID: "a"}})
	require.ErrorIs(t, err, ErrInvalidOperation)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = repo.CommitBatch(context.Background(), []models.Operation{{Kind: models.OpMerge, Collection: "forms", ID: "a"}})
	require.ErrorIs(t, err, ErrInvalidOperation)
}

func TestCommitBatch_BeginError(t *testing.T) {
	repo, mock := newTestDocumentRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.CommitBatch(context.Background(), nil)
	require.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── users ──

func TestFindUserByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(&DB{DB: db}, logger.Nop())

	mock.ExpectQuery("SELECT body FROM documents").
		WithArgs("users", "ann@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"body"}).
			AddRow([]byte(`{"id":"u1","email":"ann@example.com","role":"admin","password":"x"}`)))
	mock.ExpectQuery("SELECT body FROM documents").
		WithArgs("users", "ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	u, err := repo.FindUserByEmail(context.Background(), "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: "u1", Email: "ann@example.com", Role: "admin"}, u)

	_, err = repo.FindUserByEmail(context.Background(), "ghost@example.com")
	require.ErrorIs(t, err, ErrNoUserWasFound)
}

// ── classifier ──

func TestClassifyPgError(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
