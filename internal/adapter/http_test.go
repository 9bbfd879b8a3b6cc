// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, serverURL string) *HTTPRemoteStore {
	t.Helper()
	s, err := NewHTTPRemoteStore(config.Adapter{HTTPAddress: serverURL, Token: "tkn"}, logger.Nop())
	require.NoError(t, err)
	return s
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: " https://docs.example.com/ ", want: "https://docs.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewHTTPRemoteStore_EmptyAddress(t *testing.T) {
	_, err := NewHTTPRemoteStore(config.Adapter{}, logger.Nop())
	require.Error(t, err)
}

// ── queries ──────────────────────────────────────────────────────────────────

func TestQueryChangedSince_SendsSinceAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/collections/forms", r.URL.Path)
		assert.Equal(t, "1700000000000", r.URL.Query().Get("since"))
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"collection":"forms","length":2,"records":[
			{"id":"a","docUpdated":1700000000001,"title":"A"},
			{"id":"b","docUpdated":1700000000002,"deleted":true,"docType":"forms"}]}`))
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).QueryChangedSince(context.Background(), "forms", 1700000000000)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Fields["title"])
	assert.Equal(t, models.KindLive, got[0].Kind())
	assert.Equal(t, models.KindTombstone, got[1].Kind())
	assert.Equal(t, "forms", got[1].DocType)
}

func TestQueryAll_OmitsSince(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("since"))
		_, _ = w.Write([]byte(`{"collection":"forms","length":0,"records":[]}`))
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).QueryAll(context.Background(), "forms")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuery_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database unavailable"}`))
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).QueryAll(context.Background(), "forms")

	require.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "database unavailable")
	assert.True(t, IsRetryable(err))
}

func TestQuery_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestStore(t, url).QueryAll(context.Background(), "forms")

	require.ErrorIs(t, err, ErrTransport)
	assert.True(t, IsRetryable(err))
}

// ── single documents ─────────────────────────────────────────────────────────

func TestGetOne_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/collections/forms/f1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"f1","docUpdated":5,"title":"Intake"}`))
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).GetOne(context.Background(), "forms", "f1")

	require.NoError(t, err)
	assert.Equal(t, "f1", got.ID)
	assert.Equal(t, int64(5), got.DocUpdated)
}

func TestGetOne_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).GetOne(context.Background(), "forms", "nope")

	require.ErrorIs(t, err, ErrNotFound)
	assert.False(t, IsRetryable(err))
}

func TestMergeWrite_PatchesFlatBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/collections/forms/f1", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var got map[string]any
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "Intake", got["title"])
		assert.Equal(t, true, got["deleted"])
		assert.Equal(t, "forms", got["docType"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	rec := models.NewRecord("f1", map[string]any{"title": "Intake"})
	rec.Deleted = true
	rec.DocType = "forms"

	err := newTestStore(t, srv.URL).MergeWrite(context.Background(), "forms", rec)
	require.NoError(t, err)
}

func TestDeleteOne_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).DeleteOne(context.Background(), "forms", "f1")
	require.ErrorIs(t, err, ErrForbidden)
}

// ── batch ────────────────────────────────────────────────────────────────────

func TestCommitBatch_SendsOperations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/batch", r.URL.Path)

		var req models.BatchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2, req.Length)
		require.Len(t, req.Operations, 2)
		assert.Equal(t, models.OpMerge, req.Operations[0].Kind)
		assert.Equal(t, models.OpDelete, req.Operations[1].Kind)

		_ = json.NewEncoder(w).Encode(models.BatchResponse{Committed: 2})
	}))
	defer srv.Close()

	ops := []models.Operation{
		models.MergeOp("forms", models.NewRecord("a", nil)),
		models.DeleteOp(models.DocumentRef{Collection: "forms", ID: "b"}),
	}
	require.NoError(t, newTestStore(t, srv.URL).CommitBatch(context.Background(), ops))
}

func TestCommitBatch_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	err := newTestStore(t, srv.URL).CommitBatch(context.Background(), nil)
	require.ErrorIs(t, err, ErrRequestTooLarge)
	assert.False(t, IsRetryable(err))
}

// ── identity ─────────────────────────────────────────────────────────────────

func TestCurrentUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.User{Email: "ann@example.com", Role: models.RoleAdmin})
	}))
	defer srv.Close()

	got, err := newTestStore(t, srv.URL).CurrentUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got.Email)
	assert.True(t, got.IsAdmin())
}

func TestCurrentUser_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestStore(t, srv.URL).CurrentUser(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestIsRetryable_Nil(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(errors.New("plain")))
}
