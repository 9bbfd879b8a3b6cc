// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-form-cache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Version(t *testing.T) {
	f := newFixture(t)
	f.info.EXPECT().GetAppVersion(gomock.Any()).Return("v1.4.0")

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "v1.4.0", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestHandler_Info(t *testing.T) {
	f := newFixture(t)
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f.info.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{Version: "v1.4.0", StartedAt: started, BatchLimit: 500})

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/info", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.AppInfo
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "v1.4.0", got.Version)
	assert.Equal(t, 500, got.BatchLimit)
	assert.True(t, started.Equal(got.StartedAt))
}

func TestHandler_VersionWrongMethodIsNotFound(t *testing.T) {
	f := newFixture(t)

	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/version", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
