// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-form-cache/internal/service"
	"github.com/MKhiriev/go-form-cache/internal/store"
	"github.com/MKhiriev/go-form-cache/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrForbidden:           http.StatusForbidden,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrInvalidToken:        http.StatusUnauthorized,

	store.ErrDocumentNotFound: http.StatusNotFound,
	store.ErrNoUserWasFound:   http.StatusNotFound,
	store.ErrInvalidOperation: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrDecodingBody:         http.StatusInternalServerError,
}

// statusFromError returns the status of the most specific sentinel in err's
// chain. A too-large batch is also an invalid-data error, so 413 wins over
// 400.
func statusFromError(err error) int {
	if errors.Is(err, validators.ErrBatchTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
