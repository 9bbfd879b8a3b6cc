// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-form-cache/internal/adapter"
	"github.com/MKhiriev/go-form-cache/internal/service"
)

// humanizeError turns sync engine errors into a one-line message.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, request a new token"
	case errors.Is(err, adapter.ErrForbidden):
		return "You are not allowed to change this document"
	case errors.Is(err, service.ErrMalformedTombstone):
		return "The document has no origin collection and cannot be purged remotely"
	case errors.Is(err, service.ErrBatchAborted):
		return "Purge stopped part way: " + err.Error()
	}

	s := strings.ToLower(err.Error())
	if errors.Is(err, adapter.ErrTransport) ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unreachable"
	}

	return err.Error()
}
