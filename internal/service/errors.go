// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Client cache errors.
var (
	// ErrMalformedTombstone is returned when a tombstone has no docType and
	// therefore no remote location.
	ErrMalformedTombstone = errors.New("tombstone has no docType")

	// ErrBatchAborted wraps the failure of one chunk of a batched write. The
	// chunks before it stay committed, the ones after it are never sent.
	ErrBatchAborted = errors.New("batch aborted")

	// ErrReadOnlyCollection is returned for writes addressed to the virtual
	// deleted collection.
	ErrReadOnlyCollection = errors.New("collection is read-only")
)

// Document server errors.
var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrForbidden             = errors.New("operation is not allowed for this user")
	ErrTokenIsExpired        = errors.New("token is expired")
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrInvalidToken          = errors.New("invalid token")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
