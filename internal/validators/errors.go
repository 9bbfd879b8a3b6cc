// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCollection    = errors.New("invalid collection name")
	ErrReservedCollection   = errors.New("collection is reserved")
	ErrInvalidDocumentID    = errors.New("invalid document id")
	ErrMissingDocType       = errors.New("tombstone without docType")
	ErrInvalidOperationKind = errors.New("invalid operation kind")
	ErrMissingRecord        = errors.New("merge operation without record")
	ErrEmptyBatch           = errors.New("batch cannot be empty")
	ErrBatchTooLarge        = errors.New("batch exceeds the operation limit")
	ErrBatchLengthMismatch  = errors.New("batch length does not match operations")
)
