// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when a read or delete targets a
	// (collection, id) pair that does not exist.
	ErrDocumentNotFound = errors.New("document was not found")

	// ErrNoUserWasFound is returned when no profile in the users collection
	// carries the requested e-mail.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrInvalidOperation is returned for batch entries with an unknown kind
	// or a merge without a record.
	ErrInvalidOperation = errors.New("invalid batch operation")

	// ErrUnknownSnapshotDriver is returned by [NewSnapshotStore] for driver
	// names it does not know.
	ErrUnknownSnapshotDriver = errors.New("unknown snapshot driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan document rows")

	// ErrDecodingBody is returned when a stored JSON body is not a valid
	// document.
	ErrDecodingBody = errors.New("failed to decode document body")
)
