// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultBatchLimit is the maximum number of operations the remote store
// accepts in one batched commit.
const DefaultBatchLimit = 500

// DefaultFreshnessWindow is how long a synced collection is served purely
// from memory.
const DefaultFreshnessWindow = 5 * time.Second

// OpKind is the type of a batched write operation.
type OpKind string

const (
	// OpMerge overlays the record fields onto the remote document.
	OpMerge OpKind = "merge"
	// OpDelete removes the remote document.
	OpDelete OpKind = "delete"
)

// Operation is one entry of a batched commit.
type Operation struct {
	Kind       OpKind  `json:"kind"`
	Collection string  `json:"collection"`
	ID         string  `json:"id"`
	Record     *Record `json:"record,omitempty"`
}

// DocumentRef locates a document on the remote store.
type DocumentRef struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
}

// MergeOp builds a merge operation for r in collection.
func MergeOp(collection string, r Record) Operation {
	rec := r
	return Operation{Kind: OpMerge, Collection: collection, ID: r.ID, Record: &rec}
}

// DeleteOp builds a delete operation.
func DeleteOp(ref DocumentRef) Operation {
	return Operation{Kind: OpDelete, Collection: ref.Collection, ID: ref.ID}
}
