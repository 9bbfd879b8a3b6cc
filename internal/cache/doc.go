// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache implements the in-memory document cache: per collection an
// ordered list of records plus a "last synced" watermark.
//
// The store does no I/O. Read-modify-write sequences spanning several calls
// (read list, merge a delta, replace list) must be wrapped in [Store.Lock]
// for the collection involved; single calls are safe on their own.
package cache
