// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the cache client: snapshot store, remote adapter,
// sync engine, background sync and the recycle bin UI.
package client
