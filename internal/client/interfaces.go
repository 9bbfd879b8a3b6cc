// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle of the interactive client.
type Client interface {
	// Run preloads the cache, starts background sync and blocks in the UI
	// until the user quits.
	Run(ctx context.Context) error

	// Close flushes and releases the snapshot store.
	Close() error
}
