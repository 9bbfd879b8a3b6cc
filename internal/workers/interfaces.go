// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the client's background jobs as one unit.
package workers

import "context"

// Worker is a background job. Run must not block: implementations start
// their own goroutines and Stop waits for them to exit.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
