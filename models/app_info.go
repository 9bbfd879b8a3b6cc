// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AppInfo describes the running document server.
type AppInfo struct {
	Version   string    `json:"version"`
	StartedAt time.Time `json:"started_at"`
	// BatchLimit is the largest batch the server accepts.
	BatchLimit int `json:"batch_limit"`
}
