// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/utils"
	"github.com/MKhiriev/go-form-cache/models"
)

// ClientOptions tunes the cache engine.
type ClientOptions struct {
	FreshnessWindow time.Duration
	BatchLimit      int
	// RetryAttempts is the number of extra attempts of a failed write.
	RetryAttempts  int
	RetryBaseDelay time.Duration
	// Preload lists the collections loaded at start and by the sync job.
	Preload []string

	// Now and NewID are replaced in tests.
	Now   func() time.Time
	NewID func() string
}

// ClientOptionsFromConfig maps the client configuration onto engine options.
func ClientOptionsFromConfig(cfg config.ClientConfig) ClientOptions {
	return ClientOptions{
		FreshnessWindow: cfg.Cache.FreshnessWindow,
		BatchLimit:      cfg.Cache.BatchLimit,
		RetryAttempts:   cfg.Cache.RetryAttempts,
		RetryBaseDelay:  cfg.Cache.RetryBaseDelay,
		Preload:         cfg.Workers.Preload,
	}
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.FreshnessWindow <= 0 {
		o.FreshnessWindow = models.DefaultFreshnessWindow
	}
	if o.BatchLimit <= 0 || o.BatchLimit > models.DefaultBatchLimit {
		o.BatchLimit = models.DefaultBatchLimit
	}
	if o.RetryAttempts < 0 {
		o.RetryAttempts = 0
	}
	if o.RetryBaseDelay <= 0 {
		o.RetryBaseDelay = 100 * time.Millisecond
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewID == nil {
		o.NewID = utils.NewUUIDGenerator().Generate
	}
	return o
}
