// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-form-cache/models"
)

const (
	maxBatchLimit         = models.DefaultBatchLimit
	defaultRequestTimeout = 15 * time.Second
	defaultTokenIssuer    = "formcache"
	defaultTokenDuration  = 24 * time.Hour
	defaultAppVersion     = "dev"
	defaultSnapshotDriver = "file"
	defaultSnapshotPath   = "formcache.snapshot.json"
	defaultRetryAttempts  = 2
	defaultRetryDelay     = 200 * time.Millisecond
	defaultSyncInterval   = time.Minute
)

var defaultPreload = []string{"questionnaires", "forms", "answers"}

// ClientConfig is the subset of the configuration the cache client needs,
// with defaults applied.
type ClientConfig struct {
	App     App
	Adapter Adapter
	Storage Storage
	Cache   Cache
	Workers Workers
	Log     Log
}

// GetClientConfig loads the structured config and returns the client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}
	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	c := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
		Storage: Storage{Snapshot: cfg.Storage.Snapshot},
		Cache:   cfg.Cache,
		Workers: cfg.Workers,
		Log:     cfg.Log,
	}
	c.applyDefaults()

	return c, c.validate()
}

func (c *ClientConfig) applyDefaults() {
	if c.Adapter.RequestTimeout == 0 {
		c.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if c.Storage.Snapshot.Driver == "" {
		c.Storage.Snapshot.Driver = defaultSnapshotDriver
	}
	if c.Storage.Snapshot.Path == "" {
		c.Storage.Snapshot.Path = defaultSnapshotPath
	}
	if c.Cache.FreshnessWindow == 0 {
		c.Cache.FreshnessWindow = models.DefaultFreshnessWindow
	}
	if c.Cache.BatchLimit == 0 {
		c.Cache.BatchLimit = models.DefaultBatchLimit
	}
	if c.Cache.RetryAttempts == 0 {
		c.Cache.RetryAttempts = defaultRetryAttempts
	}
	if c.Cache.RetryBaseDelay == 0 {
		c.Cache.RetryBaseDelay = defaultRetryDelay
	}
	if c.Workers.SyncInterval == 0 {
		c.Workers.SyncInterval = defaultSyncInterval
	}
	if len(c.Workers.Preload) == 0 {
		c.Workers.Preload = defaultPreload
	}
}
