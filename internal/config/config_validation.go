// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"
)

// SnapshotDrivers lists the accepted values of Storage.Snapshot.Driver.
var SnapshotDrivers = []string{"file", "sqlite", "bolt", "memory"}

// validate checks cross-source invariants that hold for both binaries.
// Required fields are checked later by the binary-specific views.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Cache.BatchLimit < 0 || cfg.Cache.BatchLimit > maxBatchLimit {
		errs = append(errs, fmt.Errorf("%w: batch limit must be within 1..%d, got %d",
			ErrInvalidCacheConfigs, maxBatchLimit, cfg.Cache.BatchLimit))
	}
	if cfg.Cache.FreshnessWindow < 0 {
		errs = append(errs, fmt.Errorf("%w: negative freshness window", ErrInvalidCacheConfigs))
	}
	if cfg.Cache.RetryAttempts < 0 {
		errs = append(errs, fmt.Errorf("%w: negative retry attempts", ErrInvalidCacheConfigs))
	}
	if d := cfg.Storage.Snapshot.Driver; d != "" && !slices.Contains(SnapshotDrivers, d) {
		errs = append(errs, fmt.Errorf("%w: unknown snapshot driver %q", ErrInvalidStorageConfigs, d))
	}

	return errors.Join(errs...)
}

func (cfg *StructuredConfig) validateServer() error {
	var errs []error

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs))
	}
	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs))
	}

	return errors.Join(errs...)
}

func (c *ClientConfig) validate() error {
	var errs []error

	if c.Adapter.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: empty document server address", ErrInvalidAdapterConfigs))
	}
	if c.Cache.BatchLimit < 1 || c.Cache.BatchLimit > maxBatchLimit {
		errs = append(errs, fmt.Errorf("%w: batch limit must be within 1..%d", ErrInvalidCacheConfigs, maxBatchLimit))
	}
	if !slices.Contains(SnapshotDrivers, c.Storage.Snapshot.Driver) {
		errs = append(errs, fmt.Errorf("%w: unknown snapshot driver %q", ErrInvalidStorageConfigs, c.Storage.Snapshot.Driver))
	}
	if c.Storage.Snapshot.Driver != "memory" && c.Storage.Snapshot.Path == "" {
		errs = append(errs, fmt.Errorf("%w: empty snapshot path", ErrInvalidStorageConfigs))
	}

	return errors.Join(errs...)
}
