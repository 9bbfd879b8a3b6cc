// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
// Durations are written as Go duration strings ("5s", "1m").
type StructuredJSONConfig struct {
	ServerAddress   string    `json:"server_address"`
	DatabaseDSN     string    `json:"database_dsn"`
	TokenSignKey    string    `json:"token_sign_key"`
	TokenIssuer     string    `json:"token_issuer"`
	TokenDuration   *Duration `json:"token_duration"`
	RequestTimeout  *Duration `json:"request_timeout"`
	AdapterAddress  string    `json:"adapter_address"`
	AdapterToken    string    `json:"adapter_token"`
	SnapshotDriver  string    `json:"snapshot_driver"`
	SnapshotPath    string    `json:"snapshot_path"`
	FreshnessWindow *Duration `json:"freshness_window"`
	BatchLimit      int       `json:"batch_limit"`
	RetryAttempts   int       `json:"retry_attempts"`
	RetryBaseDelay  *Duration `json:"retry_base_delay"`
	SyncInterval    *Duration `json:"sync_interval"`
	Preload         []string  `json:"preload"`
	LogFile         string    `json:"log_file"`
	LogMaxSizeMB    int       `json:"log_max_size_mb"`
	LogMaxBackups   int       `json:"log_max_backups"`
}

// Duration wraps [time.Duration] with JSON string (un)marshalling.
type Duration struct {
	time.Duration
}

// UnmarshalJSON parses values like "5s" or "250ms".
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config %s: %w", path, err)
	}

	var raw StructuredJSONConfig
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error parsing json config %s: %w", path, err)
	}

	return raw.toStructured(), nil
}

func (j StructuredJSONConfig) toStructured() *StructuredConfig {
	timeout := durationOrZero(j.RequestTimeout)
	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.TokenSignKey,
			TokenIssuer:   j.TokenIssuer,
			TokenDuration: durationOrZero(j.TokenDuration),
		},
		Storage: Storage{
			DB:       DB{DSN: j.DatabaseDSN},
			Snapshot: Snapshot{Driver: j.SnapshotDriver, Path: j.SnapshotPath},
		},
		Server: Server{
			HTTPAddress:    j.ServerAddress,
			RequestTimeout: timeout,
		},
		Adapter: Adapter{
			HTTPAddress:    j.AdapterAddress,
			RequestTimeout: timeout,
			Token:          j.AdapterToken,
		},
		Cache: Cache{
			FreshnessWindow: durationOrZero(j.FreshnessWindow),
			BatchLimit:      j.BatchLimit,
			RetryAttempts:   j.RetryAttempts,
			RetryBaseDelay:  durationOrZero(j.RetryBaseDelay),
		},
		Workers: Workers{
			SyncInterval: durationOrZero(j.SyncInterval),
			Preload:      j.Preload,
		},
		Log: Log{
			File:       j.LogFile,
			MaxSizeMB:  j.LogMaxSizeMB,
			MaxBackups: j.LogMaxBackups,
		},
	}
}
