// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`
	// Storage holds the server database and the client snapshot settings.
	Storage Storage `envPrefix:"STORAGE_"`
	// Server holds the document server listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`
	// Adapter holds the client's view of the document server.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// Cache holds the sync engine tuning knobs.
	Cache Cache `envPrefix:"CACHE_"`
	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`
	// Log holds client log file settings.
	Log Log `envPrefix:"LOG_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
	// Version of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the document server database connection settings.
	DB DB `envPrefix:"DB_"`
	// Snapshot holds where the client persists its cache.
	Snapshot Snapshot `envPrefix:"SNAPSHOT_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Snapshot selects the persistence medium of the client cache.
type Snapshot struct {
	// Driver is one of "file", "sqlite", "bolt" or "memory".
	// Env: STORAGE_SNAPSHOT_DRIVER
	Driver string `env:"DRIVER"`
	// Path is the file the driver writes to.
	// Env: STORAGE_SNAPSHOT_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings of the document server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client transport settings.
type Adapter struct {
	// HTTPAddress is the document server address.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// Token is the bearer token issued by the identity provider.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Cache holds the sync engine tuning knobs.
type Cache struct {
	// FreshnessWindow is how long a synced collection is served from memory.
	// Env: CACHE_FRESHNESS_WINDOW
	FreshnessWindow time.Duration `env:"FRESHNESS_WINDOW"`
	// BatchLimit is the maximum number of operations per batched commit.
	// Env: CACHE_BATCH_LIMIT
	BatchLimit int `env:"BATCH_LIMIT"`
	// RetryAttempts is how many times a failed write is retried.
	// Env: CACHE_RETRY_ATTEMPTS
	RetryAttempts int `env:"RETRY_ATTEMPTS"`
	// RetryBaseDelay is the first backoff delay between write retries.
	// Env: CACHE_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often preloaded collections are re-read.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
	// Preload lists the collections loaded at start and by the sync job.
	// Env: WORKERS_PRELOAD (comma separated)
	Preload []string `env:"PRELOAD" envSeparator:","`
}

// Log holds the client log file settings.
type Log struct {
	// File is the path of the client log file.
	// Env: LOG_FILE
	File string `env:"FILE"`
	// MaxSizeMB is the rotation threshold.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
	// MaxBackups is how many rotated files are kept.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// GetServerConfig loads the structured config and checks the settings the
// document server cannot start without.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	cfg.App.applyTokenDefaults()
	if cfg.App.Version == "" {
		cfg.App.Version = defaultAppVersion
	}
	return cfg, cfg.validateServer()
}

// GetTokenConfig returns the app settings needed to sign a token offline.
func GetTokenConfig() (App, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return App{}, err
	}
	cfg.App.applyTokenDefaults()
	if cfg.App.TokenSignKey == "" {
		return App{}, fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}
	return cfg.App, nil
}

func (a *App) applyTokenDefaults() {
	if a.TokenIssuer == "" {
		a.TokenIssuer = defaultTokenIssuer
	}
	if a.TokenDuration == 0 {
		a.TokenDuration = defaultTokenDuration
	}
}
