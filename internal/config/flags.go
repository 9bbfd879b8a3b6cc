// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseFlags reads command-line flags into a partially populated
// [StructuredConfig]. A fresh [flag.FlagSet] is used per call so the
// function can be invoked more than once in a process.
//
// Supported flags:
//
//	-a            HTTP server listen address (host:port)
//	-d            PostgreSQL DSN
//	-k            JWT token sign key
//	-s            document server address used by the client
//	-t            client bearer token
//	-snapshot     snapshot driver (file|sqlite|bolt|memory)
//	-snapshot-path snapshot file path
//	-batch        batch limit per commit
//	-fresh        freshness window
//	-sync         background sync interval
//	-preload      comma separated collections to preload
//	-log          client log file
//	-c / -config  path to a JSON configuration file
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	fs := flag.NewFlagSet("formcache", flag.ContinueOnError)

	serverAddr := new(NetAddress)
	adapterAddr := new(NetAddress)
	fs.Var(serverAddr, "a", "Net address host:port")
	fs.Var(adapterAddr, "s", "Document server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.App.TokenSignKey, "k", "", "Token sign key")
	fs.StringVar(&cfg.Adapter.Token, "t", "", "Bearer token")
	fs.StringVar(&cfg.Storage.Snapshot.Driver, "snapshot", "", "Snapshot driver: file, sqlite, bolt or memory")
	fs.StringVar(&cfg.Storage.Snapshot.Path, "snapshot-path", "", "Snapshot file path")
	fs.IntVar(&cfg.Cache.BatchLimit, "batch", 0, "Operations per batched commit")
	fs.DurationVar(&cfg.Cache.FreshnessWindow, "fresh", 0, "Freshness window")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync", 0, "Background sync interval")
	fs.StringVar(&cfg.Log.File, "log", "", "Client log file")
	preload := fs.String("preload", "", "Comma separated collections to preload")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "Path to JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "Path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if serverAddr.Host != "" || serverAddr.Port != 0 {
		cfg.Server.HTTPAddress = serverAddr.String()
	}
	if adapterAddr.Host != "" || adapterAddr.Port != 0 {
		cfg.Adapter.HTTPAddress = adapterAddr.String()
	}
	if *preload != "" {
		cfg.Workers.Preload = splitList(*preload)
	}

	return cfg, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// NetAddress is a [flag.Value] implementation for "host:port" network
// addresses.
type NetAddress struct {
	Host string
	Port int
}

func (a *NetAddress) String() string {
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses s as "host:port" and stores the result in a.
func (a *NetAddress) Set(s string) error {
	hp := strings.Split(s, ":")
	if len(hp) != 2 {
		return errors.New("need address in a form host:port")
	}
	port, err := strconv.Atoi(hp[1])
	if err != nil {
		return err
	}
	a.Host = hp[0]
	a.Port = port
	return nil
}

var _ flag.Value = (*NetAddress)(nil)

// durationOrZero is used by json parsing when a field is absent.
func durationOrZero(d *Duration) time.Duration {
	if d == nil {
		return 0
	}
	return d.Duration
}
