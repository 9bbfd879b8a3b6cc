// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-form-cache/internal/client"
	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("formcache-client", logger.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	version := buildVersion
	if version == "" {
		version = cfg.App.Version
	}

	if err = run(cfg, version, log); err != nil {
		log.Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, version string, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, version, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Err(err).Msg("error closing client app")
		}
	}()

	return app.Run(ctx)
}

func printBuildInfo() {
	fmt.Printf("Build version: %s\n", valueOrNA(buildVersion))
	fmt.Printf("Build date: %s\n", valueOrNA(buildDate))
	fmt.Printf("Build commit: %s\n", valueOrNA(buildCommit))
}

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
