// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/handler"
	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/internal/server"
	"github.com/MKhiriev/go-form-cache/internal/service"
	"github.com/MKhiriev/go-form-cache/internal/store"
	"github.com/MKhiriev/go-form-cache/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("formcache-server")

	if args, ok := tokenArgs(os.Args[1:]); ok {
		if err := issueToken(args, log); err != nil {
			log.Fatal().Err(err).Msg("error issuing token")
		}
		return
	}

	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// tokenArgs returns the positional arguments following the "token" command.
func tokenArgs(args []string) ([]string, bool) {
	i := slices.Index(args, "token")
	if i < 0 {
		return nil, false
	}
	return args[i+1:], true
}

// issueToken prints a bearer token for "token <email> [role]".
func issueToken(args []string, log *logger.Logger) error {
	if len(args) == 0 {
		return errors.New("usage: token <email> [role]")
	}

	cfg, err := config.GetTokenConfig()
	if err != nil {
		return fmt.Errorf("get configs: %w", err)
	}

	user := models.User{Email: args[0]}
	if len(args) > 1 {
		user.Role = args[1]
	}

	token, err := service.NewAuthService(nil, cfg, log).CreateToken(context.Background(), user)
	if err != nil {
		return err
	}

	fmt.Println(token.String())
	return nil
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
