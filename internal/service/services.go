// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/internal/store"
)

type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, cfg.Cache.BatchLimit, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	documents := NewDocumentService(storages.DocumentRepository, storages.IsRetryable, cfg.Cache, logger)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		DocumentService: NewDocumentValidationService(cfg.Cache.BatchLimit).Wrap(documents),
		AppInfoService:  appInfo,
	}, nil
}
