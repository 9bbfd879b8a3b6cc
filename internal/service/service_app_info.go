// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/models"
)

type appInfoService struct {
	appVersion string
	batchLimit int
	startedAt  time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, batchLimit int, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if batchLimit <= 0 || batchLimit > models.DefaultBatchLimit {
		batchLimit = models.DefaultBatchLimit
	}

	return &appInfoService{
		appVersion: cfg.Version,
		batchLimit: batchLimit,
		startedAt:  time.Now().UTC(),
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Version:    s.appVersion,
		StartedAt:  s.startedAt,
		BatchLimit: s.batchLimit,
	}
}
