// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-form-cache/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DocumentService serves the collections of the document server.
type DocumentService interface {
	// Changes returns documents of collection changed after since (unix
	// millis). since == 0 returns the whole collection.
	Changes(ctx context.Context, collection string, since int64) ([]models.Record, error)
	Get(ctx context.Context, collection, id string) (models.Record, error)
	// Merge overlays r onto the stored document, creating it when absent.
	Merge(ctx context.Context, collection string, r models.Record) error
	Delete(ctx context.Context, collection, id string) error
	// Batch applies every operation in one transaction and returns how many
	// were committed.
	Batch(ctx context.Context, req models.BatchRequest) (int, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// CurrentUser resolves the token owner's profile. Callers without a
	// profile get a placeholder with the token's role.
	CurrentUser(ctx context.Context, token models.Token) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}
