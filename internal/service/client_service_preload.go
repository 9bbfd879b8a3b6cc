// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-cache/internal/adapter"
	"github.com/MKhiriev/go-form-cache/models"
	"golang.org/x/sync/errgroup"
)

// preloadConcurrency bounds the collections fetched at the same time.
const preloadConcurrency = 4

type clientPreloadService struct {
	*cacheCore
	identity adapter.IdentityProvider
	reader   ClientSyncService
}

func newClientPreloadService(core *cacheCore, identity adapter.IdentityProvider, reader ClientSyncService) ClientPreloadService {
	return &clientPreloadService{cacheCore: core, identity: identity, reader: reader}
}

func (s *clientPreloadService) Preload(ctx context.Context, collections []string) (models.User, error) {
	identity, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("resolve current user: %w", err)
	}

	users := s.reader.GetAll(ctx, models.UsersCollection, true)
	user, profile, found := findUser(users, identity.Email)
	switch {
	case !found:
		s.logger.Warn().Str("email", identity.Email).Msg("user has no profile, treating as regular user")
		user = placeholderUser(identity)
		s.restrictUsers(ctx, nil)
	case !user.IsAdmin():
		s.logger.Debug().Str("email", identity.Email).Msg("user is not an admin, keeping own profile only")
		s.restrictUsers(ctx, &profile)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadConcurrency)
	for _, collection := range collections {
		if collection == models.UsersCollection || collection == models.DeletedCollection {
			continue
		}
		g.Go(func() error {
			records := s.reader.GetAll(gctx, collection, false)
			s.logger.Debug().Str("collection", collection).Int("count", len(records)).Msg("collection preloaded")
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return user, fmt.Errorf("preload collections: %w", err)
	}

	deleted := s.reader.GetAll(ctx, models.DeletedCollection, false)
	s.logger.Info().
		Str("email", user.Email).
		Str("role", user.Role).
		Int("deleted", len(deleted)).
		Msg("cache preloaded")
	return user, nil
}

// restrictUsers narrows the cached users list to own, or empties it.
func (s *clientPreloadService) restrictUsers(ctx context.Context, own *models.Record) {
	unlock := s.lock(models.UsersCollection)
	records := []models.Record{}
	if own != nil {
		records = append(records, *own)
	}
	s.cache.Replace(models.UsersCollection, records)
	unlock()

	s.saveSnapshot(ctx)
}

func findUser(users []models.Record, email string) (models.User, models.Record, bool) {
	for _, r := range users {
		u := models.UserFromRecord(r)
		if email != "" && strings.EqualFold(u.Email, email) {
			return u, r, true
		}
	}
	return models.User{}, models.Record{}, false
}

func placeholderUser(identity models.User) models.User {
	return models.User{
		ID:       identity.ID,
		Email:    identity.Email,
		Username: identity.Email,
		Role:     models.RoleUser,
	}
}
