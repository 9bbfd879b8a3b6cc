// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-form-cache/internal/adapter"
	"github.com/MKhiriev/go-form-cache/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func profile(id, email, role string) models.Record {
	return models.Record{ID: id, Fields: map[string]any{
		"email":    email,
		"username": id,
		"role":     role,
	}}
}

func newPreload(e *engine) ClientPreloadService {
	return newClientPreloadService(e.core, e.identity, e.sync)
}

func TestClientPreloadService_Preload(t *testing.T) {
	users := []models.Record{
		profile("ann", "ann@example.com", models.RoleAdmin),
		profile("bob", "bob@example.com", models.RoleUser),
		profile("eve", "eve@example.com", "manager"),
	}

	tests := []struct {
		name      string
		email     string
		wantRole  string
		wantID    string
		wantUsers []string
	}{
		{
			name:      "admin keeps every profile",
			email:     "ann@example.com",
			wantRole:  models.RoleAdmin,
			wantID:    "ann",
			wantUsers: []string{"ann", "bob", "eve"},
		},
		{
			name:      "regular user sees own profile only",
			email:     "bob@example.com",
			wantRole:  models.RoleUser,
			wantID:    "bob",
			wantUsers: []string{"bob"},
		},
		{
			name:      "email match ignores case",
			email:     "EVE@example.com",
			wantRole:  "manager",
			wantID:    "eve",
			wantUsers: []string{"eve"},
		},
		{
			name:      "unknown user becomes a placeholder",
			email:     "zed@example.com",
			wantRole:  models.RoleUser,
			wantID:    "uid-zed",
			wantUsers: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t)
			e.core.cache.UpsertOne(models.DeletedCollection, tombstone("old", "forms"))

			e.identity.EXPECT().CurrentUser(gomock.Any()).Return(models.User{ID: "uid-zed", Email: tt.email}, nil)
			e.remote.EXPECT().QueryAll(gomock.Any(), models.UsersCollection).Return(users, nil)
			e.remote.EXPECT().QueryAll(gomock.Any(), "forms").Return([]models.Record{doc("f1", "F")}, nil)
			e.remote.EXPECT().QueryAll(gomock.Any(), "answers").Return([]models.Record{doc("a1", "A")}, nil)

			user, err := newPreload(e).Preload(context.Background(), []string{"forms", "answers", models.UsersCollection, models.DeletedCollection})

			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, user.Role)
			if tt.wantID == "uid-zed" {
				assert.Equal(t, tt.email, user.Username)
			}
			assert.Equal(t, tt.wantUsers, ids(e.cached(models.UsersCollection)))
			assert.Equal(t, []string{"f1"}, ids(e.cached("forms")))
			assert.Equal(t, []string{"a1"}, ids(e.cached("answers")))
			assert.Equal(t, []string{"old"}, ids(e.cached(models.DeletedCollection)))

			snap := e.savedSnapshot(t)
			require.NotNil(t, snap)
			assert.Len(t, snap.Collections[models.UsersCollection].Records, len(tt.wantUsers))
		})
	}
}

func TestClientPreloadService_Preload_UsersAlwaysForced(t *testing.T) {
	e := newEngine(t)

	e.identity.EXPECT().CurrentUser(gomock.Any()).Return(models.User{Email: "ann@example.com"}, nil).Times(2)
	e.remote.EXPECT().QueryAll(gomock.Any(), models.UsersCollection).
		Return([]models.Record{profile("ann", "ann@example.com", models.RoleAdmin)}, nil).Times(2)

	svc := newPreload(e)
	_, err := svc.Preload(context.Background(), nil)
	require.NoError(t, err)
	_, err = svc.Preload(context.Background(), nil)
	require.NoError(t, err)
}

func TestClientPreloadService_Preload_IdentityFailure(t *testing.T) {
	e := newEngine(t)

	e.identity.EXPECT().CurrentUser(gomock.Any()).Return(models.User{}, adapter.ErrUnauthorized)

	_, err := newPreload(e).Preload(context.Background(), []string{"forms"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientPreloadService_Preload_UnreachableRemote(t *testing.T) {
	e := newEngine(t)

	e.identity.EXPECT().CurrentUser(gomock.Any()).Return(models.User{Email: "ann@example.com"}, nil)
	e.remote.EXPECT().QueryAll(gomock.Any(), models.UsersCollection).Return(nil, adapter.ErrTransport)
	e.remote.EXPECT().QueryAll(gomock.Any(), "forms").Return(nil, adapter.ErrTransport)

	user, err := newPreload(e).Preload(context.Background(), []string{"forms"})

	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Empty(t, e.cached("forms"))
}
