// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-cache/internal/config"
	"github.com/MKhiriev/go-form-cache/internal/logger"
	"github.com/MKhiriev/go-form-cache/internal/store"
	"github.com/MKhiriev/go-form-cache/internal/utils"
	"github.com/MKhiriev/go-form-cache/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// Identity itself lives outside the document server: callers arrive with a
// JWT whose subject is their e-mail, and their profile is looked up in the
// users collection.
type authService struct {
	// userRepository resolves profiles stored in the users collection.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, the e-mail as subject and the role as a
// private claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if user.Email == "" {
		return models.Token{}, ErrInvalidDataProvided
	}

	role := user.Role
	if role == "" {
		role = models.RoleUser
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens yield ErrTokenIsExpired; any other validation failure
// (signature, issuer, malformed, empty subject) yields ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// CurrentUser returns the profile matching the token subject. The role stored
// in the profile wins over the token claim. Callers without a profile get a
// placeholder carrying the token's role, or "user" when it has none.
func (a *authService) CurrentUser(ctx context.Context, token models.Token) (models.User, error) {
	log := logger.FromContext(ctx)
	email := token.Email()

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("email", email).Msg("no profile for token subject, using placeholder")
		role := token.Role
		if role == "" {
			role = models.RoleUser
		}
		return models.User{Email: email, Username: email, Role: role}, nil
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	return user, nil
}
