// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT used between the cache client and the document server.
//
// The subject claim carries the user's e-mail; Role is a private claim used
// by the server to decide what a caller may read.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Role is the caller's role claim.
	Role string `json:"role,omitempty"`

	// SignedString is the compact JWS form.
	SignedString string `json:"-"`
}

// Email returns the subject claim.
func (t *Token) Email() string {
	sub, _ := t.GetSubject()
	return sub
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
