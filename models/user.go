// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Roles known to the preload logic.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// UsersCollection holds the application user profiles.
const UsersCollection = "users"

// User is the identity of the signed-in person as supplied by the identity
// provider, joined with the profile found in [UsersCollection].
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// IsAdmin reports whether the user may see every profile.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserFromRecord reads a profile record of [UsersCollection]. Credential
// fields are never copied.
func UserFromRecord(r Record) User {
	u := User{ID: r.ID}
	u.Email, _ = r.Fields["email"].(string)
	u.Username, _ = r.Fields["username"].(string)
	u.Role, _ = r.Fields["role"].(string)
	return u
}
