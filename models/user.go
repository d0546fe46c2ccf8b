// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// User is an account allowed to query the lookup gateway.
// The JSON tags describe the on-disk users document, so they keep the
// camelCase names the dashboard has always written.
type User struct {
	// Username is the unique, normalized (trimmed, lower-cased) identifier.
	Username string `json:"username"`

	// Nombre and Apellido are the display first and last name.
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`

	// PasswordHash is a bcrypt hash of the user's password.
	// Older documents may still hold a plaintext value here; it is
	// re-hashed on the next successful login.
	PasswordHash string `json:"passwordHash"`

	// AllowedFields lists the person attributes this user may see.
	AllowedFields []PersonField `json:"allowedFields"`

	Role Role `json:"role"`

	// ActiveToken is the only session token currently accepted for this
	// user. Nil means no open session.
	ActiveToken *string `json:"activeToken"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Public returns the representation of the user that is safe to send to
// clients: no password hash and no session token.
func (u User) Public() PublicUser {
	fields := u.AllowedFields
	if fields == nil {
		fields = []PersonField{}
	}

	return PublicUser{
		Username:      u.Username,
		Nombre:        u.Nombre,
		Apellido:      u.Apellido,
		AllowedFields: fields,
		Role:          u.Role,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// PublicUser is the client-facing view of a [User].
type PublicUser struct {
	Username      string        `json:"username"`
	Nombre        string        `json:"nombre"`
	Apellido      string        `json:"apellido"`
	AllowedFields []PersonField `json:"allowedFields"`
	Role          Role          `json:"role"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// NormalizeUsername trims surrounding whitespace and lower-cases v.
// Every username comparison in the application goes through it.
func NormalizeUsername(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
