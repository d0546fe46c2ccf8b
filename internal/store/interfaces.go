// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer of the gateway: user accounts,
// session tokens and the restricted-DNI list.
//
// Every backend hides behind a narrow interface so the service layer does
// not know whether users live in a JSON document or a SQL table, or whether
// the active session token is kept on the user record or in Redis.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dni-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Usernames are compared after
// [models.NormalizeUsername].
type UserRepository interface {
	// ListUsers returns every account in storage order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// FindUserByUsername returns [ErrUserNotFound] when no account matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// CreateUser stores a new account. [ErrUserAlreadyExists] is returned on
	// a duplicate username.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser replaces the account currently named username with user.
	// user.Username may differ from username (rename); renaming onto an
	// existing account yields [ErrUserAlreadyExists].
	UpdateUser(ctx context.Context, username string, user models.User) (models.User, error)

	// DeleteUser removes the account or returns [ErrUserNotFound].
	DeleteUser(ctx context.Context, username string) error

	// SetActiveToken stores token as the single accepted session token of
	// username. A nil token closes the session.
	SetActiveToken(ctx context.Context, username string, token *string) error
}

// SessionStore keeps the single active session token of every user.
type SessionStore interface {
	// Get returns the active token or [ErrSessionNotFound].
	Get(ctx context.Context, username string) (string, error)

	// Set replaces the active token. ttl bounds how long backends that
	// support expiry keep it.
	Set(ctx context.Context, username, token string, ttl time.Duration) error

	// Clear closes the session. Clearing a missing session is not an error.
	Clear(ctx context.Context, username string) error
}

// RestrictionStore provides the current set of restricted DNIs.
type RestrictionStore interface {
	Restricted(ctx context.Context) (models.RestrictionSet, error)
}

// RestrictionLoader reads the restriction list from its source and reports
// read or parse failures instead of hiding them.
type RestrictionLoader interface {
	Load(ctx context.Context) (models.RestrictionSet, error)
}

// Reloader is implemented by stores that cache their source and can be
// refreshed in the background.
type Reloader interface {
	Reload(ctx context.Context) error
}
