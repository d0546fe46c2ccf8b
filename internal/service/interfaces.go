// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the gateway: the single
// session gate, user administration and the lookup pipeline.
package service

import (
	"context"

	"github.com/MKhiriev/go-dni-gateway/models"
)

// AuthService issues, checks and closes sessions. Only the most recently
// issued token of a user is ever accepted.
type AuthService interface {
	// Login checks the credentials, issues a new token and makes it the
	// user's only active session.
	Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error)

	// Logout closes the user's session.
	Logout(ctx context.Context, username string) error

	// Authenticate resolves a bearer token to its user. Every failure is
	// reported as [ErrInvalidSession].
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// UserService administers accounts.
type UserService interface {
	CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies the non-nil fields of patch to the account named
	// username.
	UpdateUser(ctx context.Context, username string, patch models.UpdateUserRequest) (models.User, error)

	// DeleteUser removes username on behalf of actor. Actors cannot delete
	// themselves.
	DeleteUser(ctx context.Context, actor, username string) error
}

// LookupService queries the person registry on behalf of user and returns
// only what that user may see.
type LookupService interface {
	LookupByDNI(ctx context.Context, user models.User, dni string) (models.ProjectedPayload, error)
	LookupByName(ctx context.Context, user models.User, query models.NameQuery) (models.ProjectedPayload, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// LookupServiceWrapper defines middleware composition for LookupService.
type LookupServiceWrapper interface {
	Wrap(LookupService) LookupService
}
