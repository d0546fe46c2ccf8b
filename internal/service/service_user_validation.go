// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dni-gateway/internal/validators"
	"github.com/MKhiriev/go-dni-gateway/models"
)

// UserValidationService validates administration requests before they reach
// the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before creating: %w", err)
	}
	return v.inner.CreateUser(ctx, request)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, username string, patch models.UpdateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before updating: %w", err)
	}
	return v.inner.UpdateUser(ctx, username, patch)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, actor, username string) error {
	return v.inner.DeleteUser(ctx, actor, username)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}
