// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dni-gateway/internal/validators"
	"github.com/MKhiriev/go-dni-gateway/models"
)

// LookupValidationService rejects malformed queries before the wrapped
// LookupService reaches the registry.
type LookupValidationService struct {
	inner     LookupService
	validator validators.Validator
}

func NewLookupValidationService() LookupServiceWrapper {
	return &LookupValidationService{
		validator: validators.NewLookupValidator(),
	}
}

func (v *LookupValidationService) LookupByDNI(ctx context.Context, user models.User, dni string) (models.ProjectedPayload, error) {
	if err := v.validator.Validate(ctx, models.DNIQuery{DNI: strings.TrimSpace(dni)}); err != nil {
		return models.ProjectedPayload{}, fmt.Errorf("error during lookup validation: %w", err)
	}
	return v.inner.LookupByDNI(ctx, user, dni)
}

func (v *LookupValidationService) LookupByName(ctx context.Context, user models.User, query models.NameQuery) (models.ProjectedPayload, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.ProjectedPayload{}, fmt.Errorf("error during lookup validation: %w", err)
	}
	return v.inner.LookupByName(ctx, user, query)
}

func (v *LookupValidationService) Wrap(inner LookupService) LookupService {
	v.inner = inner
	return v
}
