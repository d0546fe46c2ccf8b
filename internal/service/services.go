// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-dni-gateway/internal/adapter"
	"github.com/MKhiriev/go-dni-gateway/internal/config"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/store"
	"github.com/MKhiriev/go-dni-gateway/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	LookupService  LookupService
	AppInfoService AppInfoService
}

// NewServices wires every service on top of storages and the upstream
// adapter. Validation wrappers are applied to the user and lookup services.
func NewServices(storages *store.Storages, lookup adapter.PersonLookup, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	userService := NewUserService(storages.UserRepository, storages.SessionStore, cfg.App, logger)
	lookupService := NewLookupService(lookup, storages.RestrictionStore, NewLookupCache(cfg.Adapter.CacheSize, cfg.Adapter.CacheTTL), logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.SessionStore, cfg.App, logger),
		UserService:    NewUserValidationService().Wrap(userService),
		LookupService:  NewLookupValidationService().Wrap(lookupService),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
