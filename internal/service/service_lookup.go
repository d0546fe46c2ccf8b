// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dni-gateway/internal/adapter"
	"github.com/MKhiriev/go-dni-gateway/internal/filter"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/store"
	"github.com/MKhiriev/go-dni-gateway/models"
)

// lookupService fetches a payload (from the cache or the registry), redacts
// restricted people and projects every record to the caller's allow-list.
// Redaction always runs before projection.
type lookupService struct {
	upstream     adapter.PersonLookup
	restrictions store.RestrictionStore
	cache        *LookupCache

	logger *logger.Logger
}

// NewLookupService constructs the lookup pipeline. cache may be nil.
func NewLookupService(upstream adapter.PersonLookup, restrictions store.RestrictionStore, cache *LookupCache, logger *logger.Logger) LookupService {
	return &lookupService{
		upstream:     upstream,
		restrictions: restrictions,
		cache:        cache,
		logger:       logger,
	}
}

func (s *lookupService) LookupByDNI(ctx context.Context, user models.User, dni string) (models.ProjectedPayload, error) {
	dni = strings.TrimSpace(dni)
	return s.lookup(ctx, user, dniCacheKey(dni), func(ctx context.Context) (models.PersonPayload, error) {
		return s.upstream.LookupByDNI(ctx, dni)
	})
}

func (s *lookupService) LookupByName(ctx context.Context, user models.User, query models.NameQuery) (models.ProjectedPayload, error) {
	query = models.NameQuery{
		Nombres: strings.TrimSpace(query.Nombres),
		ApPat:   strings.TrimSpace(query.ApPat),
		ApMat:   strings.TrimSpace(query.ApMat),
	}
	return s.lookup(ctx, user, nameCacheKey(query), func(ctx context.Context) (models.PersonPayload, error) {
		return s.upstream.LookupByName(ctx, query)
	})
}

func (s *lookupService) lookup(ctx context.Context, user models.User, key string, fetch func(context.Context) (models.PersonPayload, error)) (models.ProjectedPayload, error) {
	log := logger.FromContext(ctx)

	restricted, err := s.restrictions.Restricted(ctx)
	if err != nil {
		log.Err(err).Msg("error loading restrictions")
		return models.ProjectedPayload{}, fmt.Errorf("error loading restrictions: %w", err)
	}

	payload, ok := s.cache.Get(key)
	if !ok {
		payload, err = fetch(ctx)
		if err != nil {
			log.Err(err).Str("username", user.Username).Msg("upstream lookup failed")
			return models.ProjectedPayload{}, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		s.cache.Set(key, payload)
	}

	result := filter.Project(filter.Redact(payload, restricted), user.AllowedFields)

	log.Info().
		Str("username", user.Username).
		Int("records", len(result.Records)).
		Bool("cached", ok).
		Msg("lookup served")
	return result, nil
}
