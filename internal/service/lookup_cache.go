// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-dni-gateway/models"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dni_gateway_lookup_cache_hits_total",
		Help: "Lookups answered from the upstream cache.",
	})
	lookupCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dni_gateway_lookup_cache_misses_total",
		Help: "Lookups that had to query the upstream registry.",
	})
)

// LookupCache keeps raw upstream payloads for a limited time. It stores what
// the registry answered, before any filtering, so restriction and
// permission changes apply to cached answers too.
//
// A nil *LookupCache is valid and caches nothing.
type LookupCache struct {
	cache *expirable.LRU[string, models.PersonPayload]
}

// NewLookupCache creates a cache of at most size entries living ttl each.
// It returns nil (caching disabled) when size or ttl is not positive.
func NewLookupCache(size int, ttl time.Duration) *LookupCache {
	if size <= 0 || ttl <= 0 {
		return nil
	}
	return &LookupCache{cache: expirable.NewLRU[string, models.PersonPayload](size, nil, ttl)}
}

func (c *LookupCache) Get(key string) (models.PersonPayload, bool) {
	if c == nil {
		return models.PersonPayload{}, false
	}

	payload, ok := c.cache.Get(key)
	if ok {
		lookupCacheHitsTotal.Inc()
		return payload, true
	}
	lookupCacheMissesTotal.Inc()
	return models.PersonPayload{}, false
}

func (c *LookupCache) Set(key string, payload models.PersonPayload) {
	if c == nil {
		return
	}
	c.cache.Add(key, payload)
}

func (c *LookupCache) Len() int {
	if c == nil {
		return 0
	}
	return c.cache.Len()
}

func dniCacheKey(dni string) string {
	return "dni:" + dni
}

func nameCacheKey(query models.NameQuery) string {
	norm := func(s string) string { return strings.ToUpper(strings.Join(strings.Fields(s), " ")) }
	return "nombre:" + norm(query.Nombres) + "|" + norm(query.ApPat) + "|" + norm(query.ApMat)
}
