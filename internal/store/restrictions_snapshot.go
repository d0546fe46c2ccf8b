// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/go-dni-gateway/models"
)

// SnapshotRestrictionStore serves an in-memory copy of a
// [RestrictionLoader] and refreshes it on [SnapshotRestrictionStore.Reload].
// It is safe for concurrent use.
type SnapshotRestrictionStore struct {
	source  RestrictionLoader
	current atomic.Pointer[models.RestrictionSet]
}

// NewSnapshotRestrictionStore loads source once and returns a store serving
// that snapshot.
func NewSnapshotRestrictionStore(ctx context.Context, source RestrictionLoader) (*SnapshotRestrictionStore, error) {
	s := &SnapshotRestrictionStore{source: source}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SnapshotRestrictionStore) Restricted(ctx context.Context) (models.RestrictionSet, error) {
	if set := s.current.Load(); set != nil {
		return *set, nil
	}
	return models.NewRestrictionSet(), nil
}

// Reload replaces the snapshot with the current content of the source.
// The previous snapshot is kept when the source fails.
func (s *SnapshotRestrictionStore) Reload(ctx context.Context) error {
	set, err := s.source.Load(ctx)
	if err != nil {
		return err
	}

	s.current.Store(&set)
	return nil
}
