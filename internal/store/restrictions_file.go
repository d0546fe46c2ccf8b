// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/models"
)

// FileRestrictionStore reads the restricted DNI list from a JSON array on
// every call, so edits to the file apply to the next lookup.
type FileRestrictionStore struct {
	path   string
	logger *logger.Logger
}

// NewFileRestrictionStore constructs a store backed by the JSON array at
// path. The file is created empty when missing.
func NewFileRestrictionStore(path string, logger *logger.Logger) (*FileRestrictionStore, error) {
	if err := ensureJSONArrayFile(path); err != nil {
		return nil, err
	}

	return &FileRestrictionStore{path: path, logger: logger}, nil
}

// Restricted returns the DNIs listed in the file. Non-string entries are
// skipped. An unreadable or malformed file is logged and yields the empty
// set, so lookups keep working while the list is being edited.
func (s *FileRestrictionStore) Restricted(ctx context.Context) (models.RestrictionSet, error) {
	set, err := s.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("path", s.path).Msg("error reading restrictions, using empty list")
		return models.NewRestrictionSet(), nil
	}

	return set, nil
}

// Load returns the DNIs listed in the file, or [ErrReadingDocument] when the
// file cannot be read or parsed.
func (s *FileRestrictionStore) Load(_ context.Context) (models.RestrictionSet, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	var entries []any
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	dnis := make([]string, 0, len(entries))
	for _, e := range entries {
		if dni, ok := e.(string); ok {
			dnis = append(dnis, dni)
		}
	}

	return models.NewRestrictionSet(dnis...), nil
}
