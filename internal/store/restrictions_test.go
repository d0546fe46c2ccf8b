// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRestrictionStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "r.json")

	s, err := NewFileRestrictionStore(path, logger.Nop())
	require.NoError(t, err)

	set, err := s.Restricted(ctx)
	require.NoError(t, err)
	assert.Empty(t, set)

	require.NoError(t, os.WriteFile(path, []byte(`["11111111", 42, null, "22222222"]`), 0o600))
	set, err = s.Restricted(ctx)
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.True(t, set.Contains("11111111"))
	assert.True(t, set.Contains("22222222"))

	require.NoError(t, os.WriteFile(path, []byte(`{"broken":`), 0o600))
	set, err = s.Restricted(ctx)
	require.NoError(t, err)
	assert.Empty(t, set)

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrReadingDocument)
}

type stubRestrictions struct {
	set models.RestrictionSet
	err error
}

func (s *stubRestrictions) Load(context.Context) (models.RestrictionSet, error) {
	return s.set, s.err
}

func TestSnapshotRestrictionStore(t *testing.T) {
	ctx := context.Background()
	source := &stubRestrictions{set: models.NewRestrictionSet("11111111")}

	s, err := NewSnapshotRestrictionStore(ctx, source)
	require.NoError(t, err)

	set, err := s.Restricted(ctx)
	require.NoError(t, err)
	assert.True(t, set.Contains("11111111"))

	source.set = models.NewRestrictionSet("22222222")
	set, _ = s.Restricted(ctx)
	assert.True(t, set.Contains("11111111"), "snapshot must not change before Reload")

	require.NoError(t, s.Reload(ctx))
	set, _ = s.Restricted(ctx)
	assert.True(t, set.Contains("22222222"))
	assert.False(t, set.Contains("11111111"))

	source.err = errors.New("boom")
	assert.Error(t, s.Reload(ctx))
	set, _ = s.Restricted(ctx)
	assert.True(t, set.Contains("22222222"), "failed reload keeps previous snapshot")
}

func TestNewSnapshotRestrictionStore_SourceError(t *testing.T) {
	_, err := NewSnapshotRestrictionStore(context.Background(), &stubRestrictions{err: errors.New("boom")})
	assert.Error(t, err)
}

func TestSnapshotRestrictionStore_KeepsListWhenFileIsTruncated(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "r.json")
	require.NoError(t, os.WriteFile(path, []byte(`["22222222"]`), 0o600))

	source, err := NewFileRestrictionStore(path, logger.Nop())
	require.NoError(t, err)
	s, err := NewSnapshotRestrictionStore(ctx, source)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`["2222`), 0o600))
	assert.ErrorIs(t, s.Reload(ctx), ErrReadingDocument)

	set, err := s.Restricted(ctx)
	require.NoError(t, err)
	assert.True(t, set.Contains("22222222"))
	assert.Len(t, set, 1)

	require.NoError(t, os.WriteFile(path, []byte(`["33333333"]`), 0o600))
	require.NoError(t, s.Reload(ctx))
	set, _ = s.Restricted(ctx)
	assert.True(t, set.Contains("33333333"))
	assert.False(t, set.Contains("22222222"))
}

func TestNewSnapshotRestrictionStore_UnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.json")
	source, err := NewFileRestrictionStore(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o600))

	_, err = NewSnapshotRestrictionStore(context.Background(), source)
	assert.ErrorIs(t, err, ErrReadingDocument)
}
