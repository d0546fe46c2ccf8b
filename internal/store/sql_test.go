// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-dni-gateway/internal/config"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildFindUserQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{"postgres", sq.StatementBuilder.PlaceholderFormat(sq.Dollar), "username = $1"},
		{"sqlite", sq.StatementBuilder.PlaceholderFormat(sq.Question), "username = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindUserQuery(tt.builder, "ana")
			require.NoError(t, err)
			assert.Contains(t, query, tt.want)
			assert.Equal(t, []any{"ana"}, args)

			q := strings.ToLower(query)
			for _, col := range userColumns {
				assert.Contains(t, q, col)
			}
		})
	}
}

func Test_buildUpdateUserQuery_KeepsCreatedAt(t *testing.T) {
	query, args, err := buildUpdateUserQuery(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), "ana", models.User{Username: "ana"})
	require.NoError(t, err)

	assert.NotContains(t, query, "created_at")
	assert.Len(t, args, 9)
	assert.Equal(t, `[]`, args[4], "nil allow-list is stored as an empty array")
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name      string
		err       error
		retryable bool
		unique    bool
	}{
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, false, true},
		{"serialization failure", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, true, false},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, true, false},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, true, false},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, false, false},
		{"wrapped", errors.Join(errors.New("ctx"), &pgconn.PgError{Code: pgerrcode.UniqueViolation}), false, true},
		{"plain error", errors.New("boom"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, c.Classify(tt.err) == Retryable)
			assert.Equal(t, tt.unique, c.IsUniqueViolation(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, c.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.True(t, c.IsUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, c.IsUniqueViolation(errors.New("boom")))
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "oracle"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLiteUserRepository_EndToEnd(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "db", "users.sqlite")

	db, err := NewConnect(ctx, config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate())

	repo := NewSQLUserRepository(db, logger.Nop())

	_, err = repo.CreateUser(ctx, testUser("ana"))
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, testUser("luis"))
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, testUser("ANA"))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	_, err = repo.UpdateUser(ctx, "ana", testUser("luis"))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)

	token := "tok"
	require.NoError(t, repo.SetActiveToken(ctx, "ana", &token))

	found, err := repo.FindUserByUsername(ctx, "ana")
	require.NoError(t, err)
	require.NotNil(t, found.ActiveToken)
	assert.Equal(t, "tok", *found.ActiveToken)
	assert.Equal(t, []models.PersonField{models.FieldDNI, models.FieldNombres}, found.AllowedFields)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	require.NoError(t, repo.DeleteUser(ctx, "luis"))
	assert.ErrorIs(t, repo.DeleteUser(ctx, "luis"), ErrUserNotFound)
}

func TestNewStorages_FileBackends(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.StructuredConfig{
		Storage: config.Storage{
			UsersFile:        filepath.Join(dir, "users.json"),
			RestrictionsFile: filepath.Join(dir, "r.json"),
		},
	}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.NotNil(t, s.UserRepository)
	assert.NotNil(t, s.SessionStore)
	assert.NotNil(t, s.RestrictionStore)
	assert.Nil(t, s.RestrictionReloader)
}

func TestNewStorages_SnapshotRestrictions(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.StructuredConfig{
		Storage: config.Storage{
			UsersFile:        filepath.Join(dir, "users.json"),
			RestrictionsFile: filepath.Join(dir, "r.json"),
		},
		Workers: config.Workers{RestrictionsReloadInterval: 1},
	}

	s, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NotNil(t, s.RestrictionReloader)
	assert.IsType(t, &SnapshotRestrictionStore{}, s.RestrictionStore)
}
