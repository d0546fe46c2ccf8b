// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-dni-gateway/internal/config"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

func newMockSQLRepo(t *testing.T) (*sqlUserRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = conn.Close()
	})

	db := &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}

	repo := NewSQLUserRepository(db, logger.Nop()).(*sqlUserRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

func addUserRow(rows *sqlmock.Rows, username, fields string, token driver.Value) *sqlmock.Rows {
	return rows.AddRow(username, "Ana", "Quispe", "$2a$10$hash", fields, "analista", token, fixedNow, fixedNow)
}

func TestSQLUserRepository_ListUsers(t *testing.T) {
	repo, mock := newMockSQLRepo(t)

	rows := addUserRow(userRows(), "ana", `["dni","nombres"]`, nil)
	rows = addUserRow(rows, "luis", `["sexo","bogus"]`, "tok")
	mock.ExpectQuery(`SELECT username, .* FROM users ORDER BY created_at, username`).WillReturnRows(rows)

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "ana", users[0].Username)
	assert.Equal(t, []models.PersonField{models.FieldDNI, models.FieldNombres}, users[0].AllowedFields)
	assert.Nil(t, users[0].ActiveToken)
	assert.Equal(t, models.RoleAnalista, users[0].Role)

	assert.Equal(t, []models.PersonField{models.FieldSexo}, users[1].AllowedFields)
	require.NotNil(t, users[1].ActiveToken)
	assert.Equal(t, "tok", *users[1].ActiveToken)
}

func TestSQLUserRepository_FindUserByUsername(t *testing.T) {
	repo, mock := newMockSQLRepo(t)

	mock.ExpectQuery(`FROM users WHERE username = \$1`).
		WithArgs("ana").
		WillReturnRows(addUserRow(userRows(), "ana", `[]`, nil))

	user, err := repo.FindUserByUsername(context.Background(), " ANA ")
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.Empty(t, user.AllowedFields)
}

func TestSQLUserRepository_FindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newMockSQLRepo(t)

	mock.ExpectQuery(`FROM users WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnRows(userRows())

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLUserRepository_CreateUser(t *testing.T) {
	repo, mock := newMockSQLRepo(t)

	mock.ExpectExec(`INSERT INTO users \(username,nombre,apellido,password_hash,allowed_fields,role,active_token,created_at,updated_at\)`).
		WithArgs("ana", "Ana", "Quispe", "$2a$10$hash", `["dni"]`, "usuario", nil, fixedNow, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateUser(context.Background(), models.User{
		Username:      "Ana",
		Nombre:        "Ana",
		Apellido:      "Quispe",
		PasswordHash:  "$2a$10$hash",
		AllowedFields: []models.PersonField{models.FieldDNI},
		Role:          models.RoleUsuario,
	})
	require.NoError(t, err)
	assert.Equal(t, "ana", created.Username)
	assert.Equal(t, fixedNow, created.CreatedAt)
}

func TestSQLUserRepository_CreateUser_Duplicate(t *testing.T) {
	repo, mock := newMockSQLRepo(t)

	mock.ExpectExec(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateUser(context.Background(), models.User{Username: "ana", Role: models.RoleUsuario})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestSQLUserRepository_UpdateUser(t *testing.T) {
	repo, mock := newMockSQLRepo(t)

	mock.ExpectExec(`UPDATE users SET username = \$1, .* WHERE username = \$9`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM users WHERE username = \$1`).
		WithArgs("carla").
		WillReturnRows(addUserRow(userRows(), "carla", `["dni"]`, nil))

	updated, err := repo.UpdateUser(context.Background(), "ana", models.User{Username: "Carla", Role: models.RoleAnalista})
	require.NoError(t, err)
	assert.Equal(t, "carla", updated.Username)
}

func TestSQLUserRepository_UpdateUser_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockSQLRepo(t)
		mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateUser(context.Background(), "ghost", models.User{Username: "ghost"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("rename collision", func(t *testing.T) {
		repo, mock := newMockSQLRepo(t)
		mock.ExpectExec(`UPDATE users`).WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := repo.UpdateUser(context.Background(), "ana", models.User{Username: "luis"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestSQLUserRepository_DeleteUser(t *testing.T) {
	repo, mock := newMockSQLRepo(t)

	mock.ExpectExec(`DELETE FROM users WHERE username = \$1`).
		WithArgs("ana").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM users WHERE username = \$1`).
		WithArgs("ana").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteUser(context.Background(), "ana"))
	assert.ErrorIs(t, repo.DeleteUser(context.Background(), "ana"), ErrUserNotFound)
}

func TestSQLUserRepository_SetActiveToken(t *testing.T) {
	repo, mock := newMockSQLRepo(t)
	token := "tok"

	mock.ExpectExec(`UPDATE users SET active_token = \$1, updated_at = \$2 WHERE username = \$3`).
		WithArgs("tok", fixedNow, "ana").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE users SET active_token`).
		WithArgs(nil, fixedNow, "ana").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetActiveToken(context.Background(), "ana", &token))
	require.NoError(t, repo.SetActiveToken(context.Background(), "ana", nil))
}

func TestSQLUserRepository_RetriesTransientErrors(t *testing.T) {
	repo, mock := newMockSQLRepo(t)

	mock.ExpectExec(`DELETE FROM users`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectExec(`DELETE FROM users`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteUser(context.Background(), "ana"))
}

func TestSQLUserRepository_DoesNotRetryPermanentErrors(t *testing.T) {
	repo, mock := newMockSQLRepo(t)

	mock.ExpectExec(`DELETE FROM users`).WillReturnError(errors.New("syntax error"))

	err := repo.DeleteUser(context.Background(), "ana")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
