// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-dni-gateway/models"
)

const usersTable = "users"

var userColumns = []string{
	"username",
	"nombre",
	"apellido",
	"password_hash",
	"allowed_fields",
	"role",
	"active_token",
	"created_at",
	"updated_at",
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("created_at", "username").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	fields, err := encodeAllowedFields(user.AllowedFields)
	if err != nil {
		return "", nil, err
	}

	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.Username,
			user.Nombre,
			user.Apellido,
			user.PasswordHash,
			fields,
			string(user.Role),
			nullableToken(user.ActiveToken),
			user.CreatedAt,
			user.UpdatedAt,
		).
		ToSql()
}

// buildUpdateUserQuery rewrites every mutable column of the row currently
// keyed by username. created_at is never touched.
func buildUpdateUserQuery(b sq.StatementBuilderType, username string, user models.User) (string, []any, error) {
	fields, err := encodeAllowedFields(user.AllowedFields)
	if err != nil {
		return "", nil, err
	}

	return b.Update(usersTable).
		Set("username", user.Username).
		Set("nombre", user.Nombre).
		Set("apellido", user.Apellido).
		Set("password_hash", user.PasswordHash).
		Set("allowed_fields", fields).
		Set("role", string(user.Role)).
		Set("active_token", nullableToken(user.ActiveToken)).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSetActiveTokenQuery(b sq.StatementBuilderType, username string, token *string, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("active_token", nullableToken(token)).
		Set("updated_at", now).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user   models.User
		fields string
		role   string
		token  sql.NullString
	)

	err := row.Scan(
		&user.Username,
		&user.Nombre,
		&user.Apellido,
		&user.PasswordHash,
		&fields,
		&role,
		&token,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Role = models.Role(role)
	if !user.Role.Valid() {
		user.Role = models.DefaultRole
	}

	var names []string
	if fields != "" {
		if err = json.Unmarshal([]byte(fields), &names); err != nil {
			return models.User{}, fmt.Errorf("%w: allowed_fields: %w", ErrScanningRow, err)
		}
	}
	user.AllowedFields = models.ParseAllowedFields(names)
	if user.AllowedFields == nil {
		user.AllowedFields = []models.PersonField{}
	}

	if token.Valid && token.String != "" {
		t := token.String
		user.ActiveToken = &t
	}

	return user, nil
}

func encodeAllowedFields(fields []models.PersonField) (string, error) {
	if fields == nil {
		fields = []models.PersonField{}
	}
	b, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("%w: allowed_fields: %w", ErrBuildingSQLQuery, err)
	}
	return string(b), nil
}

func nullableToken(token *string) sql.NullString {
	if token == nil || *token == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *token, Valid: true}
}
