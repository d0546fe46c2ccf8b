// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a create or rename collides with
	// an existing username.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when no account matches the username.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned by [SessionStore.Get] when the user has
	// no open session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnsupportedDriver is returned for a database driver other than
	// pgx or sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level storage operation errors. These are returned (or wrapped) when an
// I/O or SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrReadingDocument is returned when a JSON document cannot be read.
	ErrReadingDocument = errors.New("failed to read document")

	// ErrWritingDocument is returned when a JSON document cannot be written.
	ErrWritingDocument = errors.New("failed to write document")
)
