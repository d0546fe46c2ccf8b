// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/models"
)

// sqlUserRepository is the database-backed implementation of
// [UserRepository] over the "users" table.
type sqlUserRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLUserRepository constructs a [UserRepository] backed by db.
func NewSQLUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating sql user repository")
	return &sqlUserRepository{
		db:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (r *sqlUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	users := []models.User{}
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		users = users[:0]
		for rows.Next() {
			user, err := scanUser(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			users = append(users, user)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Msg("error listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return users, nil
}

func (r *sqlUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildFindUserQuery(r.db.builder, models.NormalizeUsername(username))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func() error {
		user, err = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *sqlUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.Username = models.NormalizeUsername(user.Username)
	now := r.now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.exec(ctx, query, args); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("username", user.Username).Msg("error creating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *sqlUserRepository) UpdateUser(ctx context.Context, username string, user models.User) (models.User, error) {
	username = models.NormalizeUsername(username)
	user.Username = models.NormalizeUsername(user.Username)
	user.UpdatedAt = r.now().UTC()

	query, args, err := buildUpdateUserQuery(r.db.builder, username, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.execAffected(ctx, query, args)
	if err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.FindUserByUsername(ctx, user.Username)
}

func (r *sqlUserRepository) DeleteUser(ctx context.Context, username string) error {
	query, args, err := buildDeleteUserQuery(r.db.builder, models.NormalizeUsername(username))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.execAffected(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *sqlUserRepository) SetActiveToken(ctx context.Context, username string, token *string) error {
	query, args, err := buildSetActiveTokenQuery(r.db.builder, models.NormalizeUsername(username), token, r.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.execAffected(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("error storing active token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *sqlUserRepository) exec(ctx context.Context, query string, args []any) error {
	_, err := r.execAffected(ctx, query, args)
	return err
}

func (r *sqlUserRepository) execAffected(ctx context.Context, query string, args []any) (int64, error) {
	var affected int64
	err := r.db.withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected, err
}
