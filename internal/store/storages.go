// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"io"

	"github.com/MKhiriev/go-dni-gateway/internal/config"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
)

// Storages aggregates every backend the service layer depends on.
type Storages struct {
	UserRepository   UserRepository
	SessionStore     SessionStore
	RestrictionStore RestrictionStore

	// RestrictionReloader is set when restrictions are served from an
	// in-memory snapshot that a worker must refresh.
	RestrictionReloader Reloader

	closers []io.Closer
}

// NewStorages builds the backends selected by cfg:
//   - users live in the SQL database when a DSN is configured, otherwise in
//     the JSON users document;
//   - sessions live in Redis when an address is configured, otherwise on the
//     user record;
//   - restrictions are read from their file on every lookup, or from a
//     snapshot when a reload interval is configured.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	users, err := s.newUserRepository(ctx, cfg.Storage, log)
	if err != nil {
		return nil, errors.Join(err, s.Close())
	}
	s.UserRepository = users

	if cfg.Storage.Sessions.RedisAddr != "" {
		client, err := NewRedisClient(ctx, cfg.Storage.Sessions.RedisAddr, cfg.Storage.Sessions.RedisPassword, cfg.Storage.Sessions.RedisDB)
		if err != nil {
			log.Err(err).Str("addr", cfg.Storage.Sessions.RedisAddr).Msg("error connecting to redis")
			return nil, errors.Join(err, s.Close())
		}
		s.closers = append(s.closers, client)
		s.SessionStore = NewRedisSessionStore(client)
		log.Info().Str("addr", cfg.Storage.Sessions.RedisAddr).Msg("sessions are stored in redis")
	} else {
		s.SessionStore = NewRecordSessionStore(users)
	}

	restrictions, err := NewFileRestrictionStore(cfg.Storage.RestrictionsFile, log)
	if err != nil {
		return nil, errors.Join(err, s.Close())
	}
	s.RestrictionStore = restrictions

	if cfg.Workers.RestrictionsReloadInterval > 0 {
		snapshot, err := NewSnapshotRestrictionStore(ctx, restrictions)
		if err != nil {
			return nil, errors.Join(err, s.Close())
		}
		s.RestrictionStore = snapshot
		s.RestrictionReloader = snapshot
	}

	return s, nil
}

func (s *Storages) newUserRepository(ctx context.Context, cfg config.Storage, log *logger.Logger) (UserRepository, error) {
	if cfg.DB.DSN == "" {
		return NewFileUserRepository(cfg.UsersFile, log)
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, db)

	if err = db.Migrate(); err != nil {
		log.Err(err).Msg("error applying migrations")
		return nil, err
	}

	return NewSQLUserRepository(db, log), nil
}

// Close releases database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
