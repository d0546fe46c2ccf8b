// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"time"
)

// recordSessionStore keeps the active token on the user record itself,
// which is how the users document has always stored it.
type recordSessionStore struct {
	users UserRepository
}

// NewRecordSessionStore constructs a [SessionStore] that reads and writes the
// ActiveToken of accounts in users. ttl is ignored: expiry is enforced by the
// token itself.
func NewRecordSessionStore(users UserRepository) SessionStore {
	return &recordSessionStore{users: users}
}

func (s *recordSessionStore) Get(ctx context.Context, username string) (string, error) {
	user, err := s.users.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrSessionNotFound
		}
		return "", err
	}

	if user.ActiveToken == nil || *user.ActiveToken == "" {
		return "", ErrSessionNotFound
	}

	return *user.ActiveToken, nil
}

func (s *recordSessionStore) Set(ctx context.Context, username, token string, _ time.Duration) error {
	return s.users.SetActiveToken(ctx, username, &token)
}

func (s *recordSessionStore) Clear(ctx context.Context, username string) error {
	err := s.users.SetActiveToken(ctx, username, nil)
	if errors.Is(err, ErrUserNotFound) {
		return nil
	}
	return err
}
