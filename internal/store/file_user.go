// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/models"
)

// fileUserRepository is the JSON-document implementation of
// [UserRepository]. The whole document is read on every call and rewritten
// on every mutation. mu serializes read-modify-write cycles within the
// process.
type fileUserRepository struct {
	path   string
	mu     sync.Mutex
	now    func() time.Time
	logger *logger.Logger
}

// NewFileUserRepository constructs a [UserRepository] stored in the JSON
// document at path. The file and its directory are created when missing.
func NewFileUserRepository(path string, logger *logger.Logger) (UserRepository, error) {
	if err := ensureJSONArrayFile(path); err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Msg("creating file user repository")
	return &fileUserRepository{
		path:   path,
		now:    time.Now,
		logger: logger,
	}, nil
}

// ListUsers returns every account. An unreadable document is logged and
// reported as empty.
func (r *fileUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("path", r.path).Msg("users document is unreadable, treating as empty")
		return []models.User{}, nil
	}

	return users, nil
}

func (r *fileUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	users, err := r.ListUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	if i := indexOfUser(users, username); i >= 0 {
		return users[i], nil
	}

	return models.User{}, ErrUserNotFound
}

func (r *fileUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	err := r.mutate(ctx, func(users []models.User) ([]models.User, error) {
		user.Username = models.NormalizeUsername(user.Username)
		if indexOfUser(users, user.Username) >= 0 {
			return nil, ErrUserAlreadyExists
		}

		now := r.now().UTC()
		if user.CreatedAt.IsZero() {
			user.CreatedAt = now
		}
		user.UpdatedAt = now

		created = user
		return append(users, user), nil
	})

	return created, err
}

func (r *fileUserRepository) UpdateUser(ctx context.Context, username string, user models.User) (models.User, error) {
	var updated models.User
	err := r.mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := indexOfUser(users, username)
		if i < 0 {
			return nil, ErrUserNotFound
		}

		user.Username = models.NormalizeUsername(user.Username)
		if j := indexOfUser(users, user.Username); j >= 0 && j != i {
			return nil, ErrUserAlreadyExists
		}

		user.CreatedAt = users[i].CreatedAt
		user.UpdatedAt = r.now().UTC()
		users[i] = user

		updated = user
		return users, nil
	})

	return updated, err
}

func (r *fileUserRepository) DeleteUser(ctx context.Context, username string) error {
	return r.mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := indexOfUser(users, username)
		if i < 0 {
			return nil, ErrUserNotFound
		}
		return append(users[:i], users[i+1:]...), nil
	})
}

func (r *fileUserRepository) SetActiveToken(ctx context.Context, username string, token *string) error {
	return r.mutate(ctx, func(users []models.User) ([]models.User, error) {
		i := indexOfUser(users, username)
		if i < 0 {
			return nil, ErrUserNotFound
		}
		users[i].ActiveToken = token
		return users, nil
	})
}

// mutate runs fn over the current document under the lock and writes the
// result back. A document that cannot be parsed is never overwritten.
func (r *fileUserRepository) mutate(ctx context.Context, fn func([]models.User) ([]models.User, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("path", r.path).Msg("refusing to modify unreadable users document")
		return err
	}

	users, err = fn(users)
	if err != nil {
		return err
	}

	return r.save(users)
}

func (r *fileUserRepository) load() ([]models.User, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	var docs []userDocument
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	now := r.now().UTC()
	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toUser(now))
	}

	return users, nil
}

func (r *fileUserRepository) save(users []models.User) error {
	docs := make([]userDocument, len(users))
	for i, u := range users {
		docs[i] = newUserDocument(u)
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	return writeFileAtomic(r.path, data)
}

func indexOfUser(users []models.User, username string) int {
	username = models.NormalizeUsername(username)
	for i, u := range users {
		if u.Username == username {
			return i
		}
	}
	return -1
}

// ensureJSONArrayFile creates path (and its directory) holding "[]" when it
// does not exist yet.
func ensureJSONArrayFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return writeFileAtomic(path, []byte("[]"))
	} else if err != nil {
		return fmt.Errorf("%w: %w", ErrReadingDocument, err)
	}

	return nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never observe a half-written document.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpName, 0o600)
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrWritingDocument, err)
	}

	return nil
}
