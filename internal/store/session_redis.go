// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-dni-gateway/models"
	"github.com/redis/go-redis/v9"
)

const defaultSessionKeyPrefix = "dni-gateway:session:"

// RedisSessionStore keeps the active token of every user under
// prefix+username with a TTL equal to the token lifetime.
type RedisSessionStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisSessionStore constructs a [SessionStore] on client.
func NewRedisSessionStore(client redis.UniversalClient) *RedisSessionStore {
	return NewRedisSessionStoreWithPrefix(client, defaultSessionKeyPrefix)
}

// NewRedisSessionStoreWithPrefix is [NewRedisSessionStore] with a custom key
// prefix, used to isolate tests or deployments sharing one Redis.
func NewRedisSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *RedisSessionStore {
	return &RedisSessionStore{client: client, prefix: prefix}
}

func (s *RedisSessionStore) key(username string) string {
	return s.prefix + models.NormalizeUsername(username)
}

func (s *RedisSessionStore) Get(ctx context.Context, username string) (string, error) {
	if username == "" {
		return "", ErrSessionNotFound
	}

	token, err := s.client.Get(ctx, s.key(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("redis get: %w", err)
	}

	return token, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, username, token string, ttl time.Duration) error {
	if username == "" || token == "" {
		return errors.New("username and token cannot be empty")
	}
	if ttl <= 0 {
		return errors.New("session ttl must be positive")
	}

	if err := s.client.Set(ctx, s.key(username), token, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Clear(ctx context.Context, username string) error {
	if username == "" {
		return nil
	}

	if err := s.client.Del(ctx, s.key(username)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// NewRedisClient opens a client and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return client, nil
}
