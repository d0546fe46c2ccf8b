// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSessionStore(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestFileRepo(t)
	_, err := repo.CreateUser(ctx, testUser("ana"))
	require.NoError(t, err)

	sessions := NewRecordSessionStore(repo)

	_, err = sessions.Get(ctx, "ana")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, sessions.Set(ctx, "ana", "tok-1", time.Hour))
	require.NoError(t, sessions.Set(ctx, "ana", "tok-2", time.Hour))

	token, err := sessions.Get(ctx, "ANA")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)

	require.NoError(t, sessions.Clear(ctx, "ana"))
	_, err = sessions.Get(ctx, "ana")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = sessions.Get(ctx, "ghost")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, sessions.Clear(ctx, "ghost"))
}

// setupTestRedis connects to STORAGE_SESSIONS_REDIS_ADDR or localhost:6379.
// Tests are skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("STORAGE_SESSIONS_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	client, err := NewRedisClient(ctx, addr, "", 15)
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisSessionStore(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()

	prefix := "test:" + t.Name() + ":"
	sessions := NewRedisSessionStoreWithPrefix(client, prefix)
	t.Cleanup(func() { _ = sessions.Clear(ctx, "ana") })

	_, err := sessions.Get(ctx, "ana")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, sessions.Set(ctx, "ana", "tok-1", time.Minute))
	require.NoError(t, sessions.Set(ctx, "Ana", "tok-2", time.Minute))

	token, err := sessions.Get(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)

	ttl, err := client.TTL(ctx, prefix+"ana").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, sessions.Clear(ctx, "ana"))
	_, err = sessions.Get(ctx, "ana")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionStore_Validation(t *testing.T) {
	// no connection is made for rejected input
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()
	sessions := NewRedisSessionStore(client)
	ctx := context.Background()

	assert.Error(t, sessions.Set(ctx, "", "tok", time.Minute))
	assert.Error(t, sessions.Set(ctx, "ana", "", time.Minute))
	assert.Error(t, sessions.Set(ctx, "ana", "tok", 0))

	_, err := sessions.Get(ctx, "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, sessions.Clear(ctx, ""))
}
