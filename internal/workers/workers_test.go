// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-dni-gateway/internal/config"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/mock"
	"github.com/MKhiriev/go-dni-gateway/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// funcWorker adapts a function to the Worker interface.
type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error { return f(ctx) }

func blockUntilDone(started *atomic.Int32) Worker {
	return funcWorker(func(ctx context.Context) error {
		started.Add(1)
		<-ctx.Done()
		return nil
	})
}

func TestWorkers_Run_StopsOnCancel(t *testing.T) {
	var started atomic.Int32
	ws := &Workers{
		workers: []Worker{blockUntilDone(&started), blockUntilDone(&started)},
		logger:  logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool { return started.Load() == 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("workers did not stop after cancel")
	}
}

func TestWorkers_Run_FirstErrorCancelsOthers(t *testing.T) {
	var started atomic.Int32
	boom := errors.New("boom")

	ws := &Workers{
		workers: []Worker{
			blockUntilDone(&started),
			funcWorker(func(context.Context) error { return boom }),
		},
		logger: logger.Nop(),
	}

	err := ws.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{logger: logger.Nop()}
	assert.NoError(t, ws.Run(context.Background()))
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("no snapshot, no workers", func(t *testing.T) {
		ws := NewWorkers(&store.Storages{}, config.Workers{RestrictionsReloadInterval: time.Minute}, logger.Nop())
		assert.Zero(t, ws.Len())
	})

	t.Run("snapshot with interval", func(t *testing.T) {
		storages := &store.Storages{RestrictionReloader: mock.NewMockReloader(ctrl)}
		ws := NewWorkers(storages, config.Workers{RestrictionsReloadInterval: time.Minute}, logger.Nop())
		assert.Equal(t, 1, ws.Len())
	})

	t.Run("snapshot without interval", func(t *testing.T) {
		storages := &store.Storages{RestrictionReloader: mock.NewMockReloader(ctrl)}
		ws := NewWorkers(storages, config.Workers{}, logger.Nop())
		assert.Zero(t, ws.Len())
	})
}

func TestRestrictionsReloader_ReloadsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	reloader := mock.NewMockReloader(ctrl)

	var calls atomic.Int32
	reloader.EXPECT().Reload(gomock.Any()).DoAndReturn(func(context.Context) error {
		if calls.Add(1) == 1 {
			return errors.New("file being edited")
		}
		return nil
	}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewRestrictionsReloader(reloader, 5*time.Millisecond, logger.Nop()).Run(ctx) }()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err, "a failed reload does not stop the worker")
	case <-time.After(time.Second):
		t.Fatal("reloader did not stop after cancel")
	}
}
