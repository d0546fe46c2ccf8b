// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-dni-gateway/internal/config"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/store"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the workers the storages need. The restrictions
// reloader is only added when restrictions are served from a snapshot.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	var workers []Worker

	if storages.RestrictionReloader != nil && cfg.RestrictionsReloadInterval > 0 {
		workers = append(workers, NewRestrictionsReloader(storages.RestrictionReloader, cfg.RestrictionsReloadInterval, logger))
	}

	return New(logger, workers...)
}

// New groups arbitrary workers.
func New(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them. The first error
// cancels the rest and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, worker := range w.workers {
		worker := worker
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		w.logger.Err(err).Msg("background worker failed")
		return err
	}

	return nil
}
