// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/store"
)

// RestrictionsReloader refreshes the in-memory restriction list on a fixed
// interval. A failed reload is logged and the previous list stays in use.
type RestrictionsReloader struct {
	reloader store.Reloader
	interval time.Duration

	logger *logger.Logger
}

func NewRestrictionsReloader(reloader store.Reloader, interval time.Duration, logger *logger.Logger) *RestrictionsReloader {
	return &RestrictionsReloader{
		reloader: reloader,
		interval: interval,
		logger:   logger,
	}
}

func (r *RestrictionsReloader) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info().Dur("interval", r.interval).Msg("restrictions reloader started")

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("restrictions reloader stopped")
			return nil
		case <-ticker.C:
			if err := r.reloader.Reload(ctx); err != nil {
				r.logger.Err(err).Msg("error reloading restrictions")
				continue
			}
			r.logger.Debug().Msg("restrictions reloaded")
		}
	}
}
