// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-dni-gateway/internal/adapter"
	"github.com/MKhiriev/go-dni-gateway/internal/config"
	"github.com/MKhiriev/go-dni-gateway/internal/handler"
	"github.com/MKhiriev/go-dni-gateway/internal/logger"
	"github.com/MKhiriev/go-dni-gateway/internal/server"
	"github.com/MKhiriev/go-dni-gateway/internal/service"
	"github.com/MKhiriev/go-dni-gateway/internal/store"
	"github.com/MKhiriev/go-dni-gateway/internal/workers"
	"github.com/MKhiriev/go-dni-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("dni-gateway")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	logger.SetLevel(cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("users_file", cfg.Storage.UsersFile).
		Str("db_driver", cfg.Storage.DB.Driver).
		Bool("redis_sessions", cfg.Storage.Sessions.RedisAddr != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	lookup, err := adapter.NewHTTPLookupAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating lookup adapter")
	}

	services := service.NewServices(storages, lookup, cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("build", buildInfo.String()).Msg("starting dni-gateway")
	srv.RunServer()
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.Version)
	fmt.Printf("Build date: %s\n", buildInfo.Date)
	fmt.Printf("Build commit: %s\n", buildInfo.Commit)
}
