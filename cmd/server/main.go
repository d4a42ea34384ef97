// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/click-storm/internal/adapter"
	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/internal/handler"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/server"
	"github.com/MKhiriev/click-storm/internal/service"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/MKhiriev/click-storm/internal/workers"
	"github.com/MKhiriev/click-storm/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(info)

	log := logger.NewLogger("click-storm")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}
	if buildVersion != "" && cfg.App.Version == config.Defaults().App.Version {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	mailer, err := adapter.NewMailSender(cfg.Mailer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail sender")
	}

	services, err := service.NewServices(storages, mailer, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	jobs := workers.NewWorkers(services, cfg.Workers, log)

	srv, err := server.NewServer(handlers, jobs, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
