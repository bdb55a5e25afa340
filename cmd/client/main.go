// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-clinic-vault/internal/adapter"
	"github.com/MKhiriev/go-clinic-vault/internal/client"
	"github.com/MKhiriev/go-clinic-vault/internal/config"
	"github.com/MKhiriev/go-clinic-vault/internal/logger"
	"github.com/MKhiriev/go-clinic-vault/internal/service"
	"github.com/MKhiriev/go-clinic-vault/internal/store"
	"github.com/MKhiriev/go-clinic-vault/internal/tui"
	"github.com/MKhiriev/go-clinic-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("clinic-vault-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("clinic-vault-client", cfg.App.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create record server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services, err := service.NewClientServices(localStorage, serverAdapter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	app, err := client.NewApp(services, tui.New(services.RecordService, log), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		localStorage.Close()
		os.Exit(1)
	}
}
