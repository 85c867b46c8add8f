package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-locale-sync/internal/client"
	"github.com/MKhiriev/go-locale-sync/internal/config"
	"github.com/MKhiriev/go-locale-sync/internal/handler"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/MKhiriev/go-locale-sync/internal/server"
	"github.com/MKhiriev/go-locale-sync/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("locale-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("locale-server", cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("remote", cfg.Adapter.Address).
		Bool("remote_sync_disabled", cfg.Adapter.DisableRemoteSync).
		Dur("poll_interval", cfg.Workers.PollInterval).
		Msg("received configs")

	ctx := context.Background()
	app, err := client.NewApp(ctx, cfg, service.BuildVersion(buildVersion), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init localization runtime error")
	}

	if err = app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("bootstrap error")
	}
	defer app.Stop()

	handlers, err := handler.NewHandlers(app.Services(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
