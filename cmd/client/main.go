package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-locale-sync/internal/client"
	"github.com/MKhiriev/go-locale-sync/internal/config"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
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
		logger.NewLogger("locale-client", "").Fatal().Err(err).Msg("error getting configs")
	}

	// stdout carries resolved keys only
	log := logger.NewFileLogger("locale-client", cfg.App.LogLevel, "")

	ctx := context.Background()
	app, err := client.NewApp(ctx, cfg, service.BuildVersion(buildVersion), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
