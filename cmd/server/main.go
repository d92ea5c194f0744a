package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sign-gate/internal/config"
	"github.com/MKhiriev/go-sign-gate/internal/handler"
	"github.com/MKhiriev/go-sign-gate/internal/logger"
	"github.com/MKhiriev/go-sign-gate/internal/server"
	"github.com/MKhiriev/go-sign-gate/internal/service"
	"github.com/MKhiriev/go-sign-gate/internal/session"
	"github.com/MKhiriev/go-sign-gate/internal/store"
	"github.com/MKhiriev/go-sign-gate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-sign-gate", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-sign-gate", cfg.App.LogLevel)
	log.Info().
		Object("build", buildInfo).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	sessions := session.NewManager(cfg.App, log)
	services := service.NewServices(storages, cfg.App, log)

	handlers, err := handler.NewHandlers(services, sessions, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
