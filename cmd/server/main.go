package main

import (
	"context"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/handler"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/server"
	"github.com/MKhiriev/go-user-directory/internal/service"
	"github.com/MKhiriev/go-user-directory/internal/store"
	"github.com/MKhiriev/go-user-directory/internal/workers"
	"github.com/MKhiriev/go-user-directory/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("user-directory-server")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("build_version", buildInfo.BuildVersion()).
		Str("build_date", buildInfo.BuildDate()).
		Str("build_commit", buildInfo.BuildCommit()).
		Msg("starting user directory server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	log.Info().Int("users", storages.UserRepository.Len(context.Background())).Msg("user repository is ready")

	services, err := service.NewServices(storages, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	ws := workers.NewWorkers()
	if limiters := handlers.HTTP.Limiters(); limiters != nil {
		ws.Add(workers.NewJanitor("rate-limiter", limiters, limiters.CleanupEvery(), log))
	}

	srv, err := server.NewServer(handlers, ws, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}
