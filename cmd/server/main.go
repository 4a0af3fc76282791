package main

import (
	"context"
	"fmt"
	"time"

	"github.com/goldram69/gemdjsso/internal/adapter"
	"github.com/goldram69/gemdjsso/internal/config"
	"github.com/goldram69/gemdjsso/internal/handler"
	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/metrics"
	"github.com/goldram69/gemdjsso/internal/server"
	"github.com/goldram69/gemdjsso/internal/service"
	"github.com/goldram69/gemdjsso/internal/session"
	"github.com/goldram69/gemdjsso/internal/store"
	"github.com/goldram69/gemdjsso/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("gemdjsso-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	if cfg.App.Version == "" {
		cfg.App.Version = build.Version
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	sessions, err := session.NewStore(ctx, cfg.Session, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}
	defer sessions.Close()

	m := metrics.New()

	forum, err := adapter.NewForumAdapter(cfg.Adapter, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating forum adapter")
	}

	services, err := service.NewServices(service.Dependencies{
		Forum:    forum,
		Storages: store.NewStorages(db, log),
		Sessions: sessions,
		Metrics:  m,
		Build:    build,
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
