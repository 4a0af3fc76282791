// Command resync reconciles every local user with the forum once and
// prints the batch report as JSON. It exits with status 1 when any user
// failed.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/goldram69/gemdjsso/internal/adapter"
	"github.com/goldram69/gemdjsso/internal/config"
	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/service"
	"github.com/goldram69/gemdjsso/internal/store"
)

func main() {
	log := logger.NewLogger("gemdjsso-resync")
	cfg, err := config.GetSyncConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()
	ctx = log.WithContext(ctx)

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	forum, err := adapter.NewForumAdapter(cfg.Adapter, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating forum adapter")
	}

	syncService, err := service.NewProfileSyncService(forum, store.NewStorages(db, log), cfg.App, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating profile sync service")
	}

	report, err := syncService.ReconcileAll(ctx)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(report); encErr != nil {
		log.Err(encErr).Msg("error writing report")
	}

	if err != nil {
		log.Err(err).Msg("batch reconcile aborted")
		os.Exit(1)
	}

	log.Info().Int("total", report.Total).Int("failed", report.Failed).Msg("batch reconcile finished")
	if report.Failed > 0 {
		os.Exit(1)
	}
}
