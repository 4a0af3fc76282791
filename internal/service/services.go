package service

import (
	"fmt"

	"github.com/goldram69/gemdjsso/internal/adapter"
	"github.com/goldram69/gemdjsso/internal/config"
	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/metrics"
	"github.com/goldram69/gemdjsso/internal/session"
	"github.com/goldram69/gemdjsso/internal/store"
	"github.com/goldram69/gemdjsso/models"
)

type Services struct {
	AuthService        AuthService
	ProfileSyncService ProfileSyncService
	SSOService         SSOService
	AppInfoService     AppInfoService
}

// Dependencies are the collaborators shared by the services.
type Dependencies struct {
	Forum    adapter.ForumAdapter
	Storages *store.Storages
	Sessions session.Store
	Metrics  *metrics.Metrics
	Build    models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	syncService, err := NewProfileSyncService(deps.Forum, deps.Storages, cfg.App, deps.Metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating profile sync service: %w", err)
	}

	ssoService, err := NewSSOService(deps.Sessions, deps.Storages.UserRepository, cfg, deps.Metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating sso service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, deps.Build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:        NewAuthService(cfg.App, logger),
		ProfileSyncService: syncService,
		SSOService:         ssoService,
		AppInfoService:     appInfoService,
	}, nil
}
