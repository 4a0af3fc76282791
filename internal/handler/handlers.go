package handler

import (
	"github.com/goldram69/gemdjsso/internal/config"
	"github.com/goldram69/gemdjsso/internal/handler/http"
	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/metrics"
	"github.com/goldram69/gemdjsso/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, m, logger),
	}, nil
}
