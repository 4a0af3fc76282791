package http

import (
	"time"

	"github.com/goldram69/gemdjsso/internal/config"
	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/metrics"
	"github.com/goldram69/gemdjsso/internal/service"
	"github.com/goldram69/gemdjsso/internal/utils"
)

// tokenCookieName carries the local session JWT issued after a validated
// SSO callback.
const tokenCookieName = "gemdjsso_token"

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	hasher   *utils.Hasher
	ids      *utils.UUIDGenerator

	sessionCookie string
	cookieSecure  bool
	sessionTTL    time.Duration
	tokenTTL      time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		metrics:       m,
		hasher:        utils.NewHasher(cfg.App.HookSecret),
		ids:           utils.NewUUIDGenerator(),
		sessionCookie: cfg.Session.CookieName,
		cookieSecure:  cfg.Session.CookieSecure,
		sessionTTL:    cfg.Session.TTL,
		tokenTTL:      cfg.App.TokenDuration,
		logger:        logger,
	}
}
