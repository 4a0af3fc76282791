package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// hookTimeout bounds the per-user hooks; sync-all runs under the server's
// request timeout only.
const hookTimeout = 30 * time.Second

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)

	// browser entry points
	router.Group(func(r chi.Router) {
		r.Use(h.withBrowserSession)

		r.With(h.auth).Get("/forum", h.forumLink)
		r.With(h.auth).Get("/sso/login", h.ssoLogin)

		r.Get("/sso/callback", h.ssoCallback)
		r.Post("/sso/callback", h.ssoCallback)
	})

	// lifecycle hooks called by the host application
	router.Group(func(r chi.Router) {
		r.Use(h.hookSignature)
		r.Use(middleware.Compress(5, "application/json"))

		r.With(middleware.Timeout(hookTimeout)).Post("/api/hooks/users/sync", h.syncUser)
		r.With(middleware.Timeout(hookTimeout)).Post("/api/hooks/users/update", h.updateUser)
		r.With(middleware.Timeout(hookTimeout)).Post("/api/hooks/users/delete", h.deleteUser)
		r.Post("/api/hooks/users/sync-all", h.syncAll)
	})

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/build", h.getBuildInfo)
	router.Method("GET", "/metrics", h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
