package http

import (
	"net/http"
	"time"

	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/rs/zerolog"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := wrapResponseWriter(w)
		next.ServeHTTP(lw, r)

		level := zerolog.InfoLevel
		if lw.Status() >= http.StatusInternalServerError {
			level = zerolog.WarnLevel
		}

		log.Logger.WithLevel(level).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
