package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/utils"
)

const (
	hashHeader = "HashSHA256"

	// maxHookBody bounds the hook bodies read into memory.
	maxHookBody = 1 << 20
)

// hookSignature verifies that the HashSHA256 header is the hex HMAC-SHA256
// of the raw request body under the hook secret. The body is restored for
// the next handler.
func (h *Handler) hookSignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sig := r.Header.Get(hashHeader)
		if sig == "" {
			log.Err(ErrMissingHookSignature).Str("func", "*Handler.hookSignature").Send()
			utils.WriteError(w, ErrMissingHookSignature.Error(), http.StatusUnauthorized)
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxHookBody))
		if err != nil {
			log.Err(err).Str("func", "*Handler.hookSignature").Msg("failed to read request body")
			utils.WriteError(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, sig) {
			log.Error().Str("func", "*Handler.hookSignature").
				Str("hash from request", sig).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrInvalidHookSignature.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
