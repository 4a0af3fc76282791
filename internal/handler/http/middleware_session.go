package http

import (
	"context"
	"net/http"

	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/utils"
)

// withBrowserSession makes sure the browser carries a session id cookie and
// stores that id under [utils.BrowserSessionCtxKey]. The pending SSO
// handshake is keyed by it, so the callback must arrive from the same
// browser that started the login.
func (h *Handler) withBrowserSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(h.sessionCookie); err == nil && utils.IsValidUUID(cookie.Value) {
			sessionID = cookie.Value
		} else {
			sessionID = h.ids.Generate()
			http.SetCookie(w, h.newCookie(h.sessionCookie, sessionID, h.sessionTTL))
			logger.FromRequest(r).Debug().Str("func", "*Handler.withBrowserSession").Msg("issued new browser session")
		}

		ctx := context.WithValue(r.Context(), utils.BrowserSessionCtxKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
