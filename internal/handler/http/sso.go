package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/utils"
)

// forumLink starts SSO with the forum home page as post-login destination.
func (h *Handler) forumLink(w http.ResponseWriter, r *http.Request) {
	h.startSSO(w, r, h.services.SSOService.ForumURL())
}

// ssoLogin starts SSO. An optional same-site "redirect" query parameter
// names where the browser lands after the callback.
func (h *Handler) ssoLogin(w http.ResponseWriter, r *http.Request) {
	h.startSSO(w, r, localRedirect(r.URL.Query().Get("redirect")))
}

func (h *Handler) startSSO(w http.ResponseWriter, r *http.Request, destination string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.startSSO").Msg("no user id in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	sessionID, _ := utils.GetBrowserSessionIDFromContext(ctx)

	redirectURL, err := h.services.SSOService.Initiate(ctx, sessionID, userID, destination)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.startSSO").Int64("local_user_id", userID).Int("status", status).Msg("sso initiate failed")
		utils.WriteError(w, errorMessage(err, status), status)
		return
	}

	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// ssoCallback accepts the forum's answer as query or form fields "sso" and
// "sig". A validated handshake sets the local session token cookie and
// redirects; every rejection is a 400, or 403 for privileged accounts.
func (h *Handler) ssoCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sessionID, _ := utils.GetBrowserSessionIDFromContext(ctx)

	result, err := h.services.SSOService.HandleCallback(ctx, sessionID, r.FormValue("sso"), r.FormValue("sig"))
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.ssoCallback").Int("status", status).Msg("sso callback rejected")
		utils.WriteError(w, errorMessage(err, status), status)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, result.User)
	if err != nil {
		log.Err(err).Str("func", "*Handler.ssoCallback").Msg("creation of token failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.newCookie(tokenCookieName, token.SignedString, h.tokenTTL))
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	http.Redirect(w, r, result.RedirectURL, http.StatusFound)
}

func (h *Handler) newCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// localRedirect keeps only same-site absolute paths; anything else falls
// back to the configured default.
func localRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return ""
	}
	return target
}

// errorMessage hides internal failures from clients.
func errorMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
