package http

import (
	"encoding/json"
	"net/http"

	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/utils"
)

// hookRequest is the body of the per-user lifecycle hooks.
type hookRequest struct {
	UserID int64 `json:"user_id"`
}

// updateResponse answers the update hook. Updated is false when the user
// has no known forum account yet.
type updateResponse struct {
	Updated bool `json:"updated"`
}

func decodeHookRequest(w http.ResponseWriter, r *http.Request) (hookRequest, bool) {
	log := logger.FromRequest(r)

	var req hookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return req, false
	}
	if req.UserID <= 0 {
		log.Err(ErrInvalidHookBody).Send()
		utils.WriteError(w, ErrInvalidHookBody.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

// syncUser reconciles one user. A sync failure is reported in the body
// with the matching status and never escapes the request.
func (h *Handler) syncUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeHookRequest(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	result, err := h.services.ProfileSyncService.ReconcileByID(r.Context(), req.UserID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.syncUser").Int64("local_user_id", req.UserID).Int("status", status).Msg("sync hook failed")
		if result.Outcome == "" {
			utils.WriteError(w, errorMessage(err, status), status)
			return
		}
		utils.WriteJSON(w, result, status)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeHookRequest(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	updated, err := h.services.ProfileSyncService.PushUpdateByID(r.Context(), req.UserID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.updateUser").Int64("local_user_id", req.UserID).Int("status", status).Msg("update hook failed")
		utils.WriteError(w, errorMessage(err, status), status)
		return
	}

	utils.WriteJSON(w, updateResponse{Updated: updated}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeHookRequest(w, r)
	if !ok {
		return
	}
	log := logger.FromRequest(r)

	if err := h.services.ProfileSyncService.HandleUserDeleted(r.Context(), req.UserID); err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.deleteUser").Int64("local_user_id", req.UserID).Int("status", status).Msg("delete hook failed")
		utils.WriteError(w, errorMessage(err, status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// syncAll reconciles every user and returns the batch report. Per-user
// failures are inside the report; only a failure to list users is an
// error status.
func (h *Handler) syncAll(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	report, err := h.services.ProfileSyncService.ReconcileAll(r.Context())
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.syncAll").Int("status", status).Msg("sync-all hook failed")
		utils.WriteError(w, errorMessage(err, status), status)
		return
	}

	log.Info().Str("func", "*Handler.syncAll").Int("total", report.Total).Int("failed", report.Failed).Msg("batch reconcile finished")
	utils.WriteJSON(w, report, http.StatusOK)
}
