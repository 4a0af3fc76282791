package http

import (
	"errors"
	"net/http"

	"github.com/goldram69/gemdjsso/internal/adapter"
	"github.com/goldram69/gemdjsso/internal/service"
	"github.com/goldram69/gemdjsso/internal/store"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusMap is checked in order; the first match wins. A privileged
// rejection also wraps service.ErrSSOValidation, so it comes first.
var errorStatusMap = []errorStatus{
	{service.ErrPrivilegedUser, http.StatusForbidden},
	{service.ErrSSOValidation, http.StatusBadRequest},
	{service.ErrMissingBrowserSession, http.StatusBadRequest},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrMappingNotFound, http.StatusNotFound},
	{store.ErrRemoteIDAlreadyClaimed, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}

	// the forum failed us; not the caller's fault
	var remoteErr *adapter.RemoteAPIError
	if errors.As(err, &remoteErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
