// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goldram69/gemdjsso/internal/config"
	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) ForumAdapter {
	t.Helper()
	cfg := config.Adapter{
		ForumURL:       serverURL,
		APIKey:         "test-key",
		APIUsername:    "system",
		RequestTimeout: 2 * time.Second,
	}

	a, err := NewForumAdapter(cfg, nil, logger.Nop())
	require.NoError(t, err)
	return a
}

func int64Ptr(v int64) *int64 { return &v }

// ── NewForumAdapter ──────────────────────────────────────────────────────────

func TestNewForumAdapter_RejectsMissingSettings(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Adapter
	}{
		{name: "no url", cfg: config.Adapter{APIKey: "k", APIUsername: "system"}},
		{name: "no key", cfg: config.Adapter{ForumURL: "https://forum.example.com", APIUsername: "system"}},
		{name: "no username", cfg: config.Adapter{ForumURL: "https://forum.example.com", APIKey: "k"}},
		{name: "blank key", cfg: config.Adapter{ForumURL: "https://forum.example.com", APIKey: "  ", APIUsername: "system"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewForumAdapter(tt.cfg, nil, logger.Nop())
			assert.Nil(t, a)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("forum.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://forum.example.com", got)

	got, err = normalizeBaseURL("http://127.0.0.1:3000/")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:3000", got)

	_, err = normalizeBaseURL("   ")
	assert.Error(t, err)
}

// ── headers ─────────────────────────────────────────────────────────────────

func TestRequests_CarryAPIHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("Api-Key"))
		assert.Equal(t, "system", r.Header.Get("Api-Username"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":"OK"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.UpdateAccount(context.Background(), 5, models.UpdateAccountRequest{Email: "a@b.c", Name: "A", Active: true})
	require.NoError(t, err)
}

// ── CreateAccount ───────────────────────────────────────────────────────────

func TestCreateAccount_SuccessWithID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users.json", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "Alice", body["name"])
		assert.Equal(t, "42", body["external_id"])
		assert.Equal(t, true, body["active"])
		assert.Equal(t, true, body["suppress_welcome_message"])
		assert.NotEmpty(t, body["password"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"id":123,"active":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateAccount(context.Background(), models.CreateAccountRequest{
		Username:               "alice",
		Email:                  "alice@example.com",
		Name:                   "Alice",
		Password:               "pw",
		Active:                 true,
		ExternalID:             "42",
		SuppressWelcomeMessage: true,
	})

	require.NoError(t, err)
	id, ok := got.RemoteID()
	assert.True(t, ok)
	assert.Equal(t, int64(123), id)
}

func TestCreateAccount_SuccessWithoutID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateAccount(context.Background(), models.CreateAccountRequest{Username: "bob"})

	require.NoError(t, err)
	_, ok := got.RemoteID()
	assert.False(t, ok)
}

func TestCreateAccount_UserIDAlias(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user_id":77}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateAccount(context.Background(), models.CreateAccountRequest{Username: "bob"})

	require.NoError(t, err)
	id, ok := got.RemoteID()
	assert.True(t, ok)
	assert.Equal(t, int64(77), id)
}

func TestCreateAccount_SuccessFalseIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"Password is too short"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateAccount(context.Background(), models.CreateAccountRequest{Username: "bob"})

	require.Error(t, err)
	var apiErr *RemoteAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusOK, apiErr.Status)
	assert.ErrorIs(t, err, ErrCreateRejected)
	assert.False(t, IsAccountTaken(err))
	assert.Contains(t, err.Error(), "communication error")
}

func TestCreateAccount_TakenInSuccessFalse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"Primary email has already been taken"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateAccount(context.Background(), models.CreateAccountRequest{Username: "bob"})

	assert.ErrorIs(t, err, ErrCreateRejected)
	assert.True(t, IsAccountTaken(err))
}

func TestCreateAccount_TakenAs422(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors":["Username must be unique"]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateAccount(context.Background(), models.CreateAccountRequest{Username: "bob"})

	assert.ErrorIs(t, err, ErrUnprocessable)
	assert.True(t, IsAccountTaken(err))
	assert.Contains(t, err.Error(), "Username must be unique")
}

func TestCreateAccount_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateAccount(context.Background(), models.CreateAccountRequest{Username: "bob"})

	assert.ErrorIs(t, err, ErrMalformedResponse)
	var apiErr *RemoteAPIError
	assert.ErrorAs(t, err, &apiErr)
}

// ── UpdateAccount ───────────────────────────────────────────────────────────

func TestUpdateAccount_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/users/123.json", r.URL.Path)

		var body models.UpdateAccountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, models.UpdateAccountRequest{Email: "new@example.com", Name: "New", Active: false}, body)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.UpdateAccount(context.Background(), 123, models.UpdateAccountRequest{Email: "new@example.com", Name: "New", Active: false})
	require.NoError(t, err)
}

func TestUpdateAccount_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":["The requested URL or resource could not be found."]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.UpdateAccount(context.Background(), 9, models.UpdateAccountRequest{})

	assert.True(t, IsNotFound(err))
	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, opUpdateAccount, apiErr.Op)
}

func TestUpdateAccount_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.UpdateAccount(context.Background(), 9, models.UpdateAccountRequest{})

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "forum API communication error")
}

func TestUpdateAccount_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	err := a.UpdateAccount(context.Background(), 9, models.UpdateAccountRequest{})

	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.Contains(t, err.Error(), "communication error")
}

func TestUpdateAccount_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	a, err := NewForumAdapter(config.Adapter{
		ForumURL:       srv.URL,
		APIKey:         "k",
		APIUsername:    "system",
		RequestTimeout: 50 * time.Millisecond,
	}, nil, logger.Nop())
	require.NoError(t, err)

	err = a.UpdateAccount(context.Background(), 1, models.UpdateAccountRequest{})
	var apiErr *RemoteAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
}

// ── FindAccountByExternalID ─────────────────────────────────────────────────

func TestFindAccountByExternalID_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/by-external/42.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"user":{"id":555,"username":"alice","name":"Alice","active":true}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	acc, found, err := a.FindAccountByExternalID(context.Background(), "42")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(555), acc.ID)
	assert.Equal(t, "alice", acc.Username)
}

func TestFindAccountByExternalID_FlatBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":556,"username":"bob"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	acc, found, err := a.FindAccountByExternalID(context.Background(), "43")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(556), acc.ID)
}

func TestFindAccountByExternalID_NotFoundIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	acc, found, err := a.FindAccountByExternalID(context.Background(), "42")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, acc)
}

func TestFindAccountByExternalID_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":["You are not permitted to view the requested resource."]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, found, err := a.FindAccountByExternalID(context.Background(), "42")

	assert.False(t, found)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestFindAccountByExternalID_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"username":"ghost"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, found, err := a.FindAccountByExternalID(context.Background(), "42")

	assert.False(t, found)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

// ── DeleteAccount ───────────────────────────────────────────────────────────

func TestDeleteAccount_DefaultFlags(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/admin/users/123.json", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("block_email"))
		assert.Equal(t, "true", r.URL.Query().Get("block_urls"))
		assert.Equal(t, "false", r.URL.Query().Get("delete_posts"))
		_, _ = w.Write([]byte(`{"deleted":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteAccount(context.Background(), 123, models.DefaultDeleteOptions())
	require.NoError(t, err)
}

func TestDeleteAccount_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.DeleteAccount(context.Background(), 123, models.DefaultDeleteOptions())
	assert.True(t, IsNotFound(err))
}

// ── RemoteAPIError ──────────────────────────────────────────────────────────

func TestRemoteAPIError_Message(t *testing.T) {
	withStatus := &RemoteAPIError{Op: "update_account", Status: 502, Cause: ErrBadGateway}
	assert.Equal(t, "forum API communication error: update_account: status 502: bad gateway", withStatus.Error())

	transport := &RemoteAPIError{Op: "create_account", Cause: errors.New("dial tcp: refused")}
	assert.Equal(t, "forum API communication error: create_account: dial tcp: refused", transport.Error())
	assert.ErrorIs(t, withStatus, ErrBadGateway)
}

func TestCreateAccountResult_Succeeded(t *testing.T) {
	yes, no := true, false
	tests := []struct {
		name   string
		result models.CreateAccountResult
		want   bool
	}{
		{name: "success true", result: models.CreateAccountResult{Success: &yes}, want: true},
		{name: "id only", result: models.CreateAccountResult{ID: int64Ptr(1)}, want: true},
		{name: "user_id only", result: models.CreateAccountResult{UserID: int64Ptr(1)}, want: true},
		{name: "success false", result: models.CreateAccountResult{Success: &no}, want: false},
		{name: "empty", result: models.CreateAccountResult{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Succeeded())
		})
	}
}
