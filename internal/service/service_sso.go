// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/goldram69/gemdjsso/internal/config"
	"github.com/goldram69/gemdjsso/internal/logger"
	"github.com/goldram69/gemdjsso/internal/metrics"
	"github.com/goldram69/gemdjsso/internal/session"
	"github.com/goldram69/gemdjsso/internal/sso"
	"github.com/goldram69/gemdjsso/internal/store"
	"github.com/goldram69/gemdjsso/internal/utils"
	"github.com/goldram69/gemdjsso/models"
)

const nonceBytes = 32

const (
	ssoStageInitiate = "initiate"
	ssoStageCallback = "callback"
)

// ssoService is the concrete implementation of SSOService.
type ssoService struct {
	codec    *sso.Codec
	sessions session.Store
	users    store.UserRepository

	loginURL         string
	callbackURL      string
	loginRedirectURL string
	forumURL         string

	metrics *metrics.Metrics
	logger  *logger.Logger

	newNonce func() (string, error)
}

// NewSSOService builds the handshake service. It fails when the shared
// secret is empty.
func NewSSOService(
	sessions session.Store,
	users store.UserRepository,
	cfg config.StructuredConfig,
	m *metrics.Metrics,
	log *logger.Logger,
) (SSOService, error) {
	codec, err := sso.NewCodec(cfg.App.SSOSecret)
	if err != nil {
		return nil, err
	}

	redirect := cfg.App.LoginRedirectURL
	if redirect == "" {
		redirect = "/"
	}

	return &ssoService{
		codec:            codec,
		sessions:         sessions,
		users:            users,
		loginURL:         cfg.App.SSOLoginURL,
		callbackURL:      cfg.App.SSOCallbackURL,
		loginRedirectURL: redirect,
		forumURL:         cfg.Adapter.ForumURL,
		metrics:          m,
		logger:           log,
		newNonce: func() (string, error) {
			return utils.RandomHex(nonceBytes)
		},
	}, nil
}

// Initiate implements [SSOService].
func (s *ssoService) Initiate(ctx context.Context, browserSessionID string, localUserID int64, postLoginRedirect string) (string, error) {
	log := logger.FromContext(ctx)

	if browserSessionID == "" {
		s.metrics.RecordSSO(ssoStageInitiate, "no_session")
		return "", ErrMissingBrowserSession
	}

	user, err := s.users.GetUserByID(ctx, localUserID)
	if err != nil {
		s.metrics.RecordSSO(ssoStageInitiate, "user_not_found")
		if errors.Is(err, store.ErrUserNotFound) {
			return "", fmt.Errorf("%w: %d", ErrUserNotFound, localUserID)
		}
		return "", fmt.Errorf("loading user %d: %w", localUserID, err)
	}

	if user.Privileged {
		s.metrics.RecordSSO(ssoStageInitiate, "privileged")
		log.Warn().
			Str("func", "*ssoService.Initiate").
			Int64("local_user_id", user.ID).
			Msg("privileged user tried to start forum sso")
		return "", ErrPrivilegedUser
	}

	nonce, err := s.newNonce()
	if err != nil {
		return "", fmt.Errorf("generating sso nonce: %w", err)
	}

	pending := models.SSOSession{
		Nonce:             nonce,
		LocalUserID:       user.ID,
		PostLoginRedirect: postLoginRedirect,
	}
	if err = s.sessions.Save(ctx, browserSessionID, pending); err != nil {
		log.Err(err).Str("func", "*ssoService.Initiate").Msg("storing sso handshake failed")
		return "", fmt.Errorf("storing sso handshake: %w", err)
	}

	payload, sig := s.codec.Encode(models.SSOPayload{
		Nonce:        nonce,
		ReturnSSOURL: s.callbackURL,
		Email:        emailOrPlaceholder(user),
		ExternalID:   user.ExternalID(),
		Username:     user.Username,
		Name:         user.Name(),
	})

	redirectURL, err := sso.RedirectURL(s.loginURL, payload, sig)
	if err != nil {
		return "", err
	}

	s.metrics.RecordSSO(ssoStageInitiate, "ok")
	log.Info().
		Str("func", "*ssoService.Initiate").
		Int64("local_user_id", user.ID).
		Msg("forum sso started")

	return redirectURL, nil
}

// HandleCallback implements [SSOService].
//
// The pending handshake is popped only after the signature and encoding
// checks pass, so a forged callback cannot burn a legitimate one. Once
// popped it is gone whatever the outcome.
func (s *ssoService) HandleCallback(ctx context.Context, browserSessionID, payload, sig string) (models.SSOResult, error) {
	log := logger.FromContext(ctx)

	reject := func(reason string, cause error) (models.SSOResult, error) {
		s.metrics.RecordSSO(ssoStageCallback, reason)
		log.Warn().
			Str("func", "*ssoService.HandleCallback").
			Str("reason", reason).
			Msg(cause.Error())
		return models.SSOResult{}, fmt.Errorf("%w: %w", ErrSSOValidation, cause)
	}

	if payload == "" || sig == "" {
		return reject("missing_fields", ErrMissingSSOFields)
	}

	decoded, err := s.codec.Decode(payload, sig)
	switch {
	case errors.Is(err, sso.ErrInvalidSignature):
		return reject("invalid_signature", err)
	case err != nil:
		return reject("malformed_payload", err)
	}

	if browserSessionID == "" {
		return reject("no_pending_handshake", ErrNoPendingHandshake)
	}

	pending, ok, err := s.sessions.Pop(ctx, browserSessionID)
	if err != nil {
		log.Err(err).Str("func", "*ssoService.HandleCallback").Msg("reading sso handshake failed")
		return reject("no_pending_handshake", fmt.Errorf("%w: %w", ErrNoPendingHandshake, err))
	}
	if !ok || pending.Nonce == "" {
		return reject("no_pending_handshake", ErrNoPendingHandshake)
	}

	if decoded.Nonce != pending.Nonce {
		return reject("nonce_mismatch", ErrNonceMismatch)
	}

	if decoded.ExternalID != strconv.FormatInt(pending.LocalUserID, 10) {
		return reject("external_id_mismatch", ErrExternalIDMismatch)
	}

	user, err := s.users.GetUserByID(ctx, pending.LocalUserID)
	if err != nil {
		return reject("user_not_found", fmt.Errorf("%w: %w", ErrUserNotFound, err))
	}
	if user.Privileged {
		return reject("privileged", ErrPrivilegedUser)
	}

	redirect := pending.PostLoginRedirect
	if redirect == "" {
		redirect = s.loginRedirectURL
	}

	s.metrics.RecordSSO(ssoStageCallback, "ok")
	log.Info().
		Str("func", "*ssoService.HandleCallback").
		Int64("local_user_id", user.ID).
		Msg("forum sso validated")

	return models.SSOResult{User: user, RedirectURL: redirect}, nil
}

// ForumURL implements [SSOService].
func (s *ssoService) ForumURL() string {
	return s.forumURL
}
