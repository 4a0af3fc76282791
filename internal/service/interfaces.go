package service

import (
	"context"

	"github.com/goldram69/gemdjsso/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and checks the local session token set after a
// successful SSO callback.
type AuthService interface {
	CreateToken(ctx context.Context, user models.LocalUser) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileSyncService mirrors local users into forum accounts.
type ProfileSyncService interface {
	// Reconcile brings the forum account of user in line with it, creating
	// or linking the account when needed.
	Reconcile(ctx context.Context, user models.LocalUser) (models.SyncResult, error)
	// ReconcileByID loads the user and calls Reconcile.
	ReconcileByID(ctx context.Context, localUserID int64) (models.SyncResult, error)

	// PushUpdate only updates an already linked account. It reports false,
	// without calling the forum, when the user has no known forum account.
	PushUpdate(ctx context.Context, user models.LocalUser) (bool, error)
	// PushUpdateByID loads the user and calls PushUpdate.
	PushUpdateByID(ctx context.Context, localUserID int64) (bool, error)

	// ReconcileAll reconciles every local user. A failing user is recorded
	// in the report and does not stop the others.
	ReconcileAll(ctx context.Context) (models.BatchReport, error)

	// HandleUserDeleted applies the configured delete policy.
	HandleUserDeleted(ctx context.Context, localUserID int64) error
}

// SSOService runs the DiscourseConnect handshake.
type SSOService interface {
	// Initiate stores a fresh nonce for browserSessionID and returns the
	// forum URL the browser must be redirected to.
	Initiate(ctx context.Context, browserSessionID string, localUserID int64, postLoginRedirect string) (string, error)
	// HandleCallback validates the forum's answer. Every rejection wraps
	// [ErrSSOValidation].
	HandleCallback(ctx context.Context, browserSessionID, sso, sig string) (models.SSOResult, error)
	// ForumURL is the forum base URL, used as post-login destination by
	// the forum link entry point.
	ForumURL() string
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
