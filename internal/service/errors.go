package service

import (
	"errors"

	"github.com/goldram69/gemdjsso/internal/sso"
)

var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrInvalidPolicy           = errors.New("invalid sync policy")
)

// ErrSSOValidation is wrapped by every rejected handshake. Rejections are
// terminal and never retried.
var ErrSSOValidation = errors.New("sso validation failed")

// Handshake rejection reasons.
var (
	ErrMissingSSOFields      = errors.New("missing sso payload or signature")
	ErrInvalidSignature      = sso.ErrInvalidSignature
	ErrMalformedPayload      = sso.ErrMalformedPayload
	ErrNoPendingHandshake    = errors.New("no pending sso handshake for this session")
	ErrNonceMismatch         = errors.New("sso nonce mismatch")
	ErrExternalIDMismatch    = errors.New("sso external id mismatch")
	ErrUserNotFound          = errors.New("user not found")
	ErrPrivilegedUser        = errors.New("privileged users cannot use forum sso")
	ErrMissingBrowserSession = errors.New("missing browser session")
)

// ErrUserNotLinked is returned by sync operations that need a forum
// account the user does not have yet.
var ErrUserNotLinked = errors.New("user has no forum account")
