// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication and hook middlewares. Callers can
// match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries
	// neither an "Authorization" header nor a session token cookie.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the token part of the header is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrMissingHookSignature is returned when a hook request has no
	// HashSHA256 header.
	ErrMissingHookSignature = errors.New("missing `HashSHA256` header")

	// ErrInvalidHookSignature is returned when the HashSHA256 header does
	// not match the request body.
	ErrInvalidHookSignature = errors.New("hook signature mismatch")

	// ErrInvalidHookBody is returned for hook bodies without a positive
	// user_id.
	ErrInvalidHookBody = errors.New("hook body must carry a positive user_id")
)
