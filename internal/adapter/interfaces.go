// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client for the forum's administrative REST API.
//
// [ForumAdapter] is a thin payload shaper: it performs no retries and keeps
// no state beyond its configured HTTP client. Every failure to obtain a
// usable answer is reported as a [*RemoteAPIError]; status classes such as
// [ErrNotFound] are wrapped inside it for [errors.Is].
package adapter

import (
	"context"

	"github.com/goldram69/gemdjsso/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/forum_adapter_mock.go -package=mock

// ForumAdapter performs the forum account operations used by the sync
// engine.
type ForumAdapter interface {
	// CreateAccount issues POST /users.json. A 2xx answer that carries
	// neither success=true nor an id is returned as an error wrapping
	// [ErrCreateRejected] (and [ErrAccountTaken] when the message says
	// the account exists).
	CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.CreateAccountResult, error)

	// UpdateAccount issues PUT /admin/users/{id}.json. A missing account
	// is reported as an error wrapping [ErrNotFound].
	UpdateAccount(ctx context.Context, remoteID int64, req models.UpdateAccountRequest) error

	// FindAccountByExternalID issues GET /users/by-external/{id}.json.
	// A 404 is not an error: it returns found == false.
	FindAccountByExternalID(ctx context.Context, externalID string) (account models.ForumAccount, found bool, err error)

	// DeleteAccount issues DELETE /admin/users/{id}.json with the block
	// flags of opts.
	DeleteAccount(ctx context.Context, remoteID int64, opts models.DeleteOptions) error
}
