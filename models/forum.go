// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ForumAccount is the subset of a forum user record this service reads.
type ForumAccount struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Active     bool   `json:"active"`
	ExternalID string `json:"external_id,omitempty"`
}

// CreateAccountRequest is the body of POST /users.json.
type CreateAccountRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Active     bool   `json:"active"`
	ExternalID string `json:"external_id"`

	// SuppressWelcomeMessage keeps the forum from mailing users whose
	// accounts are provisioned by sync.
	SuppressWelcomeMessage bool `json:"suppress_welcome_message"`
}

// CreateAccountResult is the decoded answer to a create call.
//
// The forum can answer 200 with success=false, so HTTP status alone is not
// a success signal. See [CreateAccountResult.Succeeded].
type CreateAccountResult struct {
	Success *bool  `json:"success,omitempty"`
	ID      *int64 `json:"id,omitempty"`
	UserID  *int64 `json:"user_id,omitempty"`
	Active  bool   `json:"active"`
	Message string `json:"message,omitempty"`
}

// RemoteID returns the id of the created account, preferring "id" over the
// older "user_id" field.
func (r CreateAccountResult) RemoteID() (int64, bool) {
	switch {
	case r.ID != nil:
		return *r.ID, true
	case r.UserID != nil:
		return *r.UserID, true
	default:
		return 0, false
	}
}

// Succeeded reports whether the forum accepted the account: only an explicit
// success=true or the presence of a new-record id counts.
func (r CreateAccountResult) Succeeded() bool {
	if r.Success != nil && *r.Success {
		return true
	}
	_, ok := r.RemoteID()
	return ok
}

// UpdateAccountRequest is the body of PUT /admin/users/{id}.json.
type UpdateAccountRequest struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// DeleteOptions are the query flags of DELETE /admin/users/{id}.json.
type DeleteOptions struct {
	BlockEmail  bool
	BlockURLs   bool
	DeletePosts bool
}

// DefaultDeleteOptions blocks the email and urls of the deleted account and
// keeps its posts.
func DefaultDeleteOptions() DeleteOptions {
	return DeleteOptions{BlockEmail: true, BlockURLs: true, DeletePosts: false}
}
