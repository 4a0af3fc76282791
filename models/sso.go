// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SSOSession is the transient handshake state kept in the browser session
// between the outbound redirect and the forum's callback. It is read once.
type SSOSession struct {
	Nonce             string `json:"nonce"`
	LocalUserID       int64  `json:"local_user_id"`
	PostLoginRedirect string `json:"post_login_redirect,omitempty"`
}

// SSOPayload holds the key/value pairs carried inside the signed sso
// parameter.
type SSOPayload struct {
	Nonce        string
	ReturnSSOURL string
	Email        string
	ExternalID   string
	Username     string
	Name         string
}

// SSOResult is returned for a validated callback.
type SSOResult struct {
	// User is the re-resolved local user the handshake was started for.
	User LocalUser

	// RedirectURL is where the browser goes after the local session is set.
	RedirectURL string
}
