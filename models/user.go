// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// LocalUser is the account record owned by the host application.
// It is the authoritative identity in every sync and SSO flow; data coming
// back from the forum never overwrites it.
type LocalUser struct {
	// ID is the host application's unique user identifier. Its decimal form
	// is sent to the forum as the cross-system external id.
	ID int64 `json:"id"`

	// Username is the login name, mirrored as the forum username.
	Username string `json:"username"`

	// Email may be empty; the sync engine substitutes a placeholder
	// because the forum rejects accounts without one.
	Email string `json:"email"`

	// DisplayName is the human readable name (first + last name on the
	// host side). Falls back to Username when empty, see [LocalUser.Name].
	DisplayName string `json:"display_name"`

	// Active mirrors the host's "is active" flag.
	Active bool `json:"active"`

	// Privileged marks staff and admin accounts. Privileged users are
	// excluded from every sync and SSO flow.
	Privileged bool `json:"privileged"`
}

// TableName returns the name of the database table
// associated with the LocalUser model.
func (u LocalUser) TableName() string {
	return "users"
}

// ExternalID returns the id the forum stores for this user.
func (u LocalUser) ExternalID() string {
	return strconv.FormatInt(u.ID, 10)
}

// Name returns the display name, or the username when no display name is set.
func (u LocalUser) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
