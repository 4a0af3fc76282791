// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProfileMapping links a [LocalUser] to its forum account.
//
// There is at most one mapping per local user, and a non-nil RemoteID is
// unique across all mappings: two local users can never claim the same
// forum account.
type ProfileMapping struct {
	// LocalUserID references LocalUser.ID (one-to-one).
	LocalUserID int64 `json:"local_user_id"`

	// RemoteID is the forum account id. Nil means the account is not yet
	// known to exist on the forum.
	RemoteID *int64 `json:"remote_id,omitempty"`

	// LastSyncedAt is nil until the first successful sync.
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the ProfileMapping model.
func (m ProfileMapping) TableName() string {
	return "forum_profiles"
}

// HasRemote reports whether the mapping points at a known forum account.
func (m ProfileMapping) HasRemote() bool {
	return m.RemoteID != nil
}

// SetRemoteID stores a copy of id as the mapping's remote id.
func (m *ProfileMapping) SetRemoteID(id int64) {
	m.RemoteID = &id
}

// ClearRemoteID forgets the forum account id.
func (m *ProfileMapping) ClearRemoteID() {
	m.RemoteID = nil
}

// MarkSynced records t (in UTC) as the last successful sync time.
func (m *ProfileMapping) MarkSynced(t time.Time) {
	utc := t.UTC()
	m.LastSyncedAt = &utc
}
