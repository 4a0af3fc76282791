// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncOutcome names what a single reconcile did.
type SyncOutcome string

const (
	SyncSkippedPrivileged SyncOutcome = "skipped_privileged"
	SyncSkippedInactive   SyncOutcome = "skipped_inactive"
	SyncCreated           SyncOutcome = "created"
	SyncCreatedNoID       SyncOutcome = "created_without_id"
	SyncLinked            SyncOutcome = "linked"
	SyncUpdated           SyncOutcome = "updated"
	SyncRecreated         SyncOutcome = "recreated"
	SyncDeactivated       SyncOutcome = "deactivated"
	SyncFailed            SyncOutcome = "failed"
)

// SyncResult describes the reconcile of one local user.
type SyncResult struct {
	LocalUserID int64       `json:"local_user_id"`
	Username    string      `json:"username"`
	Outcome     SyncOutcome `json:"outcome"`
	RemoteID    *int64      `json:"remote_id,omitempty"`
	Error       string      `json:"error,omitempty"`
}

// BatchReport summarises a ReconcileAll run. Failed users are listed in
// Results with Outcome == SyncFailed; they never stop the batch.
type BatchReport struct {
	StartedAt   time.Time    `json:"started_at"`
	CompletedAt time.Time    `json:"completed_at"`
	Total       int          `json:"total"`
	Failed      int          `json:"failed"`
	Results     []SyncResult `json:"results"`
}
