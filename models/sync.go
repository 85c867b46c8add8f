// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncResult is the outcome of a single reconcile run.
type SyncResult int

const (
	// SyncFailed means the run did not install new data. The persisted
	// version was not advanced, so the next run retries.
	SyncFailed SyncResult = iota
	// SyncNoChange means the remote version was not newer than the local one
	// and nothing was written.
	SyncNoChange
	// SyncApplied means a new table was installed and persisted together
	// with its version.
	SyncApplied
)

func (r SyncResult) String() string {
	switch r {
	case SyncApplied:
		return "applied"
	case SyncNoChange:
		return "no_change"
	default:
		return "failed"
	}
}
