// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BootstrapState is a step of the startup sequence. States only move
// forward: Start → LoadPreference → LoadCachedTable → ReconcileVersion → Ready.
type BootstrapState int

const (
	BootstrapStart BootstrapState = iota
	BootstrapLoadPreference
	BootstrapLoadCachedTable
	BootstrapReconcileVersion
	BootstrapReady
)

func (s BootstrapState) String() string {
	switch s {
	case BootstrapStart:
		return "start"
	case BootstrapLoadPreference:
		return "load_preference"
	case BootstrapLoadCachedTable:
		return "load_cached_table"
	case BootstrapReconcileVersion:
		return "reconcile_version"
	case BootstrapReady:
		return "ready"
	default:
		return "unknown"
	}
}
