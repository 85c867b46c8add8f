// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-locale-sync/models"
)

// SyncEngine keeps the in-memory table in line with the remote source.
type SyncEngine interface {
	// Reconcile compares the remote and locally persisted versions and, when
	// the remote one is newer or force is set, fetches, installs and persists
	// a new table. Calls are serialized.
	Reconcile(ctx context.Context, force bool) (models.SyncResult, error)

	// OnApplied registers fn to be called whenever a new table has been
	// installed in memory, with its version. fn runs synchronously inside
	// Reconcile and must not call it.
	OnApplied(fn func(version int64))

	// Enabled reports whether the engine may contact the remote source.
	Enabled() bool
}

// SyncJob re-runs reconciliation on remote change events and on a fallback
// timer.
type SyncJob interface {
	// Start subscribes to the version path and arms the timer. A running job
	// is stopped first.
	Start(ctx context.Context)

	// Stop tears the subscription and the timer down together and waits for
	// the worker to exit. Safe to call when the job is not running.
	Stop()
}

// Localizer is the public read surface of the runtime.
type Localizer interface {
	// T resolves key under the effective locale. It never fails: a missing
	// translation is returned as the key itself.
	T(key string, params map[string]any) string

	// Locale returns the effective locale.
	Locale() string

	// PreferredLocale returns the locale requested by the user, which may not
	// be available yet.
	PreferredLocale() string

	// SetLocale switches the effective locale and persists the preference.
	SetLocale(ctx context.Context, locale string) error

	// AvailableLocales returns the locales of the current table, sorted.
	AvailableLocales() []string

	// IsLoading reports whether bootstrap has not reached Ready yet.
	IsLoading() bool

	// Refresh forces a reconcile regardless of version.
	Refresh(ctx context.Context) (models.SyncResult, error)

	// Version returns the version of the installed table.
	Version() int64

	// Bootstrap runs the startup sequence once.
	Bootstrap(ctx context.Context) error

	// State returns the bootstrap step reached so far.
	State() models.BootstrapState
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
