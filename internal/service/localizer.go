// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/MKhiriev/go-locale-sync/internal/store"
	"github.com/MKhiriev/go-locale-sync/models"
)

// LocalizerConfig holds locale selection settings of a [Localizer].
type LocalizerConfig struct {
	DefaultLocale  string
	FallbackLocale string
	StorageKey     string
}

type localizer struct {
	store  *LocaleStore
	engine SyncEngine
	cache  store.PersistentCache
	keys   cacheKeys

	defaultLocale  string
	fallbackLocale string

	mu        sync.RWMutex
	current   string
	preferred string

	loading   atomic.Bool
	sequencer *bootstrapSequencer

	logger *logger.Logger
}

// NewLocalizer creates a [Localizer] reading from localeStore. Until
// Bootstrap completes it serves whatever localeStore holds under the default
// locale and reports IsLoading.
func NewLocalizer(cfg LocalizerConfig, localeStore *LocaleStore, engine SyncEngine, cache store.PersistentCache, logger *logger.Logger) Localizer {
	l := &localizer{
		store:          localeStore,
		engine:         engine,
		cache:          cache,
		keys:           newCacheKeys(cfg.StorageKey),
		defaultLocale:  cfg.DefaultLocale,
		fallbackLocale: cfg.FallbackLocale,
		current:        cfg.DefaultLocale,
		logger:         logger,
	}
	l.loading.Store(true)
	l.sequencer = newBootstrapSequencer(cache, localeStore, engine, l.keys, cfg.DefaultLocale, l.selectLocale, logger)

	if engine != nil {
		engine.OnApplied(l.onApplied)
	}

	return l
}

func (l *localizer) T(key string, params map[string]any) string {
	table := l.store.Snapshot()

	l.mu.RLock()
	current := l.current
	l.mu.RUnlock()

	return Resolve(table, current, l.fallbackLocale, key, params)
}

func (l *localizer) Locale() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

func (l *localizer) PreferredLocale() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.preferred
}

func (l *localizer) SetLocale(ctx context.Context, locale string) error {
	if !l.store.Has(locale) {
		l.logger.Warn().
			Str("func", "localizer.SetLocale").
			Str("locale", locale).
			Strs("available", l.store.Locales()).
			Msg("locale is not available, keeping current")
		return ErrLocaleNotAvailable
	}

	l.mu.Lock()
	l.current = locale
	l.preferred = locale
	l.mu.Unlock()

	if err := l.cache.Set(ctx, l.keys.preference, locale); err != nil {
		l.logger.Err(err).Str("func", "localizer.SetLocale").Str("locale", locale).Msg("failed to persist locale preference")
	}
	return nil
}

func (l *localizer) AvailableLocales() []string {
	return l.store.Locales()
}

func (l *localizer) IsLoading() bool {
	return l.loading.Load()
}

func (l *localizer) Refresh(ctx context.Context) (models.SyncResult, error) {
	if l.engine == nil {
		return models.SyncNoChange, ErrRemoteSyncDisabled
	}
	return l.engine.Reconcile(ctx, true)
}

func (l *localizer) Version() int64 {
	return l.store.Version()
}

func (l *localizer) Bootstrap(ctx context.Context) error {
	if err := l.sequencer.Run(ctx); err != nil {
		return err
	}

	l.loading.Store(false)
	l.logger.Info().
		Str("locale", l.Locale()).
		Str("preferred", l.PreferredLocale()).
		Int64("version", l.Version()).
		Msg("localizer is ready")
	return nil
}

func (l *localizer) State() models.BootstrapState {
	return l.sequencer.State()
}

// selectLocale remembers preference and makes it effective when the table
// already has it.
func (l *localizer) selectLocale(preference string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.preferred = preference
	if preference != "" && l.store.Has(preference) {
		l.current = preference
		return
	}
	l.current = l.defaultLocale
	if preference != "" && preference != l.defaultLocale {
		l.logger.Info().Str("preferred", preference).Str("locale", l.current).Msg("preferred locale not available yet")
	}
}

// onApplied re-evaluates the effective locale against a freshly installed
// table.
func (l *localizer) onApplied(int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.preferred != "" && l.preferred != l.current && l.store.Has(l.preferred):
		l.logger.Info().Str("locale", l.preferred).Msg("preferred locale became available")
		l.current = l.preferred
	case !l.store.Has(l.current):
		l.current = l.defaultLocale
	}
}
