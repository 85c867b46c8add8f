// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-locale-sync/internal/adapter"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/MKhiriev/go-locale-sync/internal/store"
	"github.com/MKhiriev/go-locale-sync/internal/utils"
	"github.com/MKhiriev/go-locale-sync/models"
)

// SyncEngineConfig holds the remote paths and switches of a [SyncEngine].
type SyncEngineConfig struct {
	StorageKey       string
	TranslationsPath string
	VersionPath      string
	Disabled         bool
}

type syncEngine struct {
	remote adapter.RemoteSource
	cache  store.PersistentCache
	store  *LocaleStore

	keys             cacheKeys
	translationsPath string
	versionPath      string
	disabled         bool

	ids    *utils.UUIDGenerator
	logger *logger.Logger

	// mu serializes Reconcile.
	mu sync.Mutex

	listenersMu sync.RWMutex
	listeners   []func(version int64)
}

// NewSyncEngine creates a [SyncEngine] writing into localeStore. remote may
// be nil when cfg.Disabled is set.
func NewSyncEngine(cfg SyncEngineConfig, remote adapter.RemoteSource, cache store.PersistentCache, localeStore *LocaleStore, logger *logger.Logger) SyncEngine {
	return &syncEngine{
		remote:           remote,
		cache:            cache,
		store:            localeStore,
		keys:             newCacheKeys(cfg.StorageKey),
		translationsPath: cfg.TranslationsPath,
		versionPath:      cfg.VersionPath,
		disabled:         cfg.Disabled || remote == nil,
		ids:              utils.NewUUIDGenerator(),
		logger:           logger,
	}
}

func (e *syncEngine) Enabled() bool {
	return !e.disabled
}

func (e *syncEngine) OnApplied(fn func(version int64)) {
	if fn == nil {
		return
	}

	e.listenersMu.Lock()
	defer e.listenersMu.Unlock()
	e.listeners = append(e.listeners, fn)
}

func (e *syncEngine) Reconcile(ctx context.Context, force bool) (models.SyncResult, error) {
	if e.disabled {
		return models.SyncNoChange, ErrRemoteSyncDisabled
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	syncID := e.ids.Generate()
	log := e.logger.With().
		Str("sync_id", syncID).
		Bool("force", force).
		Logger()
	ctx = log.WithContext(utils.WithSyncID(ctx, syncID))

	result, version, err := e.reconcile(ctx, &log, force)

	event := log.Info()
	if err != nil {
		event = log.Warn().Err(err)
	}
	event.Str("func", "syncEngine.Reconcile").
		Stringer("result", result).
		Int64("version", version).
		Msg("reconcile finished")

	return result, err
}

func (e *syncEngine) reconcile(ctx context.Context, log *zerolog.Logger, force bool) (models.SyncResult, int64, error) {
	rawVersion, err := e.remote.Read(ctx, e.versionPath)
	if err != nil {
		return models.SyncFailed, 0, fmt.Errorf("%w: version: %w", ErrTransientFetch, err)
	}
	remote := parseRemoteVersion(rawVersion)
	local := e.localVersion(ctx, log)

	log.Debug().Int64("remote_version", remote).Int64("local_version", local).Msg("versions compared")

	if !force && remote <= local {
		return models.SyncNoChange, local, nil
	}

	rawDoc, err := e.remote.Read(ctx, e.translationsPath)
	if err != nil {
		return models.SyncFailed, local, fmt.Errorf("%w: translations: %w", ErrTransientFetch, err)
	}

	table, err := Reshape(rawDoc)
	if err != nil {
		return models.SyncFailed, local, err
	}

	version := max(remote, local)
	e.store.Replace(table, version)
	e.notify(version)

	encoded, err := json.Marshal(table)
	if err != nil {
		return models.SyncFailed, local, fmt.Errorf("%w: encode table: %w", ErrCacheWrite, err)
	}
	if err = e.cache.Set(ctx, e.keys.table, string(encoded)); err != nil {
		return models.SyncFailed, local, fmt.Errorf("%w: table: %w", ErrCacheWrite, err)
	}
	// the version goes second so a crash in between only causes a re-apply
	if err = e.cache.Set(ctx, e.keys.version, formatVersion(version)); err != nil {
		return models.SyncFailed, local, fmt.Errorf("%w: version: %w", ErrCacheWrite, err)
	}

	log.Debug().
		Strs("locales", table.Locales()).
		Int64("version", version).
		Msg("translations applied")

	return models.SyncApplied, version, nil
}

// localVersion returns the persisted version, or 0 when it is absent,
// unreadable or malformed.
func (e *syncEngine) localVersion(ctx context.Context, log *zerolog.Logger) int64 {
	raw, found, err := e.cache.Get(ctx, e.keys.version)
	if err != nil {
		log.Warn().Err(errors.Join(ErrCacheRead, err)).Str("key", e.keys.version).Msg("local version unreadable, assuming 0")
		return 0
	}
	if !found {
		return 0
	}

	v, ok := parseLocalVersion(raw)
	if !ok {
		log.Warn().Err(ErrCacheRead).Str("key", e.keys.version).Str("value", raw).Msg("local version malformed, assuming 0")
		return 0
	}
	return v
}

func (e *syncEngine) notify(version int64) {
	e.listenersMu.RLock()
	listeners := append([]func(int64){}, e.listeners...)
	e.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(version)
	}
}
