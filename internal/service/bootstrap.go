package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/MKhiriev/go-locale-sync/internal/store"
	"github.com/MKhiriev/go-locale-sync/models"
)

// bootstrapSequencer drives the startup sequence
// Start → LoadPreference → LoadCachedTable → ReconcileVersion → Ready.
// States only move forward and each one is entered exactly once.
type bootstrapSequencer struct {
	cache  store.PersistentCache
	store  *LocaleStore
	engine SyncEngine
	keys   cacheKeys

	defaultLocale string
	// selectLocale receives the loaded preference once the cached table is in
	// place and decides the effective locale.
	selectLocale func(preference string)

	logger *logger.Logger

	mu    sync.RWMutex
	state models.BootstrapState
}

func newBootstrapSequencer(cache store.PersistentCache, localeStore *LocaleStore, engine SyncEngine, keys cacheKeys, defaultLocale string, selectLocale func(string), logger *logger.Logger) *bootstrapSequencer {
	return &bootstrapSequencer{
		cache:         cache,
		store:         localeStore,
		engine:        engine,
		keys:          keys,
		defaultLocale: defaultLocale,
		selectLocale:  selectLocale,
		logger:        logger,
		state:         models.BootstrapStart,
	}
}

func (b *bootstrapSequencer) State() models.BootstrapState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// advance moves the machine to the state right after the current one.
func (b *bootstrapSequencer) advance(to models.BootstrapState) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if to != b.state+1 {
		return fmt.Errorf("bootstrap: invalid transition %s -> %s", b.state, to)
	}
	b.logger.Debug().Str("from", b.state.String()).Str("to", to.String()).Msg("bootstrap transition")
	b.state = to
	return nil
}

// Run executes the whole sequence. Cache and remote failures are logged and
// never stop it from reaching Ready. A second call returns
// [ErrAlreadyBootstrapped].
func (b *bootstrapSequencer) Run(ctx context.Context) error {
	if err := b.advance(models.BootstrapLoadPreference); err != nil {
		return ErrAlreadyBootstrapped
	}
	preference := b.loadPreference(ctx)

	if err := b.advance(models.BootstrapLoadCachedTable); err != nil {
		return err
	}
	tableLoaded, cachedVersion := b.loadCachedTable(ctx)
	b.selectLocale(preference)

	if err := b.advance(models.BootstrapReconcileVersion); err != nil {
		return err
	}
	if b.engine != nil && b.engine.Enabled() {
		// a version mirrored without a usable table would otherwise hide the
		// remote data until the remote version moves again
		force := !tableLoaded && cachedVersion > 0
		if _, err := b.engine.Reconcile(ctx, force); err != nil {
			b.logger.Warn().Err(err).Str("func", "bootstrapSequencer.Run").Msg("initial reconcile failed, serving cached translations")
		}
	}

	return b.advance(models.BootstrapReady)
}

// loadPreference returns the saved locale or the default one.
func (b *bootstrapSequencer) loadPreference(ctx context.Context) string {
	preference, found, err := b.cache.Get(ctx, b.keys.preference)
	if err != nil {
		b.logger.Warn().Err(errors.Join(ErrCacheRead, err)).Str("key", b.keys.preference).Msg("locale preference unreadable, using default")
		return b.defaultLocale
	}
	if !found || preference == "" {
		return b.defaultLocale
	}
	return preference
}

// loadCachedTable installs the cached table and version when the table is
// present and decodes to at least one locale. It reports whether it did and
// the version found in the cache.
func (b *bootstrapSequencer) loadCachedTable(ctx context.Context) (bool, int64) {
	var version int64
	rawVersion, found, err := b.cache.Get(ctx, b.keys.version)
	switch {
	case err != nil:
		b.logger.Warn().Err(errors.Join(ErrCacheRead, err)).Str("key", b.keys.version).Msg("cached version unreadable")
	case found:
		v, ok := parseLocalVersion(rawVersion)
		if !ok {
			b.logger.Warn().Err(ErrCacheRead).Str("key", b.keys.version).Str("value", rawVersion).Msg("cached version malformed")
		}
		version = v
	}

	rawTable, found, err := b.cache.Get(ctx, b.keys.table)
	if err != nil {
		b.logger.Warn().Err(errors.Join(ErrCacheRead, err)).Str("key", b.keys.table).Msg("cached translations unreadable, keeping bundle")
		return false, version
	}
	if !found {
		return false, version
	}

	var table models.LocaleTable
	if err = json.Unmarshal([]byte(rawTable), &table); err != nil {
		b.logger.Warn().Err(errors.Join(ErrCacheRead, err)).Str("key", b.keys.table).Msg("cached translations corrupt, keeping bundle")
		return false, version
	}
	if len(table) == 0 {
		return false, version
	}

	b.store.Replace(table, version)
	b.logger.Debug().
		Strs("locales", table.Locales()).
		Int64("version", version).
		Msg("cached translations loaded")

	return true, version
}
