// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-locale-sync/internal/adapter"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/MKhiriev/go-locale-sync/internal/mock"
	"github.com/MKhiriev/go-locale-sync/models"
)

var testLocalizerConfig = LocalizerConfig{
	DefaultLocale:  "en",
	FallbackLocale: "en",
	StorageKey:     testStorageKey,
}

var testBundle = models.LocaleTable{
	"en": {"hello": "Hello", "menu": map[string]any{"file": "File"}},
}

type localizerFixture struct {
	localizer Localizer
	store     *LocaleStore
	cache     *recordingCache
}

// newLocalizerFixture собирает localizer поверх настоящего движка. remote
// может быть nil, тогда синхронизация выключена.
func newLocalizerFixture(t *testing.T, remote adapter.RemoteSource, bundle models.LocaleTable) localizerFixture {
	t.Helper()

	cache := newRecordingCache()
	localeStore := NewLocaleStore(bundle)
	engine := NewSyncEngine(testEngineConfig, remote, cache, localeStore, logger.Nop())

	return localizerFixture{
		localizer: NewLocalizer(testLocalizerConfig, localeStore, engine, cache, logger.Nop()),
		store:     localeStore,
		cache:     cache,
	}
}

func (f localizerFixture) seed(t *testing.T, key, value string) {
	t.Helper()
	require.NoError(t, f.cache.MemoryCache.Set(context.Background(), key, value))
}

// ─────────────────────────────────────────────
// До Bootstrap
// ─────────────────────────────────────────────

func TestLocalizer_BeforeBootstrap(t *testing.T) {
	f := newLocalizerFixture(t, nil, testBundle)

	assert.True(t, f.localizer.IsLoading())
	assert.Equal(t, models.BootstrapStart, f.localizer.State())
	assert.Equal(t, "en", f.localizer.Locale())
	assert.Equal(t, "", f.localizer.PreferredLocale())
	// бандл доступен сразу
	assert.Equal(t, "File", f.localizer.T("menu.file", nil))
	assert.Equal(t, "missing.key", f.localizer.T("missing.key", nil))
}

// ─────────────────────────────────────────────
// Bootstrap
// ─────────────────────────────────────────────

func TestLocalizer_Bootstrap_OfflineFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	remote.EXPECT().Read(gomock.Any(), testVersionPath).Return(nil, errors.New("no network"))

	f := newLocalizerFixture(t, remote, testBundle)
	f.seed(t, testTableKey, `{"en": {"hello": "Cached hello"}, "tr": {"hello": "Merhaba"}}`)
	f.seed(t, testVersionKey, "5")

	require.NoError(t, f.localizer.Bootstrap(context.Background()))

	assert.Equal(t, models.BootstrapReady, f.localizer.State())
	assert.False(t, f.localizer.IsLoading())
	assert.Equal(t, int64(5), f.localizer.Version())
	assert.Equal(t, "Cached hello", f.localizer.T("hello", nil))
	assert.Equal(t, []string{"en", "tr"}, f.localizer.AvailableLocales())
	// кэш заменяет бандл целиком
	assert.Equal(t, "menu.file", f.localizer.T("menu.file", nil))
	assert.Empty(t, f.cache.writes())
}

func TestLocalizer_Bootstrap_NoCache_ReconcilesFromRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	expectRemote(remote, `2`, `{"hello": {"en": "Remote hello", "tr": "Uzak merhaba"}}`)

	f := newLocalizerFixture(t, remote, testBundle)

	require.NoError(t, f.localizer.Bootstrap(context.Background()))

	assert.Equal(t, "Remote hello", f.localizer.T("hello", nil))
	assert.Equal(t, int64(2), f.localizer.Version())
	assert.Equal(t, "2", f.cache.mustGet(t, testVersionKey))
}

func TestLocalizer_Bootstrap_SyncDisabled_NoRemoteContact(t *testing.T) {
	f := newLocalizerFixture(t, nil, testBundle)
	f.seed(t, testStorageKey, "en")

	require.NoError(t, f.localizer.Bootstrap(context.Background()))

	assert.Equal(t, models.BootstrapReady, f.localizer.State())
	assert.False(t, f.localizer.IsLoading())
	assert.Equal(t, "Hello", f.localizer.T("hello", nil))
}

func TestLocalizer_Bootstrap_Twice(t *testing.T) {
	f := newLocalizerFixture(t, nil, testBundle)

	require.NoError(t, f.localizer.Bootstrap(context.Background()))
	err := f.localizer.Bootstrap(context.Background())

	assert.ErrorIs(t, err, ErrAlreadyBootstrapped)
	assert.Equal(t, models.BootstrapReady, f.localizer.State())
}

func TestLocalizer_Bootstrap_CorruptCache_KeepsBundle(t *testing.T) {
	tests := []struct {
		name  string
		table string
	}{
		{name: "not json", table: `{"en": `},
		{name: "wrong shape", table: `{"en": "flat"}`},
		{name: "empty", table: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLocalizerFixture(t, nil, testBundle)
			f.seed(t, testTableKey, tt.table)
			f.seed(t, testVersionKey, "3")

			require.NoError(t, f.localizer.Bootstrap(context.Background()))

			assert.Equal(t, "Hello", f.localizer.T("hello", nil))
			assert.Equal(t, int64(0), f.localizer.Version())
			assert.Equal(t, models.BootstrapReady, f.localizer.State())
		})
	}
}

func TestLocalizer_Bootstrap_CorruptCacheWithVersion_ForcesFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	// remote == local, без force документ бы не запросили
	remote.EXPECT().Read(gomock.Any(), testVersionPath).Return(json.RawMessage(`3`), nil)
	remote.EXPECT().Read(gomock.Any(), testTablePath).Return(json.RawMessage(`{"hello": {"en": "Fresh"}}`), nil)

	f := newLocalizerFixture(t, remote, testBundle)
	f.seed(t, testTableKey, `garbage`)
	f.seed(t, testVersionKey, "3")

	require.NoError(t, f.localizer.Bootstrap(context.Background()))

	assert.Equal(t, "Fresh", f.localizer.T("hello", nil))
	assert.Equal(t, int64(3), f.localizer.Version())
}

func TestLocalizer_Bootstrap_CacheReadErrors_StillReady(t *testing.T) {
	f := newLocalizerFixture(t, nil, testBundle)
	f.cache.failGet[testStorageKey] = errors.New("locked")
	f.cache.failGet[testTableKey] = errors.New("locked")
	f.cache.failGet[testVersionKey] = errors.New("locked")

	require.NoError(t, f.localizer.Bootstrap(context.Background()))

	assert.Equal(t, "en", f.localizer.Locale())
	assert.Equal(t, "en", f.localizer.PreferredLocale())
	assert.Equal(t, "Hello", f.localizer.T("hello", nil))
	assert.False(t, f.localizer.IsLoading())
}

// ─────────────────────────────────────────────
// Предпочтительная локаль
// ─────────────────────────────────────────────

func TestLocalizer_Bootstrap_PreferenceAvailable(t *testing.T) {
	f := newLocalizerFixture(t, nil, testBundle)
	f.seed(t, testStorageKey, "tr")
	f.seed(t, testTableKey, `{"en": {"hello": "Hello"}, "tr": {"hello": "Merhaba"}}`)

	require.NoError(t, f.localizer.Bootstrap(context.Background()))

	assert.Equal(t, "tr", f.localizer.Locale())
	assert.Equal(t, "Merhaba", f.localizer.T("hello", nil))
}

func TestLocalizer_PreferenceAdoptedAfterReconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	remote.EXPECT().Read(gomock.Any(), testVersionPath).Return(nil, errors.New("offline"))

	f := newLocalizerFixture(t, remote, testBundle)
	f.seed(t, testStorageKey, "tr")

	require.NoError(t, f.localizer.Bootstrap(context.Background()))

	// tr ещё нет: работаем на локали по умолчанию, но предпочтение помним
	assert.Equal(t, "en", f.localizer.Locale())
	assert.Equal(t, "tr", f.localizer.PreferredLocale())
	assert.Equal(t, "Hello", f.localizer.T("hello", nil))

	remote.EXPECT().Read(gomock.Any(), testVersionPath).Return(json.RawMessage(`1`), nil)
	remote.EXPECT().Read(gomock.Any(), testTablePath).Return(json.RawMessage(`{"hello": {"en": "Hello", "tr": "Merhaba"}}`), nil)

	result, err := f.localizer.Refresh(context.Background())
	require.NoError(t, err)
	require.Equal(t, models.SyncApplied, result)

	assert.Equal(t, "tr", f.localizer.Locale())
	assert.Equal(t, "Merhaba", f.localizer.T("hello", nil))
}

func TestLocalizer_CurrentLocaleRemoved_FallsBackToDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	remote.EXPECT().Read(gomock.Any(), testVersionPath).Return(json.RawMessage(`1`), nil)
	remote.EXPECT().Read(gomock.Any(), testTablePath).Return(json.RawMessage(`{"hello": {"en": "Hello"}}`), nil)

	f := newLocalizerFixture(t, remote, models.LocaleTable{"en": {}, "de": {"hello": "Hallo"}})
	require.NoError(t, f.localizer.SetLocale(context.Background(), "de"))

	_, err := f.localizer.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "en", f.localizer.Locale())
	assert.Equal(t, "de", f.localizer.PreferredLocale())
}

// ─────────────────────────────────────────────
// SetLocale
// ─────────────────────────────────────────────

func TestLocalizer_SetLocale(t *testing.T) {
	f := newLocalizerFixture(t, nil, models.LocaleTable{"en": {"hello": "Hello"}, "tr": {"hello": "Merhaba"}})

	require.NoError(t, f.localizer.SetLocale(context.Background(), "tr"))

	assert.Equal(t, "tr", f.localizer.Locale())
	assert.Equal(t, "tr", f.localizer.PreferredLocale())
	assert.Equal(t, "Merhaba", f.localizer.T("hello", nil))
	assert.Equal(t, "tr", f.cache.mustGet(t, testStorageKey))
}

func TestLocalizer_SetLocale_NotAvailable(t *testing.T) {
	f := newLocalizerFixture(t, nil, testBundle)

	err := f.localizer.SetLocale(context.Background(), "fr")

	assert.ErrorIs(t, err, ErrLocaleNotAvailable)
	assert.Equal(t, "en", f.localizer.Locale())
	assert.Equal(t, "", f.localizer.PreferredLocale())
	assert.Empty(t, f.cache.writes(), "недоступная локаль не должна сохраняться")
}

func TestLocalizer_SetLocale_PersistFailure_IsNotReturned(t *testing.T) {
	f := newLocalizerFixture(t, nil, models.LocaleTable{"en": {}, "tr": {}})
	f.cache.failSet[testStorageKey] = errors.New("read-only")

	require.NoError(t, f.localizer.SetLocale(context.Background(), "tr"))
	assert.Equal(t, "tr", f.localizer.Locale())
}

// ─────────────────────────────────────────────
// Refresh
// ─────────────────────────────────────────────

func TestLocalizer_Refresh_Forces(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteSource(ctrl)
	expectRemote(remote, `4`, `{"hello": {"en": "Forced"}}`)

	f := newLocalizerFixture(t, remote, testBundle)
	f.seed(t, testVersionKey, "4")

	result, err := f.localizer.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.SyncApplied, result)
	assert.Equal(t, "Forced", f.localizer.T("hello", nil))
}

func TestLocalizer_Refresh_SyncDisabled(t *testing.T) {
	f := newLocalizerFixture(t, nil, testBundle)

	result, err := f.localizer.Refresh(context.Background())

	assert.Equal(t, models.SyncNoChange, result)
	assert.ErrorIs(t, err, ErrRemoteSyncDisabled)
}

// ─────────────────────────────────────────────
// bootstrapSequencer
// ─────────────────────────────────────────────

func TestBootstrapSequencer_AdvanceOnlyForward(t *testing.T) {
	b := newBootstrapSequencer(newRecordingCache(), NewLocaleStore(nil), nil, newCacheKeys("k"), "en", func(string) {}, logger.Nop())

	require.NoError(t, b.advance(models.BootstrapLoadPreference))
	assert.Error(t, b.advance(models.BootstrapReady), "нельзя перепрыгивать состояния")
	assert.Error(t, b.advance(models.BootstrapStart), "нельзя возвращаться назад")
	assert.Error(t, b.advance(models.BootstrapLoadPreference), "нельзя входить в состояние повторно")
	require.NoError(t, b.advance(models.BootstrapLoadCachedTable))
	assert.Equal(t, models.BootstrapLoadCachedTable, b.State())
}

func TestBootstrapSequencer_NilEngine_ReachesReady(t *testing.T) {
	var selected string
	b := newBootstrapSequencer(newRecordingCache(), NewLocaleStore(nil), nil, newCacheKeys("k"), "en", func(p string) { selected = p }, logger.Nop())

	require.NoError(t, b.Run(context.Background()))

	assert.Equal(t, models.BootstrapReady, b.State())
	assert.Equal(t, "en", selected)
}
