package service

import (
	"github.com/MKhiriev/go-locale-sync/internal/adapter"
	"github.com/MKhiriev/go-locale-sync/internal/config"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/MKhiriev/go-locale-sync/internal/store"
	"github.com/MKhiriev/go-locale-sync/models"
)

type Services struct {
	Localizer      Localizer
	SyncEngine     SyncEngine
	SyncJob        SyncJob
	AppInfoService AppInfoService
}

// NewServices wires the runtime around one shared [LocaleStore] seeded with
// bundle. remote may be nil when remote sync is disabled.
func NewServices(cfg *config.ClientConfig, remote adapter.RemoteSource, cache store.PersistentCache, bundle models.LocaleTable, appVersion string, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(appVersion, logger)
	if err != nil {
		return nil, err
	}

	localeStore := NewLocaleStore(bundle)

	engine := NewSyncEngine(SyncEngineConfig{
		StorageKey:       cfg.App.StorageKey,
		TranslationsPath: cfg.Adapter.TranslationsPath,
		VersionPath:      cfg.Adapter.VersionPath,
		Disabled:         cfg.Adapter.DisableRemoteSync,
	}, remote, cache, localeStore, logger)

	localizer := NewLocalizer(LocalizerConfig{
		DefaultLocale:  cfg.App.DefaultLocale,
		FallbackLocale: cfg.App.FallbackLocale,
		StorageKey:     cfg.App.StorageKey,
	}, localeStore, engine, cache, logger)

	return &Services{
		Localizer:      localizer,
		SyncEngine:     engine,
		SyncJob:        NewSyncJob(engine, remote, cfg.Adapter.VersionPath, cfg.Workers.PollInterval, logger),
		AppInfoService: appInfo,
	}, nil
}
