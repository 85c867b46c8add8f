// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Defaults applied by [GetClientConfig] to fields left empty by every source.
const (
	DefaultLocale           = "en"
	DefaultStorageKey       = "locale"
	DefaultLogLevel         = "debug"
	DefaultDSN              = "translations.db"
	DefaultTranslationsPath = "translations"
	DefaultVersionPath      = "translations_version"
	DefaultRequestTimeout   = 10 * time.Second
	DefaultStreamRetryDelay = 5 * time.Second
	DefaultPollInterval     = 30000 * time.Millisecond
	DefaultHTTPAddress      = "localhost:8080"
	DefaultServerTimeout    = 15 * time.Second
)

// ClientApp holds locale settings of the runtime.
type ClientApp struct {
	DefaultLocale  string
	FallbackLocale string
	StorageKey     string
	BundlePath     string
	LogLevel       string
}

// ClientAdapter holds remote source settings used by the sync engine.
type ClientAdapter struct {
	// Address is the remote database base URL.
	Address string
	// AuthToken is the optional access token.
	AuthToken string
	// RequestTimeout is the timeout of one-shot reads.
	RequestTimeout time.Duration
	// TranslationsPath is the remote path of the translations document.
	TranslationsPath string
	// VersionPath is the remote path of the version counter.
	VersionPath string
	// DisableRemoteSync keeps the engine from ever contacting the remote.
	DisableRemoteSync bool
	// StreamRetryDelay is the pause between subscription reconnects.
	StreamRetryDelay time.Duration
}

// ClientDB contains persistent cache connection settings.
type ClientDB struct {
	// DSN is a SQLite path, ":memory:" or a PostgreSQL URL.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds cache database settings.
	DB ClientDB
}

// ClientWorkers contains background trigger settings.
type ClientWorkers struct {
	// PollInterval defines how often the fallback timer reconciles.
	// Zero disables the timer.
	PollInterval time.Duration
}

// ClientServer contains the HTTP read surface settings.
type ClientServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientConfig is the top-level runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Server  ClientServer

	// Args are the positional command-line arguments.
	Args []string
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps it with
// [NewClientConfig] and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg, err := NewClientConfig(cfg)
	if err != nil {
		return nil, err
	}

	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg to a [ClientConfig], filling defaults for every
// field no source has set. It does not validate the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	pollInterval, err := parsePollInterval(cfg.Workers.PollIntervalMS)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DefaultLocale:  valueOr(cfg.App.DefaultLocale, DefaultLocale),
			FallbackLocale: cfg.App.FallbackLocale,
			StorageKey:     valueOr(cfg.App.StorageKey, DefaultStorageKey),
			BundlePath:     cfg.App.BundlePath,
			LogLevel:       valueOr(cfg.App.LogLevel, DefaultLogLevel),
		},
		Adapter: ClientAdapter{
			Address:           strings.TrimSpace(cfg.Adapter.Address),
			AuthToken:         strings.TrimSpace(cfg.Adapter.AuthToken),
			RequestTimeout:    durationOr(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
			TranslationsPath:  valueOr(cfg.Adapter.TranslationsPath, DefaultTranslationsPath),
			VersionPath:       valueOr(cfg.Adapter.VersionPath, DefaultVersionPath),
			DisableRemoteSync: cfg.Adapter.DisableRemoteSync || cfg.Adapter.DisableFirebaseSync,
			StreamRetryDelay:  durationOr(cfg.Adapter.StreamRetryDelay, DefaultStreamRetryDelay),
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: valueOr(cfg.Storage.DB.DSN, DefaultDSN)},
		},
		Workers: ClientWorkers{PollInterval: pollInterval},
		Server: ClientServer{
			HTTPAddress:    valueOr(cfg.Server.HTTPAddress, DefaultHTTPAddress),
			RequestTimeout: durationOr(cfg.Server.RequestTimeout, DefaultServerTimeout),
		},
		Args: cfg.Args,
	}

	// fallback locale defaults to the default locale
	if clientCfg.App.FallbackLocale == "" {
		clientCfg.App.FallbackLocale = clientCfg.App.DefaultLocale
	}

	return clientCfg, nil
}

func parsePollInterval(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPollInterval, nil
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: poll interval %q: %w", ErrInvalidWorkerConfigs, raw, err)
	}
	if ms < 0 {
		return 0, fmt.Errorf("%w: negative poll interval %d", ErrInvalidWorkerConfigs, ms)
	}

	return time.Duration(ms) * time.Millisecond, nil
}

func valueOr(v, def string) string {
	if v = strings.TrimSpace(v); v == "" {
		return def
	}
	return v
}

func durationOr(v, def time.Duration) time.Duration {
	if v == 0 {
		return def
	}
	return v
}
