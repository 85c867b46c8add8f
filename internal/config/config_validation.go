// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// validate checks that the final [ClientConfig] satisfies all runtime
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *ClientConfig) validate() error {
	if err := validateLocale(cfg.App.DefaultLocale); err != nil {
		return fmt.Errorf("%w: default locale: %w", ErrInvalidAppConfigs, err)
	}
	if err := validateLocale(cfg.App.FallbackLocale); err != nil {
		return fmt.Errorf("%w: fallback locale: %w", ErrInvalidAppConfigs, err)
	}
	if strings.TrimSpace(cfg.App.StorageKey) == "" {
		return fmt.Errorf("%w: empty storage key", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if !cfg.Adapter.DisableRemoteSync && cfg.Adapter.Address == "" {
		return fmt.Errorf("%w: remote address is required unless sync is disabled", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.StreamRetryDelay < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.TranslationsPath == "" || cfg.Adapter.VersionPath == "" {
		return fmt.Errorf("%w: empty remote path", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.PollInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func validateLocale(locale string) error {
	if locale == "" {
		return fmt.Errorf("empty locale")
	}
	_, err := language.Parse(locale)
	return err
}
