// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-locale-sync/internal/logger"
)

type sqlCacheRepository struct {
	*DB
	logger *logger.Logger

	now func() time.Time
}

// NewSQLCacheRepository returns a [PersistentCache] backed by the kv_cache
// table of db. The schema must already be migrated.
func NewSQLCacheRepository(db *DB, logger *logger.Logger) PersistentCache {
	return &sqlCacheRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqlCacheRepository) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	if key == "" {
		return "", false, ErrEmptyKey
	}

	query, args, err := buildGetQuery(s.dialect, key)
	if err != nil {
		log.Err(err).Str("func", "sqlCacheRepository.Get").Str("key", key).Msg("failed to build select query")
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqlCacheRepository.Get").
			Str("key", key).
			Bool("retryable", s.retryable(err)).
			Msg("failed to read cache entry")
		return "", false, fmt.Errorf("%w (key=%s): %w", ErrExecutingQuery, key, err)
	}

	return value, true, nil
}

func (s *sqlCacheRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildSetQuery(s.dialect, key, value, s.now())
	if err != nil {
		log.Err(err).Str("func", "sqlCacheRepository.Set").Str("key", key).Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqlCacheRepository.Set").
			Str("key", key).
			Bool("retryable", s.retryable(err)).
			Str("pg_code", postgresError(err)).
			Msg("failed to execute upsert for cache entry")
		return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, err)
	}

	return nil
}
