// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-locale-sync/internal/config"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_Memory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: MemoryDSN}}, logger.Nop())
	require.NoError(t, err)

	_, ok := s.Cache.(*MemoryCache)
	assert.True(t, ok)
	assert.NoError(t, s.Close())
}

func TestNewStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "cache.db")

	s, err := NewStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)

	_, statErr := os.Stat(dsn)
	require.NoError(t, statErr, "database file must be created")

	require.NoError(t, s.Cache.Set(ctx, "locale", "tr"))
	require.NoError(t, s.Cache.Set(ctx, "locale", "de"))
	require.NoError(t, s.Close())

	// reopen: values survive and migrations are idempotent
	s, err = NewStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	value, found, err := s.Cache.Get(ctx, "locale")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "de", value)

	_, found, err = s.Cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestNewStorages_SQLiteBadPath(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "no-such-dir", "cache.db")

	_, err := NewStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.Error(t, err)
}

func TestSQLiteFilePath(t *testing.T) {
	assert.Equal(t, "cache.db", sqliteFilePath("file:cache.db?_busy_timeout=5000"))
	assert.Equal(t, "/tmp/x.db", sqliteFilePath("/tmp/x.db"))
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost:5432/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.False(t, isPostgresDSN("translations.db"))
}
