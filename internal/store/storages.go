package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-locale-sync/internal/config"
	"github.com/MKhiriev/go-locale-sync/internal/logger"
)

// MemoryDSN selects the process-local cache instead of a database.
const MemoryDSN = ":memory:"

// Storages groups the storage backends used by the service layer.
type Storages struct {
	// Cache holds the locale preference, the translation table and its
	// version.
	Cache PersistentCache

	db *DB
}

// NewStorages initialises the persistent cache selected by cfg.DB.DSN:
//  1. ":memory:" yields a [MemoryCache];
//  2. a postgres:// or postgresql:// URL opens PostgreSQL through pgx;
//  3. anything else is an SQLite file path, created when it does not exist.
//
// Database backends are migrated before use. Returns an error if the
// connection cannot be established or migration fails.
func NewStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		logger.Info().Msg("using in-memory cache")
		return &Storages{Cache: NewMemoryCache()}, nil
	}

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Cache: NewSQLCacheRepository(db, logger),
		db:    db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
