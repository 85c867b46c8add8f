package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	cacheTable       = "kv_cache"
	cacheKeyColumn   = "cache_key"
	cacheValueColumn = "cache_value"
	cacheTimeColumn  = "updated_at"

	upsertCacheSuffix = "ON CONFLICT (cache_key) DO UPDATE SET " +
		"cache_value = excluded.cache_value, updated_at = excluded.updated_at"
)

// queryBuilder returns a squirrel builder using the placeholder style of
// dialect: "$1" for PostgreSQL, "?" for SQLite.
func queryBuilder(dialect string) sq.StatementBuilderType {
	if dialect == dialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func buildGetQuery(dialect, key string) (string, []any, error) {
	return queryBuilder(dialect).
		Select(cacheValueColumn).
		From(cacheTable).
		Where(sq.Eq{cacheKeyColumn: key}).
		ToSql()
}

func buildSetQuery(dialect, key, value string, now time.Time) (string, []any, error) {
	return queryBuilder(dialect).
		Insert(cacheTable).
		Columns(cacheKeyColumn, cacheValueColumn, cacheTimeColumn).
		Values(key, value, now).
		Suffix(upsertCacheSuffix).
		ToSql()
}
