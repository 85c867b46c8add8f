// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the persistent cache backing the locale runtime:
// a key-value table in SQLite or PostgreSQL and a process-local map.
package store

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/persistent_cache_mock.go -package=mock

// PersistentCache is a durable string key-value store.
type PersistentCache interface {
	// Get returns the value stored under key. found is false when the key
	// has never been set; err is reserved for backend failures.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
