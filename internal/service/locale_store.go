// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-locale-sync/models"
)

// LocaleStore holds the translation table currently served together with the
// version it was applied at. The table is only ever replaced as a whole, so
// readers always observe one consistent snapshot.
type LocaleStore struct {
	mu      sync.RWMutex
	table   models.LocaleTable
	version int64
}

// NewLocaleStore returns a store serving initial at version 0. A nil initial
// table is treated as empty.
func NewLocaleStore(initial models.LocaleTable) *LocaleStore {
	if initial == nil {
		initial = models.LocaleTable{}
	}
	return &LocaleStore{table: initial}
}

// Replace installs table and version. Callers must not mutate table afterwards.
func (s *LocaleStore) Replace(table models.LocaleTable, version int64) {
	if table == nil {
		table = models.LocaleTable{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.table = table
	s.version = version
}

// SetVersion records version without touching the table.
func (s *LocaleStore) SetVersion(version int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.version = version
}

// Snapshot returns the current table. The result is shared and read-only.
func (s *LocaleStore) Snapshot() models.LocaleTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

func (s *LocaleStore) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *LocaleStore) Has(locale string) bool {
	return s.Snapshot().Has(locale)
}

func (s *LocaleStore) Locales() []string {
	return s.Snapshot().Locales()
}

// Empty reports whether the table holds no locale at all.
func (s *LocaleStore) Empty() bool {
	return len(s.Snapshot()) == 0
}
