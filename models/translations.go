// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"sort"
)

// ReservedKeyPrefix marks comment/metadata entries of a [TranslationDocument].
// Such entries are never turned into translations.
const ReservedKeyPrefix = "---"

// TranslationDocument is the remote shape of the translations: a mapping from
// translation key to a JSON object keyed by locale code. Values are kept raw
// so that malformed entries can be skipped one by one instead of failing the
// whole document.
type TranslationDocument map[string]json.RawMessage

// LocaleTable maps a locale code to its translation tree. Leaves are strings;
// intermediate nodes are map[string]any as produced by encoding/json.
type LocaleTable map[string]map[string]any

// Locales returns the locale codes present in the table in ascending order.
func (t LocaleTable) Locales() []string {
	locales := make([]string, 0, len(t))
	for locale := range t {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Has reports whether locale is present in the table.
func (t LocaleTable) Has(locale string) bool {
	_, ok := t[locale]
	return ok
}
