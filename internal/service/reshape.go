package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-locale-sync/models"
)

// Reshape decodes a remote translations document and inverts it into a
// per-locale table. See [ReshapeDocument].
//
// Returns [ErrEmptyDocument] when raw is empty, null or not a JSON object.
func Reshape(raw json.RawMessage) (models.LocaleTable, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrEmptyDocument
	}

	var doc models.TranslationDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptyDocument, err)
	}

	return ReshapeDocument(doc)
}

// ReshapeDocument turns {key: {locale: value}} into {locale: {key: value}}.
//
// Keys starting with [models.ReservedKeyPrefix] are skipped, as are entries
// that are not locale objects and values that are neither strings nor
// nested objects. Returns [ErrReshape] when nothing is left.
func ReshapeDocument(doc models.TranslationDocument) (models.LocaleTable, error) {
	table := make(models.LocaleTable)

	for key, entry := range doc {
		if strings.HasPrefix(key, models.ReservedKeyPrefix) {
			continue
		}

		var byLocale map[string]any
		if err := json.Unmarshal(entry, &byLocale); err != nil || byLocale == nil {
			continue
		}

		for locale, value := range byLocale {
			switch value.(type) {
			case string, map[string]any:
			default:
				continue
			}

			if table[locale] == nil {
				table[locale] = make(map[string]any)
			}
			table[locale][key] = value
		}
	}

	if len(table) == 0 {
		return nil, ErrReshape
	}

	return table, nil
}
