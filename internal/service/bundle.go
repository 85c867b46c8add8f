package service

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-locale-sync/models"
)

// LoadBundle reads the built-in table shipped with the application. The file
// holds a [models.LocaleTable] in JSON ({"en": {"greet": "Hi {{ name }}"}}).
// An empty path yields an empty table.
func LoadBundle(path string) (models.LocaleTable, error) {
	if path == "" {
		return models.LocaleTable{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle %q: %w", path, err)
	}

	var table models.LocaleTable
	if err = json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decode bundle %q: %w", path, err)
	}
	if table == nil {
		table = models.LocaleTable{}
	}
	return table, nil
}
