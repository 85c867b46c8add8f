package service

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// parseRemoteVersion accepts a bare integer or {"version": integer}. Any
// other shape, a missing value or a negative number yields 0.
func parseRemoteVersion(raw json.RawMessage) int64 {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return 0
	}

	switch t := v.(type) {
	case json.Number:
		return numberToVersion(t)
	case map[string]any:
		if n, ok := t["version"].(json.Number); ok {
			return numberToVersion(n)
		}
	}

	return 0
}

func numberToVersion(n json.Number) int64 {
	v, err := n.Int64()
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseLocalVersion reads the decimal text mirrored in the cache. ok is false
// when raw is not a non-negative integer.
func parseLocalVersion(raw string) (int64, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func formatVersion(v int64) string {
	return strconv.FormatInt(v, 10)
}
