// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-locale-sync/models"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([^{}\s]+)\s*\}\}`)

// Resolve looks key up in table under current, then under fallback.
//
// The key is first tried verbatim, then as a dotted path through nested
// objects. A miss or a non-string value under current restarts the whole
// lookup under fallback, unless fallback is empty or equal to current. When
// both fail the key itself is returned. Placeholders of the form {{ name }}
// in the found string are replaced with params[name]; unknown names stay as
// they are.
func Resolve(table models.LocaleTable, current, fallback, key string, params map[string]any) string {
	if key == "" {
		return ""
	}

	value, ok := lookup(table[current], key)
	if !ok && fallback != "" && fallback != current {
		value, ok = lookup(table[fallback], key)
	}
	if !ok {
		return key
	}

	return interpolate(value, params)
}

func lookup(tree map[string]any, key string) (string, bool) {
	if tree == nil {
		return "", false
	}

	if v, ok := tree[key]; ok {
		if s, isString := v.(string); isString {
			return s, true
		}
	}

	var node any = tree
	for _, segment := range strings.Split(key, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return "", false
		}
		if node, ok = m[segment]; !ok {
			return "", false
		}
	}

	s, ok := node.(string)
	return s, ok
}

func interpolate(template string, params map[string]any) string {
	if len(params) == 0 || !strings.Contains(template, "{{") {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(placeholder string) string {
		name := placeholderPattern.FindStringSubmatch(placeholder)[1]
		value, ok := params[name]
		if !ok {
			return placeholder
		}
		return fmt.Sprint(value)
	})
}
