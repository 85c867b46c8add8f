// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the HTTP
// read surface.
//
// Msg* constants are the human-readable messages written into error
// response bodies.
package app

const (
	// MsgInvalidKey is returned when the translation key in the URL path
	// cannot be unescaped.
	MsgInvalidKey = "invalid key"

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgLocaleRequired is returned when a locale switch names no locale.
	MsgLocaleRequired = "locale is required"

	// MsgRefreshFailed is returned when a forced reconcile ends in failure.
	MsgRefreshFailed = "refresh failed"

	// MsgInvalidGzip is returned when a gzip-encoded request body is corrupt.
	MsgInvalidGzip = "Invalid gzip data"

	// MsgErrorWritingJSON is returned when a response cannot be encoded.
	MsgErrorWritingJSON = "error writing data to JSON"
)
