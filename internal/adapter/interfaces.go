// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote translations backend.
//
// The primary abstraction is [RemoteSource], which decouples the sync engine
// from the underlying protocol. The package ships a Firebase Realtime Database
// REST implementation ([NewFirebaseRemoteSource]) covering one-shot reads and
// server-sent event subscriptions.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrUnavailable] for 5xx).
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_source_mock.go -package=mock

// RemoteSource is a key-value backend addressed by slash-separated paths.
type RemoteSource interface {
	// Read fetches the value stored at path once. A missing value is returned
	// as the JSON literal null, not as an error.
	Read(ctx context.Context, path string) (json.RawMessage, error)

	// Subscribe starts delivering value-changed events at path to onChange
	// until the returned unsubscribe function is called or ctx is done.
	// onChange runs on the subscription goroutine and must not block for long.
	// unsubscribe is idempotent and returns after the goroutine has exited.
	Subscribe(ctx context.Context, path string, onChange func(data json.RawMessage)) (unsubscribe func(), err error)
}
