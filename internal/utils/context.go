// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, access token inspection and
// identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// TraceIDCtxKey stores the identifier of an inbound HTTP request.
	TraceIDCtxKey = contextKey("traceID")

	// SyncIDCtxKey stores the identifier of a single reconcile run.
	SyncIDCtxKey = contextKey("syncID")
)

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the request trace id stored in ctx.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok
}

// WithSyncID returns a copy of ctx carrying syncID.
func WithSyncID(ctx context.Context, syncID string) context.Context {
	return context.WithValue(ctx, SyncIDCtxKey, syncID)
}

// GetSyncIDFromContext returns the reconcile run id stored in ctx.
//
//	syncID, ok := utils.GetSyncIDFromContext(ctx)
//	if !ok {
//	    // not inside a reconcile run
//	}
func GetSyncIDFromContext(ctx context.Context) (string, bool) {
	syncID, ok := ctx.Value(SyncIDCtxKey).(string)
	return syncID, ok
}
