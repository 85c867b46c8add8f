// Package http implements the HTTP read surface of the localization runtime.
//
// It exposes route wiring, request handlers and middleware. Requests are
// traced, logged, compressed and, for cacheable reads, tagged with an ETag
// before the [service.Localizer] resolves them.
package http
