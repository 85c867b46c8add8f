// Package config provides configuration loading, merging, and validation
// facilities for the localization runtime.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig], which returns the raw
// merged view, and [GetClientConfig], which applies defaults and validates the
// settings consumed by the sync engine, the cache and the HTTP surface.
package config
