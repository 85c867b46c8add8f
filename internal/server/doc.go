// Package server runs the HTTP read surface.
//
// It handles startup, signal handling and graceful shutdown of the
// transport server.
package server
