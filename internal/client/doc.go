// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the localization runtime of a process.
//
// It opens the persistent cache, connects the remote source, loads the
// bundled table and drives the bootstrap sequence and the background sync
// job over one process lifecycle.
package client
