// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the data types shared between the sync engine,
// the persistent cache and the transport layers: the remote translations
// document, the per-locale lookup table and the small enums describing
// sync and bootstrap outcomes.
package models
