// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidAppConfigs is returned when token or upload settings are
	// missing or out of range.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs is returned when the database or blob store
	// settings are missing or contradictory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs is returned when the HTTP server settings are invalid.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidClientConfigs is returned when the CLI client settings are invalid.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
