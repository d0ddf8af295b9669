// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidServerConfigs is returned when the merged configuration is
	// missing the HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configs: address is required")

	// ErrInvalidStorageConfigs is returned when the merged configuration is
	// missing the database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database DSN is required")

	// ErrInvalidAppConfigs is returned when token signing parameters are
	// incomplete: sign key, issuer, and duration are all required.
	ErrInvalidAppConfigs = errors.New("invalid app configs: token sign key, issuer and duration are required")
)
