// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates a missing operator mailbox or an
	// unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive limit, window or upload size.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs indicates an unknown backend or missing
	// connection settings for the selected one.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidMailerConfigs indicates an incomplete SMTP or relay setup.
	ErrInvalidMailerConfigs = errors.New("invalid mailer configuration")

	// ErrInvalidWorkerConfigs indicates a negative job interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
