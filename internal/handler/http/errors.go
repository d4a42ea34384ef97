// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request-level errors raised before a service is called.
var (
	// ErrInvalidJSON is returned when a request body is not valid JSON for the route.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrInvalidMultipart is returned when an upload is not a readable multipart form.
	ErrInvalidMultipart = errors.New("invalid multipart form")

	// ErrImageTooLarge is returned when an uploaded image exceeds the configured size.
	ErrImageTooLarge = errors.New("image exceeds the upload limit")
)
