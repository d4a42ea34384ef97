// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the envelope of every mutating endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FieldError is one failed field of a form.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is returned for rejected requests.
// Errors is only set for field-level validation failures.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// RouteError is returned for unmatched routes and unexpected failures.
type RouteError struct {
	Error string `json:"error"`
}

// Health is the liveness payload.
type Health struct {
	Status    string  `json:"status"`
	Timestamp string  `json:"timestamp"`
	Uptime    float64 `json:"uptime"`
}
