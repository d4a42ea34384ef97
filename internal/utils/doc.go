// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the backend: JSON and
// file responses, the outbound HTTP client and id generation.
package utils
