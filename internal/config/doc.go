// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the click-storm server.
//
// Configuration is assembled from several sources; later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. An optional .env file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The entry point is [GetStructuredConfig].
package config
