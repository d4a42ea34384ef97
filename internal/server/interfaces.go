// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a stop signal arrives and everything has shut down.
type Server interface {
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// BackgroundRunner is the set of jobs that live as long as the server.
// *workers.Workers satisfies it.
type BackgroundRunner interface {
	Run(ctx context.Context)
}
