// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the click-storm server.
//
// Every job implements Worker. Workers starts them together and waits for
// all of them to return once the context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// QuoteExpirer marks sent quotes past their validity as expired and reports
// how many changed. service.QuoteService satisfies it.
type QuoteExpirer interface {
	ExpireOverdue(ctx context.Context) (int, error)
}
