// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the jobs enabled in cfg. A zero interval disables a job.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.QuoteExpiryInterval > 0 {
		w.workers = append(w.workers, NewQuoteExpiryWorker(services.QuoteService, cfg.QuoteExpiryInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("background workers configured")
	return w
}

// Len reports how many jobs are configured.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
