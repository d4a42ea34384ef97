// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/sethvargo/go-retry"
)

const (
	expiryRetries      = 3
	expiryRetryBackoff = 500 * time.Millisecond
)

type quoteExpiryWorker struct {
	quotes   QuoteExpirer
	interval time.Duration
	backoff  time.Duration

	logger *logger.Logger
}

// NewQuoteExpiryWorker sweeps overdue quotes once at start and then every
// interval. A failed sweep is retried with exponential backoff before the
// worker waits for the next tick.
func NewQuoteExpiryWorker(quotes QuoteExpirer, interval time.Duration, logger *logger.Logger) Worker {
	return &quoteExpiryWorker{
		quotes:   quotes,
		interval: interval,
		backoff:  expiryRetryBackoff,
		logger:   logger,
	}
}

func (w *quoteExpiryWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("quote expiry worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.sweep(ctx)

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("quote expiry worker stopped")
			return
		case <-ticker.C:
		}
	}
}

func (w *quoteExpiryWorker) sweep(ctx context.Context) {
	var expired int
	backoff := retry.WithMaxRetries(expiryRetries, retry.NewExponential(w.backoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		n, err := w.quotes.ExpireOverdue(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		expired = n
		return nil
	})

	switch {
	case errors.Is(err, context.Canceled):
	case err != nil:
		w.logger.Err(err).Str("func", "*quoteExpiryWorker.sweep").Msg("error expiring quotes")
	case expired > 0:
		w.logger.Info().Str("func", "*quoteExpiryWorker.sweep").Int("expired", expired).Msg("overdue quotes expired")
	}
}
