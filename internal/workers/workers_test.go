// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----------------------------------------------------------------------------
// Fakes
// ----------------------------------------------------------------------------

// countingWorker records Run calls and blocks until ctx is done.
type countingWorker struct {
	runs atomic.Int32
}

func (w *countingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
}

// fakeExpirer answers ExpireOverdue with a scripted sequence of results.
type fakeExpirer struct {
	mu      sync.Mutex
	calls   int
	results []error
	called  chan struct{}
}

func newFakeExpirer(results ...error) *fakeExpirer {
	return &fakeExpirer{results: results, called: make(chan struct{}, 100)}
}

func (f *fakeExpirer) ExpireOverdue(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var err error
	if f.calls < len(f.results) {
		err = f.results[f.calls]
	}
	f.calls++
	f.called <- struct{}{}
	if err != nil {
		return 0, err
	}
	return 1, nil
}

func (f *fakeExpirer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func waitCalls(t *testing.T, f *fakeExpirer, n int) {
	t.Helper()
	for range n {
		select {
		case <-f.called:
		case <-time.After(2 * time.Second):
			t.Fatalf("expected %d ExpireOverdue calls, got %d", n, f.count())
		}
	}
}

// ----------------------------------------------------------------------------
// Workers
// ----------------------------------------------------------------------------

func TestWorkers_Run_AllWorkersStartAndStop(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// returns at once without workers
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{QuoteService: nil}

	tests := []struct {
		name string
		cfg  config.Workers
		want int
	}{
		{name: "expiry enabled", cfg: config.Workers{QuoteExpiryInterval: time.Hour}, want: 1},
		{name: "expiry disabled", cfg: config.Workers{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewWorkers(services, tt.cfg, logger.Nop()).Len())
		})
	}
}

// ----------------------------------------------------------------------------
// Quote expiry
// ----------------------------------------------------------------------------

func TestQuoteExpiryWorker_SweepsOnStartAndOnTick(t *testing.T) {
	expirer := newFakeExpirer()
	w := NewQuoteExpiryWorker(expirer, 20*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	waitCalls(t, expirer, 3)
	assert.GreaterOrEqual(t, expirer.count(), 3)
}

func TestQuoteExpiryWorker_RetriesFailures(t *testing.T) {
	expirer := newFakeExpirer(errors.New("store busy"), errors.New("store busy"))
	w := &quoteExpiryWorker{quotes: expirer, interval: time.Hour, backoff: time.Millisecond, logger: logger.Nop()}

	w.sweep(context.Background())

	assert.Equal(t, 3, expirer.count())
}

func TestQuoteExpiryWorker_GivesUpAfterMaxRetries(t *testing.T) {
	failures := make([]error, 10)
	for i := range failures {
		failures[i] = errors.New("store down")
	}
	expirer := newFakeExpirer(failures...)
	w := &quoteExpiryWorker{quotes: expirer, interval: time.Hour, backoff: time.Millisecond, logger: logger.Nop()}

	w.sweep(context.Background())

	assert.Equal(t, expiryRetries+1, expirer.count())
}

func TestQuoteExpiryWorker_StopsOnCancel(t *testing.T) {
	expirer := newFakeExpirer()
	w := NewQuoteExpiryWorker(expirer, time.Hour, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	waitCalls(t, expirer, 1)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
