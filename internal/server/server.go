// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/internal/handler"
	"github.com/MKhiriev/click-storm/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    BackgroundRunner
	logger     *logger.Logger
}

// NewServer builds the HTTP server from handlers. workers may be nil.
func NewServer(handlers *handler.Handlers, workers BackgroundRunner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHTTPHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx, s.httpServer.RunServer)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run starts serve and the workers, then blocks until ctx is done, the
// listener is shut down and every worker has returned.
func (s *server) run(ctx context.Context, serve func()) {
	workersCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Go(func() {
			s.workers.Run(workersCtx)
		})
	}

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.logger.Info().Msg("stop signal received")

		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go serve()

	<-idleConnectionsClosed
	cancelWorkers()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
}
