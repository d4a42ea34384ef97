// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/internal/logger"
)

// Storages bundles every repository over one backend.
type Storages struct {
	Messages  MessageRepository
	Reviews   ReviewRepository
	Quotes    QuoteRepository
	Calendar  CalendarRepository
	Portfolio PortfolioRepository
	Templates TemplateRepository
	Images    ImageStorage

	closer io.Closer
}

// NewStorages opens the backend selected by cfg.Backend and builds the
// repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		backend Backend
		closer  io.Closer
	)

	switch cfg.Backend {
	case config.BackendFile, "":
		backend = NewFileBackend(cfg.Files.DataDir)
	case config.BackendMemory:
		backend = NewMemoryBackend()
	case config.BackendSQLite, config.BackendPostgres:
		connect := NewConnectSQLite
		if cfg.Backend == config.BackendPostgres {
			connect = NewConnectPostgres
		}
		db, err := connect(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			db.Close()
			return nil, err
		}
		backend, closer = NewSQLBackend(db), db
	case config.BackendRedis:
		client, err := NewConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		backend, closer = NewRedisBackend(client, cfg.Redis.KeyPrefix), client
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}

	log.Info().Str("func", "NewStorages").Str("backend", cfg.Backend).Msg("document store ready")

	storages := NewStoragesWithBackend(backend, NewFileImageStorage(cfg.Files.UploadDir, cfg.Files.PublicImagePrefix), log)
	storages.closer = closer
	return storages, nil
}

// NewStoragesWithBackend builds the repositories over an existing backend.
// All of them share one lock registry.
func NewStoragesWithBackend(backend Backend, images ImageStorage, log *logger.Logger) *Storages {
	locks := NewLocker()
	return &Storages{
		Messages:  NewMessageRepository(backend, locks, log),
		Reviews:   NewReviewRepository(backend, locks, log),
		Quotes:    NewQuoteRepository(backend, locks, log),
		Calendar:  NewCalendarRepository(backend, locks, log),
		Portfolio: NewPortfolioRepository(backend, locks, log),
		Templates: NewTemplateRepository(backend, locks, log),
		Images:    images,
	}
}

// Close releases the database or redis connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
