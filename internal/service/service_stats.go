// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/click-storm/internal/export"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/stats"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/MKhiriev/click-storm/models"
	"golang.org/x/sync/errgroup"
)

type statsService struct {
	messages  store.MessageRepository
	reviews   store.ReviewRepository
	quotes    store.QuoteRepository
	calendar  store.CalendarRepository
	portfolio store.PortfolioRepository

	now func() time.Time

	logger *logger.Logger
}

func NewStatsService(storages *store.Storages, logger *logger.Logger) StatsService {
	return &statsService{
		messages:  storages.Messages,
		reviews:   storages.Reviews,
		quotes:    storages.Quotes,
		calendar:  storages.Calendar,
		portfolio: storages.Portfolio,
		now:       time.Now,
		logger:    logger,
	}
}

// Dashboard loads every collection concurrently. A missing collection
// counts as empty.
func (s *statsService) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var in stats.Input

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.Messages, err = s.messages.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.Reviews, err = s.reviews.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.Quotes, err = s.quotes.All(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.Calendar, err = s.calendar.Get(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.Portfolio, err = s.portfolio.List(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return models.Dashboard{}, fmt.Errorf("error loading dashboard data: %w", err)
	}

	return stats.Dashboard(in, s.now()), nil
}

// Export renders one collection as CSV. Unknown kinds return [export.ErrUnknownKind].
func (s *statsService) Export(ctx context.Context, kind string) (models.Export, error) {
	k, err := export.ParseKind(kind)
	if err != nil {
		return models.Export{}, err
	}

	var content []byte
	switch k {
	case export.KindMessages:
		var messages []models.Message
		if messages, err = s.messages.All(ctx); err == nil {
			content, err = export.Messages(messages)
		}
	case export.KindReviews:
		var reviews []models.Review
		if reviews, err = s.reviews.All(ctx); err == nil {
			content, err = export.Reviews(reviews)
		}
	case export.KindQuotes:
		var quotes []models.Quote
		if quotes, err = s.quotes.All(ctx); err == nil {
			content, err = export.Quotes(quotes)
		}
	case export.KindBookings:
		var calendar models.Calendar
		if calendar, err = s.calendar.Get(ctx); err == nil {
			content, err = export.Bookings(calendar.Bookings)
		}
	}
	if err != nil {
		return models.Export{}, fmt.Errorf("error exporting %s: %w", k, err)
	}

	return models.Export{
		FileName:    k.FileName(),
		ContentType: export.ContentType,
		Content:     content,
	}, nil
}
