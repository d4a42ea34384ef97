// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/MKhiriev/click-storm/internal/templates"
	"github.com/MKhiriev/click-storm/internal/validators"
	"github.com/MKhiriev/click-storm/models"
)

type quoteService struct {
	quotes    store.QuoteRepository
	validator validators.Validator

	photographerEmail string
	now               func() time.Time

	logger *logger.Logger
}

func NewQuoteService(quotes store.QuoteRepository, validator validators.Validator, photographerEmail string, logger *logger.Logger) QuoteService {
	return &quoteService{
		quotes:            quotes,
		validator:         validator,
		photographerEmail: photographerEmail,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *quoteService) List(ctx context.Context, status string) ([]models.Quote, models.QuoteStats, error) {
	all, err := s.quotes.List(ctx, "")
	if err != nil {
		return nil, models.QuoteStats{}, err
	}
	stats := models.CountQuotes(all)

	filter := models.QuoteStatus(status)
	if !filter.Valid() {
		return all, stats, nil
	}
	return filterBy(all, func(q models.Quote) bool { return q.Status == filter }), stats, nil
}

func (s *quoteService) Get(ctx context.Context, id string) (models.Quote, error) {
	return s.quotes.Get(ctx, id)
}

func (s *quoteService) Create(ctx context.Context, req models.QuoteRequest) (models.Quote, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Quote{}, err
	}

	quote := models.Quote{
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientEmail: strings.ToLower(strings.TrimSpace(req.ClientEmail)),
		ClientPhone: optional(req.ClientPhone),
		Service:     models.Service(req.Service),
		Date:        optional(req.Date),
		Items:       req.Items,
		Notes:       optional(req.Notes),
	}

	created, err := s.quotes.Create(ctx, quote)
	if err != nil {
		return models.Quote{}, fmt.Errorf("error creating quote: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*quoteService.Create").Str("quote_number", created.QuoteNumber).Msg("quote created")
	return created, nil
}

func (s *quoteService) Update(ctx context.Context, id string, req models.QuoteUpdate) (models.Quote, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Quote{}, err
	}
	return s.quotes.Update(ctx, id, req)
}

func (s *quoteService) AddPayment(ctx context.Context, id string, req models.PaymentRequest) (models.Quote, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Quote{}, err
	}

	amount, _ := req.Amount.Float64()
	quote, err := s.quotes.AddPayment(ctx, id, models.Payment{
		Amount: amount,
		Method: strings.TrimSpace(req.Method),
		Notes:  optional(req.Notes),
	})
	if err != nil {
		return models.Quote{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*quoteService.AddPayment").
		Str("quote_number", quote.QuoteNumber).
		Float64("amount", amount).
		Str("payment_status", string(quote.PaymentStatus)).
		Msg("payment recorded")
	return quote, nil
}

func (s *quoteService) Delete(ctx context.Context, id string) error {
	return s.quotes.Delete(ctx, id)
}

func (s *quoteService) Preview(ctx context.Context, id string) ([]byte, error) {
	quote, err := s.quotes.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return templates.QuotePreview(quote, s.photographerEmail)
}

func (s *quoteService) ExpireOverdue(ctx context.Context) (int, error) {
	return s.quotes.ExpireOverdue(ctx, s.now())
}
