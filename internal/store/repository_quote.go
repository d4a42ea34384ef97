// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/models"
)

// quoteNumberAttempts bounds the draws of a free DEVIS number.
const quoteNumberAttempts = 10

// quoteRepository stores quotes as one JSON array and owns every derived
// amount on them.
type quoteRepository struct {
	stamps
	doc    *Document[[]models.Quote]
	suffix func() int
	logger *logger.Logger
}

// NewQuoteRepository constructs a [QuoteRepository] over backend.
func NewQuoteRepository(backend Backend, locks *Locker, logger *logger.Logger) QuoteRepository {
	logger.Debug().Msg("creating quote repository")
	return &quoteRepository{
		stamps: defaultStamps(),
		doc:    NewDocument(QuotesDocument, backend, locks, emptySlice[models.Quote]),
		suffix: func() int { return rand.IntN(1000) },
		logger: logger,
	}
}

func (r *quoteRepository) List(ctx context.Context, status models.QuoteStatus) ([]models.Quote, error) {
	quotes, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}

	if status != "" {
		quotes = slices.DeleteFunc(quotes, func(q models.Quote) bool { return q.Status != status })
	}
	byNewest(quotes, func(q models.Quote) time.Time { return q.CreatedAt })

	return quotes, nil
}

func (r *quoteRepository) All(ctx context.Context) ([]models.Quote, error) {
	return r.doc.Load(ctx)
}

func (r *quoteRepository) Get(ctx context.Context, id string) (models.Quote, error) {
	quotes, err := r.doc.Load(ctx)
	if err != nil {
		return models.Quote{}, err
	}

	i := slices.IndexFunc(quotes, func(q models.Quote) bool { return q.ID == id })
	if i < 0 {
		return models.Quote{}, ErrQuoteNotFound
	}
	return quotes[i], nil
}

// Create numbers the quote, resets its lifecycle fields and computes the
// derived amounts from quote.Items.
func (r *quoteRepository) Create(ctx context.Context, quote models.Quote) (models.Quote, error) {
	err := r.doc.Update(ctx, func(quotes *[]models.Quote) error {
		now := r.now()

		number, err := r.nextNumber(*quotes, now)
		if err != nil {
			return err
		}

		quote.ID = r.uniqueID(func(id string) bool {
			return slices.ContainsFunc(*quotes, func(q models.Quote) bool { return q.ID == id })
		})
		quote.QuoteNumber = number
		quote.Status = models.QuoteDraft
		quote.Payments = []models.Payment{}
		quote.CreatedAt = now
		quote.ValidUntil = now.Add(models.QuoteValidity)
		quote.UpdatedAt = nil
		quote.Recalculate()

		*quotes = append(*quotes, quote)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*quoteRepository.Create").Msg("error saving quote")
		return models.Quote{}, err
	}

	return quote, nil
}

func (r *quoteRepository) nextNumber(quotes []models.Quote, now time.Time) (string, error) {
	for range quoteNumberAttempts {
		number := models.FormatQuoteNumber(now, r.suffix())
		taken := slices.ContainsFunc(quotes, func(q models.Quote) bool { return q.QuoteNumber == number })
		if !taken {
			return number, nil
		}
	}
	return "", ErrQuoteNumberExhausted
}

// Update applies the allow-listed fields and recomputes the derived amounts.
func (r *quoteRepository) Update(ctx context.Context, id string, update models.QuoteUpdate) (models.Quote, error) {
	var updated models.Quote
	err := r.doc.Update(ctx, func(quotes *[]models.Quote) error {
		i := slices.IndexFunc(*quotes, func(q models.Quote) bool { return q.ID == id })
		if i < 0 {
			return ErrQuoteNotFound
		}

		q := &(*quotes)[i]
		if update.Status != nil {
			q.Status = *update.Status
		}
		if update.Notes != nil {
			q.Notes = update.Notes
		}
		if update.Items != nil {
			q.Items = update.Items
		}
		if update.Date != nil {
			q.Date = update.Date
		}

		now := r.now()
		q.UpdatedAt = &now
		q.Recalculate()

		updated = *q
		return nil
	})
	if err != nil {
		return models.Quote{}, err
	}

	return updated, nil
}

// AddPayment appends payment to the ledger and refreshes paid amount and status.
func (r *quoteRepository) AddPayment(ctx context.Context, id string, payment models.Payment) (models.Quote, error) {
	var updated models.Quote
	err := r.doc.Update(ctx, func(quotes *[]models.Quote) error {
		i := slices.IndexFunc(*quotes, func(q models.Quote) bool { return q.ID == id })
		if i < 0 {
			return ErrQuoteNotFound
		}

		q := &(*quotes)[i]
		now := r.now()

		payment.ID = r.uniqueID(func(pid string) bool {
			return slices.ContainsFunc(q.Payments, func(p models.Payment) bool { return p.ID == pid })
		})
		if payment.Method == "" {
			payment.Method = models.DefaultPaymentMethod
		}
		payment.Date = now

		q.Payments = append(q.Payments, payment)
		q.UpdatedAt = &now
		q.Recalculate()

		updated = *q
		return nil
	})
	if err != nil {
		return models.Quote{}, err
	}

	return updated, nil
}

func (r *quoteRepository) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	expired := 0
	err := r.doc.Update(ctx, func(quotes *[]models.Quote) error {
		stamp := now.UTC().Truncate(time.Millisecond)
		for i := range *quotes {
			q := &(*quotes)[i]
			if q.Status != models.QuoteSent || !q.ValidUntil.Before(now) {
				continue
			}
			q.Status = models.QuoteExpired
			q.UpdatedAt = &stamp
			expired++
		}

		if expired == 0 {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return expired, nil
}

func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	return r.doc.Update(ctx, func(quotes *[]models.Quote) error {
		before := len(*quotes)
		*quotes = slices.DeleteFunc(*quotes, func(q models.Quote) bool { return q.ID == id })
		if len(*quotes) == before {
			return ErrQuoteNotFound
		}
		return nil
	})
}
