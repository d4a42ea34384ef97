// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the site: request validation,
// normalization, status filters, email dispatch and the admin aggregates.
// Services take the decoded request bodies and return domain models; they
// never see HTTP.
package service

import (
	"context"

	"github.com/MKhiriev/click-storm/models"
)

// ContactService handles contact form submissions and the admin inbox.
type ContactService interface {
	// Submit validates and stores the message, then mails the photographer
	// and the sender. The message stays stored when mailing fails.
	Submit(ctx context.Context, req models.ContactRequest) (models.Message, error)
	List(ctx context.Context, status string) ([]models.Message, models.MessageStats, error)
	UpdateStatus(ctx context.Context, id string, req models.StatusUpdate) (models.Message, error)
	Delete(ctx context.Context, id string) error
}

// ReviewService handles testimonials and their moderation.
type ReviewService interface {
	ListApproved(ctx context.Context) ([]models.Review, error)
	Submit(ctx context.Context, req models.ReviewRequest) (models.Review, error)
	List(ctx context.Context, status string) ([]models.Review, models.ReviewStats, error)
	Moderate(ctx context.Context, id string, req models.StatusUpdate) (models.Review, error)
	Delete(ctx context.Context, id string) error
}

type CalendarService interface {
	Get(ctx context.Context) (models.Calendar, error)
	BlockDate(ctx context.Context, req models.BlockDateRequest) (models.BlockedDate, error)
	UnblockDate(ctx context.Context, id string) error
	AddBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, req models.StatusUpdate) (models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

type PortfolioService interface {
	// List returns items by display order. An empty category or "all" returns everything.
	List(ctx context.Context, category string) ([]models.PortfolioItem, error)
	Stats(ctx context.Context) ([]models.PortfolioItem, models.PortfolioStats, error)
	Upload(ctx context.Context, req models.PortfolioUpload) (models.PortfolioItem, error)
	Update(ctx context.Context, id string, req models.PortfolioUpdate) (models.PortfolioItem, error)
	Reorder(ctx context.Context, req models.ReorderRequest) error
	// Delete removes the item, then its image on a best-effort basis.
	Delete(ctx context.Context, id string) error
}

type QuoteService interface {
	List(ctx context.Context, status string) ([]models.Quote, models.QuoteStats, error)
	Get(ctx context.Context, id string) (models.Quote, error)
	Create(ctx context.Context, req models.QuoteRequest) (models.Quote, error)
	Update(ctx context.Context, id string, req models.QuoteUpdate) (models.Quote, error)
	AddPayment(ctx context.Context, id string, req models.PaymentRequest) (models.Quote, error)
	Delete(ctx context.Context, id string) error
	// Preview renders the printable HTML page of a quote.
	Preview(ctx context.Context, id string) ([]byte, error)
	// ExpireOverdue marks sent quotes past their validity as expired and
	// returns how many changed.
	ExpireOverdue(ctx context.Context) (int, error)
}

type TemplateService interface {
	List(ctx context.Context) (models.EmailTemplates, error)
	Get(ctx context.Context, id string) (models.EmailTemplate, error)
	Update(ctx context.Context, id string, req models.TemplateUpdate) (models.EmailTemplate, error)
	Reset(ctx context.Context, id string) (models.EmailTemplate, error)
	// SendTest renders the template with the given variables and mails it
	// to the test address.
	SendTest(ctx context.Context, id string, req models.TemplateTestRequest) (models.RenderedEmail, error)
}

// StatsService builds the dashboard and CSV exports.
type StatsService interface {
	Dashboard(ctx context.Context) (models.Dashboard, error)
	Export(ctx context.Context, kind string) (models.Export, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.Health
}
