// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/click-storm/models"
)

// Backend persists whole documents by name.
//
// Read returns [ErrDocumentNotFound] for a document that was never written
// and [ErrDocumentUnreadable] for one that exists but cannot be read. Write
// replaces the full content; there is no incremental patching.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// MessageRepository owns the contact messages document.
type MessageRepository interface {
	// List returns messages newest first, restricted to status when it is non-empty.
	List(ctx context.Context, status models.MessageStatus) ([]models.Message, error)
	// All returns every message in stored order, oldest insertion first.
	All(ctx context.Context) ([]models.Message, error)
	Get(ctx context.Context, id string) (models.Message, error)
	Create(ctx context.Context, message models.Message) (models.Message, error)
	UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (models.Message, error)
	Delete(ctx context.Context, id string) error
}

// ReviewRepository owns the reviews document.
type ReviewRepository interface {
	// List returns reviews newest first, restricted to status when it is non-empty.
	List(ctx context.Context, status models.ReviewStatus) ([]models.Review, error)
	// All returns every review in stored order, oldest insertion first.
	All(ctx context.Context) ([]models.Review, error)
	Get(ctx context.Context, id string) (models.Review, error)
	Create(ctx context.Context, review models.Review) (models.Review, error)
	Moderate(ctx context.Context, id string, status models.ReviewStatus) (models.Review, error)
	Delete(ctx context.Context, id string) error
}

// QuoteRepository owns the quotes document. Derived amounts are always
// recomputed here, whatever the caller passes in.
type QuoteRepository interface {
	// List returns quotes newest first, restricted to status when it is non-empty.
	List(ctx context.Context, status models.QuoteStatus) ([]models.Quote, error)
	// All returns every quote in stored order, oldest insertion first.
	All(ctx context.Context) ([]models.Quote, error)
	Get(ctx context.Context, id string) (models.Quote, error)
	Create(ctx context.Context, quote models.Quote) (models.Quote, error)
	Update(ctx context.Context, id string, update models.QuoteUpdate) (models.Quote, error)
	AddPayment(ctx context.Context, id string, payment models.Payment) (models.Quote, error)
	// ExpireOverdue moves sent quotes whose validity ended before now to expired.
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
	Delete(ctx context.Context, id string) error
}

// CalendarRepository owns the single calendar document.
type CalendarRepository interface {
	Get(ctx context.Context) (models.Calendar, error)
	BlockDate(ctx context.Context, date, reason string) (models.BlockedDate, error)
	UnblockDate(ctx context.Context, id string) error
	AddBooking(ctx context.Context, booking models.Booking) (models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// PortfolioRepository owns the portfolio document.
type PortfolioRepository interface {
	// List returns items by ascending order, restricted to category when it is non-empty.
	List(ctx context.Context, category models.Service) ([]models.PortfolioItem, error)
	Get(ctx context.Context, id string) (models.PortfolioItem, error)
	Create(ctx context.Context, item models.PortfolioItem) (models.PortfolioItem, error)
	Update(ctx context.Context, id string, changes models.PortfolioChanges) (models.PortfolioItem, error)
	Reorder(ctx context.Context, positions []models.ItemPosition) error
	// Delete removes the item and returns it so the caller can drop its image.
	Delete(ctx context.Context, id string) (models.PortfolioItem, error)
}

// TemplateRepository owns the email templates document. Stored overrides are
// layered over the built-in templates.
type TemplateRepository interface {
	List(ctx context.Context) (models.EmailTemplates, error)
	Get(ctx context.Context, id string) (models.EmailTemplate, error)
	Update(ctx context.Context, id string, update models.TemplateUpdate) (models.EmailTemplate, error)
	Reset(ctx context.Context, id string) (models.EmailTemplate, error)
}

// ImageStorage keeps uploaded portfolio images and hands back their public path.
type ImageStorage interface {
	Save(ctx context.Context, ext string, image io.Reader) (string, error)
	// Delete removes the file behind publicPath. Paths outside the storage and
	// missing files are ignored.
	Delete(ctx context.Context, publicPath string) error
}
