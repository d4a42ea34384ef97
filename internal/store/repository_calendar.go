// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/models"
)

// calendarRepository owns the single calendar document.
type calendarRepository struct {
	stamps
	doc    *Document[models.Calendar]
	logger *logger.Logger
}

// NewCalendarRepository constructs a [CalendarRepository] over backend.
func NewCalendarRepository(backend Backend, locks *Locker, logger *logger.Logger) CalendarRepository {
	logger.Debug().Msg("creating calendar repository")
	return &calendarRepository{
		stamps: defaultStamps(),
		doc:    NewDocument(CalendarDocument, backend, locks, models.NewCalendar),
		logger: logger,
	}
}

// update runs mutate on the calendar with null lists replaced by empty ones.
func (r *calendarRepository) update(ctx context.Context, mutate func(*models.Calendar) error) error {
	return r.doc.Update(ctx, func(cal *models.Calendar) error {
		normalizeCalendar(cal)
		return mutate(cal)
	})
}

func normalizeCalendar(cal *models.Calendar) {
	if cal.BlockedDates == nil {
		cal.BlockedDates = []models.BlockedDate{}
	}
	if cal.Bookings == nil {
		cal.Bookings = []models.Booking{}
	}
}

func (r *calendarRepository) Get(ctx context.Context) (models.Calendar, error) {
	cal, err := r.doc.Load(ctx)
	if err != nil {
		return models.Calendar{}, err
	}
	normalizeCalendar(&cal)
	return cal, nil
}

// BlockDate adds a block entry for date. A day can be blocked only once.
func (r *calendarRepository) BlockDate(ctx context.Context, date, reason string) (models.BlockedDate, error) {
	var blocked models.BlockedDate
	err := r.update(ctx, func(cal *models.Calendar) error {
		if slices.ContainsFunc(cal.BlockedDates, func(b models.BlockedDate) bool { return b.Date == date }) {
			return ErrDateAlreadyBlocked
		}

		if reason == "" {
			reason = models.DefaultBlockReason
		}
		blocked = models.BlockedDate{
			ID: r.uniqueID(func(id string) bool {
				return slices.ContainsFunc(cal.BlockedDates, func(b models.BlockedDate) bool { return b.ID == id })
			}),
			Date:      date,
			Reason:    reason,
			CreatedAt: r.now(),
		}
		cal.BlockedDates = append(cal.BlockedDates, blocked)
		return nil
	})
	if err != nil {
		return models.BlockedDate{}, err
	}

	return blocked, nil
}

func (r *calendarRepository) UnblockDate(ctx context.Context, id string) error {
	return r.update(ctx, func(cal *models.Calendar) error {
		before := len(cal.BlockedDates)
		cal.BlockedDates = slices.DeleteFunc(cal.BlockedDates, func(b models.BlockedDate) bool { return b.ID == id })
		if len(cal.BlockedDates) == before {
			return ErrBlockedDateNotFound
		}
		return nil
	})
}

// AddBooking stores booking as confirmed.
func (r *calendarRepository) AddBooking(ctx context.Context, booking models.Booking) (models.Booking, error) {
	err := r.update(ctx, func(cal *models.Calendar) error {
		booking.ID = r.uniqueID(func(id string) bool {
			return slices.ContainsFunc(cal.Bookings, func(b models.Booking) bool { return b.ID == id })
		})
		booking.Status = models.BookingConfirmed
		booking.CreatedAt = r.now()
		booking.UpdatedAt = nil

		cal.Bookings = append(cal.Bookings, booking)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*calendarRepository.AddBooking").Msg("error saving booking")
		return models.Booking{}, err
	}

	return booking, nil
}

func (r *calendarRepository) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (models.Booking, error) {
	var updated models.Booking
	err := r.update(ctx, func(cal *models.Calendar) error {
		i := slices.IndexFunc(cal.Bookings, func(b models.Booking) bool { return b.ID == id })
		if i < 0 {
			return ErrBookingNotFound
		}

		now := r.now()
		cal.Bookings[i].Status = status
		cal.Bookings[i].UpdatedAt = &now
		updated = cal.Bookings[i]
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}

	return updated, nil
}

func (r *calendarRepository) DeleteBooking(ctx context.Context, id string) error {
	return r.update(ctx, func(cal *models.Calendar) error {
		before := len(cal.Bookings)
		cal.Bookings = slices.DeleteFunc(cal.Bookings, func(b models.Booking) bool { return b.ID == id })
		if len(cal.Bookings) == before {
			return ErrBookingNotFound
		}
		return nil
	})
}
