// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/MKhiriev/click-storm/internal/validators"
	"github.com/MKhiriev/click-storm/models"
)

type calendarService struct {
	calendar  store.CalendarRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewCalendarService(calendar store.CalendarRepository, validator validators.Validator, logger *logger.Logger) CalendarService {
	return &calendarService{
		calendar:  calendar,
		validator: validator,
		logger:    logger,
	}
}

func (s *calendarService) Get(ctx context.Context) (models.Calendar, error) {
	return s.calendar.Get(ctx)
}

func (s *calendarService) BlockDate(ctx context.Context, req models.BlockDateRequest) (models.BlockedDate, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.BlockedDate{}, err
	}
	return s.calendar.BlockDate(ctx, req.Date, strings.TrimSpace(req.Reason))
}

func (s *calendarService) UnblockDate(ctx context.Context, id string) error {
	return s.calendar.UnblockDate(ctx, id)
}

func (s *calendarService) AddBooking(ctx context.Context, req models.BookingRequest) (models.Booking, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		Date:       req.Date,
		ClientName: strings.TrimSpace(req.ClientName),
	}
	if req.Service != "" {
		booking.Service = &req.Service
	}
	if notes := strings.TrimSpace(req.Notes); notes != "" {
		booking.Notes = &notes
	}

	return s.calendar.AddBooking(ctx, booking)
}

func (s *calendarService) UpdateBookingStatus(ctx context.Context, id string, req models.StatusUpdate) (models.Booking, error) {
	if err := s.validator.Validate(ctx, req, validators.FieldBookingStatus); err != nil {
		return models.Booking{}, err
	}
	return s.calendar.UpdateBookingStatus(ctx, id, models.BookingStatus(req.Status))
}

func (s *calendarService) DeleteBooking(ctx context.Context, id string) error {
	return s.calendar.DeleteBooking(ctx, id)
}
