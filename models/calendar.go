// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BookingStatus is the state of a calendar booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is an allowed booking status.
func (s BookingStatus) Valid() bool {
	return s == BookingConfirmed || s == BookingCancelled
}

// DefaultBlockReason is stored when a date is blocked without a reason.
const DefaultBlockReason = "Indisponible"

// DateLayout is the calendar day format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// BlockedDate marks a day on which the photographer is unavailable.
type BlockedDate struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// Booking is a confirmed (or cancelled) shoot on a given day.
type Booking struct {
	ID         string        `json:"id"`
	Date       string        `json:"date"`
	ClientName string        `json:"clientName"`
	Service    *string       `json:"service"`
	Notes      *string       `json:"notes"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  *time.Time    `json:"updatedAt,omitempty"`
}

// Calendar is the single availability document.
type Calendar struct {
	BlockedDates []BlockedDate `json:"blockedDates"`
	Bookings     []Booking     `json:"bookings"`
}

// NewCalendar returns the empty calendar used when none was stored yet.
func NewCalendar() Calendar {
	return Calendar{
		BlockedDates: []BlockedDate{},
		Bookings:     []Booking{},
	}
}
