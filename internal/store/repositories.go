// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"time"

	"github.com/MKhiriev/click-storm/internal/utils"
)

// Document names, one per resource kind.
const (
	MessagesDocument  = "messages"
	ReviewsDocument   = "reviews"
	QuotesDocument    = "quotes"
	CalendarDocument  = "calendar"
	PortfolioDocument = "portfolio"
	TemplatesDocument = "email-templates"
)

// stamps carries the id generator and clock shared by every repository.
// Timestamps are UTC truncated to milliseconds so month and year buckets
// can be compared on their canonical form.
type stamps struct {
	newID func() string
	now   func() time.Time
}

func defaultStamps() stamps {
	ids := utils.NewUUIDGenerator()
	return stamps{
		newID: ids.Generate,
		now:   utcNow,
	}
}

func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// uniqueID draws ids until one is not taken.
func (s stamps) uniqueID(taken func(id string) bool) string {
	for {
		id := s.newID()
		if !taken(id) {
			return id
		}
	}
}

// byNewest sorts createdAt descending, keeping insertion order for ties.
func byNewest[T any](items []T, createdAt func(T) time.Time) {
	slices.SortStableFunc(items, func(a, b T) int {
		return createdAt(b).Compare(createdAt(a))
	})
}

func emptySlice[T any]() []T {
	return []T{}
}
