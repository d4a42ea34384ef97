// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PortfolioItem is a published photo with its display position.
type PortfolioItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    Service `json:"category"`

	// Image is the public path of the stored file.
	Image string `json:"image"`

	// Order sequences items on the public gallery, ascending.
	Order int `json:"order"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// PortfolioStats counts items per category.
type PortfolioStats struct {
	Total      int `json:"total"`
	Wedding    int `json:"wedding"`
	Portrait   int `json:"portrait"`
	Event      int `json:"event"`
	Corporate  int `json:"corporate"`
	Commercial int `json:"commercial"`
	Artistic   int `json:"artistic"`
}

// CountPortfolio folds items into per-category counters.
func CountPortfolio(items []PortfolioItem) PortfolioStats {
	stats := PortfolioStats{Total: len(items)}
	for _, item := range items {
		switch item.Category {
		case ServiceWedding:
			stats.Wedding++
		case ServicePortrait:
			stats.Portrait++
		case ServiceEvent:
			stats.Event++
		case ServiceCorporate:
			stats.Corporate++
		case ServiceCommercial:
			stats.Commercial++
		case ServiceArtistic:
			stats.Artistic++
		}
	}
	return stats
}

// PortfolioChanges is a validated portfolio patch. Nil fields are left untouched.
type PortfolioChanges struct {
	Title       *string
	Description *string
	Category    *Service
	Order       *int
}

// ItemPosition is the new display order of one item.
type ItemPosition struct {
	ID    string
	Order int
}
