// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ReviewStatus is the moderation state of a client review.
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// ReviewStatuses lists every allowed review status.
var ReviewStatuses = []ReviewStatus{ReviewPending, ReviewApproved, ReviewRejected}

// Valid reports whether s is an allowed review status.
func (s ReviewStatus) Valid() bool {
	for _, status := range ReviewStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Review is a client testimonial. Only approved reviews are shown publicly.
type Review struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Service Service `json:"service"`
	Rating  int     `json:"rating"`
	Comment string  `json:"comment"`

	// Date is the free-form date of the shoot as typed by the client.
	Date *string `json:"date"`

	Status      ReviewStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	ModeratedAt *time.Time   `json:"moderatedAt,omitempty"`
}

// ReviewStats counts reviews per moderation state.
type ReviewStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// CountReviews folds reviews into per-status counters.
func CountReviews(reviews []Review) ReviewStats {
	stats := ReviewStats{Total: len(reviews)}
	for _, r := range reviews {
		switch r.Status {
		case ReviewPending:
			stats.Pending++
		case ReviewApproved:
			stats.Approved++
		case ReviewRejected:
			stats.Rejected++
		}
	}
	return stats
}
