// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stats folds the stored collections into the admin dashboard.
// Everything here is pure: inputs are read, never modified.
package stats

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/MKhiriev/click-storm/models"
)

const (
	monthsInSeries    = 6
	activityPerKind   = 5
	activityFeedLimit = 10
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// Input is the set of collections the dashboard reads. Messages, reviews
// and quotes must be in stored order.
type Input struct {
	Messages  []models.Message
	Reviews   []models.Review
	Quotes    []models.Quote
	Calendar  models.Calendar
	Portfolio []models.PortfolioItem
}

// Dashboard computes every dashboard section as of now.
func Dashboard(in Input, now time.Time) models.Dashboard {
	now = now.UTC()
	return models.Dashboard{
		Overview:       overview(in, now),
		ServiceStats:   serviceStats(in.Quotes),
		MonthlyData:    monthlySeries(in, now),
		RecentActivity: recentActivity(in),
	}
}

func sameMonth(t, ref time.Time) bool {
	t = t.UTC()
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

func sameYear(t, ref time.Time) bool {
	return t.UTC().Year() == ref.Year()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// MonthLabel returns the French "mois année" label of t, e.g. "juin 2025".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", frenchMonths[t.Month()-1], t.Year())
}

func overview(in Input, now time.Time) models.Overview {
	o := models.Overview{
		TotalMessages:  len(in.Messages),
		TotalReviews:   len(in.Reviews),
		TotalQuotes:    len(in.Quotes),
		PortfolioItems: len(in.Portfolio),
	}

	for _, m := range in.Messages {
		if sameMonth(m.CreatedAt, now) {
			o.MessagesThisMonth++
		}
		if sameYear(m.CreatedAt, now) {
			o.MessagesThisYear++
		}
	}

	ratingSum := 0
	for _, r := range in.Reviews {
		if r.Status == models.ReviewApproved {
			o.ApprovedReviews++
			ratingSum += r.Rating
		}
	}
	if o.ApprovedReviews > 0 {
		o.AvgRating = round1(float64(ratingSum) / float64(o.ApprovedReviews))
	}

	for _, q := range in.Quotes {
		if q.Status != models.QuoteAccepted {
			continue
		}
		o.TotalRevenue += q.TotalAmount
		if sameMonth(q.CreatedAt, now) {
			o.RevenueThisMonth += q.TotalAmount
		}
		if sameYear(q.CreatedAt, now) {
			o.RevenueThisYear += q.TotalAmount
		}
	}

	today := now.Format(models.DateLayout)
	for _, b := range in.Calendar.Bookings {
		if b.Status == models.BookingConfirmed && b.Date >= today {
			o.UpcomingBookings++
		}
	}

	return o
}

func serviceStats(quotes []models.Quote) map[models.Service]models.ServiceStat {
	out := make(map[models.Service]models.ServiceStat, len(models.DashboardServices))
	for _, service := range models.DashboardServices {
		var st models.ServiceStat
		for _, q := range quotes {
			if q.Service != service {
				continue
			}
			st.Total++
			switch q.Status {
			case models.QuoteAccepted:
				st.Accepted++
				st.Revenue += q.TotalAmount
			case models.QuoteRejected:
				st.Rejected++
			}
		}
		if st.Total > 0 {
			st.ConversionRate = round1(float64(st.Accepted) / float64(st.Total) * 100)
		}
		out[service] = st
	}
	return out
}

// monthlySeries buckets the trailing months, current month included, oldest first.
func monthlySeries(in Input, now time.Time) models.MonthlySeries {
	series := make(models.MonthlySeries, 0, monthsInSeries)
	for i := monthsInSeries - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, time.UTC)

		bucket := models.MonthBucket{Label: MonthLabel(month)}
		for _, m := range in.Messages {
			if sameMonth(m.CreatedAt, month) {
				bucket.Messages++
			}
		}
		for _, q := range in.Quotes {
			if !sameMonth(q.CreatedAt, month) {
				continue
			}
			bucket.Quotes++
			if q.Status == models.QuoteAccepted {
				bucket.Revenue += q.TotalAmount
			}
		}
		series = append(series, bucket)
	}
	return series
}

// latest returns the last n items in stored order, most recent first.
// Timestamps are ignored here; the merged feed is sorted afterwards.
func latest[T any](items []T, n int) []T {
	tail := slices.Clone(items[max(0, len(items)-n):])
	slices.Reverse(tail)
	return tail
}

func recentActivity(in Input) []models.Activity {
	feed := make([]models.Activity, 0, 3*activityPerKind)

	for _, m := range latest(in.Messages, activityPerKind) {
		feed = append(feed, models.Activity{
			Type: models.ActivityMessage,
			Icon: "📬",
			Text: "Nouveau message de " + m.Name,
			Date: m.CreatedAt,
		})
	}
	for _, r := range latest(in.Reviews, activityPerKind) {
		feed = append(feed, models.Activity{
			Type: models.ActivityReview,
			Icon: "⭐",
			Text: fmt.Sprintf("Nouvel avis de %s (%d★)", r.Name, r.Rating),
			Date: r.CreatedAt,
		})
	}
	for _, q := range latest(in.Quotes, activityPerKind) {
		feed = append(feed, models.Activity{
			Type: models.ActivityQuote,
			Icon: "💰",
			Text: fmt.Sprintf("Devis %s créé (%s€)", q.QuoteNumber, strconv.FormatFloat(q.TotalAmount, 'f', -1, 64)),
			Date: q.CreatedAt,
		})
	}

	slices.SortStableFunc(feed, func(a, b models.Activity) int {
		return b.Date.Compare(a.Date)
	})
	if len(feed) > activityFeedLimit {
		feed = feed[:activityFeedLimit]
	}
	return feed
}
