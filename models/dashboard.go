// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Dashboard is the admin statistics view built from every collection.
type Dashboard struct {
	Overview       Overview                `json:"overview"`
	ServiceStats   map[Service]ServiceStat `json:"serviceStats"`
	MonthlyData    MonthlySeries           `json:"monthlyData"`
	RecentActivity []Activity              `json:"recentActivity"`
}

// Overview holds the headline counters of the dashboard.
type Overview struct {
	TotalMessages     int     `json:"totalMessages"`
	MessagesThisMonth int     `json:"messagesThisMonth"`
	MessagesThisYear  int     `json:"messagesThisYear"`
	TotalReviews      int     `json:"totalReviews"`
	ApprovedReviews   int     `json:"approvedReviews"`
	AvgRating         float64 `json:"avgRating"`
	TotalQuotes       int     `json:"totalQuotes"`
	TotalRevenue      float64 `json:"totalRevenue"`
	RevenueThisMonth  float64 `json:"revenueThisMonth"`
	RevenueThisYear   float64 `json:"revenueThisYear"`
	UpcomingBookings  int     `json:"upcomingBookings"`
	PortfolioItems    int     `json:"portfolioItems"`
}

// ServiceStat is the quote performance of one offer.
type ServiceStat struct {
	Total          int     `json:"total"`
	Accepted       int     `json:"accepted"`
	Rejected       int     `json:"rejected"`
	ConversionRate float64 `json:"conversionRate"`
	Revenue        float64 `json:"revenue"`
}

// MonthBucket is one month of the rolling series.
type MonthBucket struct {
	Label    string  `json:"-"`
	Messages int     `json:"messages"`
	Quotes   int     `json:"quotes"`
	Revenue  float64 `json:"revenue"`
}

// MonthlySeries is encoded as a JSON object keyed by month label, oldest first.
type MonthlySeries []MonthBucket

// MarshalJSON keeps chronological key order, which a Go map would lose.
func (s MonthlySeries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, bucket := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(bucket.Label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(bucket)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ActivityType tags an entry of the recent activity feed.
type ActivityType string

const (
	ActivityMessage ActivityType = "message"
	ActivityReview  ActivityType = "review"
	ActivityQuote   ActivityType = "quote"
)

// Activity is one line of the recent activity feed.
type Activity struct {
	Type ActivityType `json:"type"`
	Icon string       `json:"icon"`
	Text string       `json:"text"`
	Date time.Time    `json:"date"`
}
