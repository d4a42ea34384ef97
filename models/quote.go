// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// QuoteStatus is the commercial state of a quote.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
	QuoteExpired  QuoteStatus = "expired"
)

// QuoteStatuses lists every allowed quote status.
var QuoteStatuses = []QuoteStatus{QuoteDraft, QuoteSent, QuoteAccepted, QuoteRejected, QuoteExpired}

// Valid reports whether s is an allowed quote status.
func (s QuoteStatus) Valid() bool {
	for _, status := range QuoteStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// PaymentStatus is derived from the recorded payments, never set by clients.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// QuoteValidity is how long a quote stays valid after creation.
const QuoteValidity = 30 * 24 * time.Hour

// DefaultPaymentMethod is recorded when a payment comes without a method.
const DefaultPaymentMethod = "virement"

// QuoteItem is one priced line of a quote.
type QuoteItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// Payment is an amount received against a quote. Payments are append-only.
type Payment struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Method string    `json:"method"`
	Notes  *string   `json:"notes"`
	Date   time.Time `json:"date"`
}

// Quote is a priced proposal sent to a client, with its payment ledger.
type Quote struct {
	ID          string  `json:"id"`
	QuoteNumber string  `json:"quoteNumber"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone *string `json:"clientPhone"`
	Service     Service `json:"service"`

	// Date is the planned shoot date.
	Date *string `json:"date"`

	Items       []QuoteItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Notes       *string     `json:"notes"`

	Status        QuoteStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaidAmount    float64       `json:"paidAmount"`
	Payments      []Payment     `json:"payments"`

	CreatedAt  time.Time  `json:"createdAt"`
	ValidUntil time.Time  `json:"validUntil"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// ItemsTotal returns Σ price × quantity over items.
func ItemsTotal(items []QuoteItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * item.Quantity
	}
	return total
}

// PaymentsTotal returns Σ amount over payments.
func PaymentsTotal(payments []Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// DerivePaymentStatus maps amounts to a payment status: paid once the total is
// covered, partial when something was paid, pending otherwise.
func DerivePaymentStatus(paid, total float64) PaymentStatus {
	switch {
	case paid >= total:
		return PaymentPaid
	case paid > 0:
		return PaymentPartial
	default:
		return PaymentPending
	}
}

// Recalculate refreshes every derived amount of q from its items and payments.
func (q *Quote) Recalculate() {
	q.TotalAmount = ItemsTotal(q.Items)
	q.PaidAmount = PaymentsTotal(q.Payments)
	q.PaymentStatus = DerivePaymentStatus(q.PaidAmount, q.TotalAmount)
}

// FormatQuoteNumber builds a DEVIS-YYYYMM-NNN number.
func FormatQuoteNumber(t time.Time, suffix int) string {
	return fmt.Sprintf("DEVIS-%04d%02d-%03d", t.Year(), int(t.Month()), suffix%1000)
}

// QuoteStats summarises quotes for the admin list.
type QuoteStats struct {
	Total    int `json:"total"`
	Draft    int `json:"draft"`
	Sent     int `json:"sent"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`

	// TotalAmount sums accepted quotes, PendingAmount sums sent ones.
	TotalAmount   float64 `json:"totalAmount"`
	PendingAmount float64 `json:"pendingAmount"`
}

// CountQuotes folds quotes into status counters and amounts.
func CountQuotes(quotes []Quote) QuoteStats {
	stats := QuoteStats{Total: len(quotes)}
	for _, q := range quotes {
		switch q.Status {
		case QuoteDraft:
			stats.Draft++
		case QuoteSent:
			stats.Sent++
			stats.PendingAmount += q.TotalAmount
		case QuoteAccepted:
			stats.Accepted++
			stats.TotalAmount += q.TotalAmount
		case QuoteRejected:
			stats.Rejected++
		}
	}
	return stats
}
