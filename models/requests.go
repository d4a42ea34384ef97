// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"io"
)

// ContactRequest is the public contact form body.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Service string `json:"service,omitempty"`
	Budget  string `json:"budget,omitempty"`
	Message string `json:"message"`
}

// ReviewRequest is the public review form body.
// Rating accepts both 5 and "5".
type ReviewRequest struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Service string      `json:"service"`
	Rating  json.Number `json:"rating"`
	Comment string      `json:"comment"`
	Date    string      `json:"date,omitempty"`
}

// StatusUpdate is the body of every status PATCH.
type StatusUpdate struct {
	Status string `json:"status"`
}

// BlockDateRequest blocks a calendar day.
type BlockDateRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason,omitempty"`
}

// BookingRequest adds a booking to the calendar.
type BookingRequest struct {
	Date       string `json:"date"`
	ClientName string `json:"clientName"`
	Service    string `json:"service,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// QuoteRequest creates a quote.
type QuoteRequest struct {
	ClientName  string      `json:"clientName"`
	ClientEmail string      `json:"clientEmail"`
	ClientPhone string      `json:"clientPhone,omitempty"`
	Service     string      `json:"service"`
	Date        string      `json:"date,omitempty"`
	Items       []QuoteItem `json:"items"`
	Notes       string      `json:"notes,omitempty"`
}

// QuoteUpdate is the allow-listed quote patch. Nil fields are left untouched.
// Derived amounts and payment status are not patchable.
type QuoteUpdate struct {
	Status *QuoteStatus `json:"status,omitempty"`
	Notes  *string      `json:"notes,omitempty"`
	Items  []QuoteItem  `json:"items,omitempty"`
	Date   *string      `json:"date,omitempty"`
}

// PaymentRequest records a payment against a quote.
type PaymentRequest struct {
	Amount json.Number `json:"amount"`
	Method string      `json:"method,omitempty"`
	Notes  string      `json:"notes,omitempty"`
}

// PortfolioUpload carries the multipart upload fields and the image stream.
type PortfolioUpload struct {
	Title       string
	Description string
	Category    string

	FileName    string
	ContentType string
	Image       io.Reader
}

// PortfolioUpdate patches a portfolio item. Nil fields are left untouched.
type PortfolioUpdate struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Category    *string      `json:"category,omitempty"`
	Order       *json.Number `json:"order,omitempty"`
}

// ReorderRequest moves several portfolio items at once.
type ReorderRequest struct {
	Items []ReorderItem `json:"items"`
}

// ReorderItem is a new position for one portfolio item.
type ReorderItem struct {
	ID    string      `json:"id"`
	Order json.Number `json:"order"`
}

// TemplateUpdate edits a template. Empty fields are left untouched.
type TemplateUpdate struct {
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body,omitempty"`
}

// TemplateTestRequest renders a template and mails it to TestEmail.
type TemplateTestRequest struct {
	TestEmail string         `json:"testEmail"`
	Variables map[string]any `json:"variables,omitempty"`
}

// Export is a rendered download.
type Export struct {
	FileName    string
	ContentType string
	Content     []byte
}
