// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/click-storm/models"
)

//go:embed html/*.gohtml
var htmlFS embed.FS

var pages = template.Must(template.ParseFS(htmlFS, "html/*.gohtml"))

// frenchDate renders t as dd/mm/yyyy.
func frenchDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// frenchDay renders a YYYY-MM-DD day as dd/mm/yyyy, or returns it unchanged
// when it does not parse.
func frenchDay(day string) string {
	t, err := time.Parse(models.DateLayout, day)
	if err != nil {
		return day
	}
	return frenchDate(t)
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

type previewItem struct {
	Description string
	Quantity    string
	Price       string
	Total       string
}

type previewData struct {
	Number            string
	ValidUntil        string
	PhotographerEmail string
	ClientName        string
	ClientEmail       string
	ClientPhone       string
	Date              string
	Service           string
	Items             []previewItem
	Total             string
	Notes             string
}

// QuotePreview renders the printable HTML page of q. Every client-supplied
// value is HTML-escaped.
func QuotePreview(q models.Quote, photographerEmail string) ([]byte, error) {
	data := previewData{
		Number:            q.QuoteNumber,
		ValidUntil:        frenchDate(q.ValidUntil),
		PhotographerEmail: photographerEmail,
		ClientName:        q.ClientName,
		ClientEmail:       q.ClientEmail,
		Service:           q.Service.Label(),
		Total:             amount(q.TotalAmount),
	}
	if q.ClientPhone != nil {
		data.ClientPhone = *q.ClientPhone
	}
	if q.Date != nil && *q.Date != "" {
		data.Date = frenchDay(*q.Date)
	}
	if q.Notes != nil {
		data.Notes = *q.Notes
	}
	for _, item := range q.Items {
		data.Items = append(data.Items, previewItem{
			Description: item.Description,
			Quantity:    strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			Price:       amount(item.Price),
			Total:       amount(item.Price * item.Quantity),
		})
	}

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "quote_preview.gohtml", data); err != nil {
		return nil, fmt.Errorf("error rendering quote preview: %w", err)
	}
	return buf.Bytes(), nil
}

type notificationData struct {
	Name       string
	Email      string
	Phone      string
	Service    string
	Budget     string
	Lines      []string
	ReceivedAt string
}

// ContactNotification builds the email telling the photographer about a new
// contact message. Replies go to the sender.
func ContactNotification(m models.Message, to string) (models.Mail, error) {
	data := notificationData{
		Name:       m.Name,
		Email:      m.Email,
		Lines:      strings.Split(m.Message, "\n"),
		ReceivedAt: m.CreatedAt.Format("02/01/2006 15:04"),
	}
	if m.Phone != nil {
		data.Phone = *m.Phone
	}
	if m.Service != nil {
		data.Service = m.Service.Label()
	}
	if m.Budget != nil {
		data.Budget = string(*m.Budget)
	}

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "contact_notification.gohtml", data); err != nil {
		return models.Mail{}, fmt.Errorf("error rendering contact notification: %w", err)
	}

	return models.Mail{
		To:      to,
		ReplyTo: m.Email,
		Subject: fmt.Sprintf("Nouveau message de %s - click.storm51", m.Name),
		Body:    buf.String(),
		HTML:    true,
	}, nil
}

// ContactAcknowledgment renders the contactConfirmation template for the
// sender of m.
func ContactAcknowledgment(tmpl models.EmailTemplate, m models.Message) models.Mail {
	vars := map[string]any{
		"clientName": m.Name,
		"date":       frenchDate(m.CreatedAt),
	}
	if m.Service != nil {
		vars["service"] = m.Service.Label()
	}

	rendered := Render(tmpl, vars)
	return models.Mail{
		To:      m.Email,
		Subject: rendered.Subject,
		Body:    rendered.Body,
	}
}
