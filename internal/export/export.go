// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export renders collections as semicolon-separated CSV for
// spreadsheet users. Output starts with a UTF-8 BOM.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/click-storm/models"
)

// ErrUnknownKind is returned for an export type that does not exist.
var ErrUnknownKind = errors.New("unknown export kind")

// Kind names an exportable collection.
type Kind string

const (
	KindMessages Kind = "messages"
	KindReviews  Kind = "reviews"
	KindQuotes   Kind = "quotes"
	KindBookings Kind = "bookings"
)

var fileNames = map[Kind]string{
	KindMessages: "messages-export.csv",
	KindReviews:  "avis-export.csv",
	KindQuotes:   "devis-export.csv",
	KindBookings: "reservations-export.csv",
}

// ParseKind validates s as an export kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := fileNames[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// FileName is the attachment name of the kind's download.
func (k Kind) FileName() string {
	return fileNames[k]
}

// ContentType of every export.
const ContentType = "text/csv; charset=utf-8"

const bom = "\uFEFF"

func date(t time.Time) string {
	return t.UTC().Format("02/01/2006")
}

// day reformats a YYYY-MM-DD day, leaving unparsable values as they are.
func day(s string) string {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}

func opt[T ~string](v *T) string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func encode(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(bom)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("error writing csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Messages exports contact messages.
func Messages(messages []models.Message) ([]byte, error) {
	rows := make([][]string, 0, len(messages))
	for _, m := range messages {
		rows = append(rows, []string{
			date(m.CreatedAt),
			m.Name,
			m.Email,
			opt(m.Phone),
			opt(m.Service),
			opt(m.Budget),
			m.Message,
			string(m.Status),
		})
	}
	return encode([]string{"Date", "Nom", "Email", "Téléphone", "Service", "Budget", "Message", "Statut"}, rows)
}

// Reviews exports client reviews.
func Reviews(reviews []models.Review) ([]byte, error) {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, []string{
			date(r.CreatedAt),
			r.Name,
			r.Email,
			string(r.Service),
			strconv.Itoa(r.Rating),
			r.Comment,
			string(r.Status),
		})
	}
	return encode([]string{"Date", "Nom", "Email", "Service", "Note", "Commentaire", "Statut"}, rows)
}

// Quotes exports quotes with their amount and payment state.
func Quotes(quotes []models.Quote) ([]byte, error) {
	rows := make([][]string, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, []string{
			q.QuoteNumber,
			date(q.CreatedAt),
			q.ClientName,
			q.ClientEmail,
			string(q.Service),
			strconv.FormatFloat(q.TotalAmount, 'f', 2, 64),
			string(q.Status),
			string(q.PaymentStatus),
		})
	}
	return encode([]string{"N° Devis", "Date", "Client", "Email", "Service", "Montant", "Statut", "Paiement"}, rows)
}

// Bookings exports calendar bookings.
func Bookings(bookings []models.Booking) ([]byte, error) {
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, []string{
			day(b.Date),
			b.ClientName,
			opt(b.Service),
			opt(b.Notes),
			string(b.Status),
		})
	}
	return encode([]string{"Date", "Client", "Service", "Notes", "Statut"}, rows)
}
