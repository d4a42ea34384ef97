// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/click-storm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validQuoteBody = map[string]any{
	"clientName":  "Claire <b>Bernard</b>",
	"clientEmail": "claire@example.com",
	"service":     "wedding",
	"date":        "2025-09-20",
	"items": []map[string]any{
		{"description": "Reportage journée", "quantity": 1, "price": 1200},
		{"description": "Album", "quantity": 2, "price": 150},
	},
}

func (a *testAPI) createQuote() models.Quote {
	a.t.Helper()
	rr := a.do(http.MethodPost, "/api/quotes", validQuoteBody)
	require.Equal(a.t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())
	return decodeBody[quoteResponse](a.t, rr).Quote
}

func TestQuotes_Create(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodPost, "/api/quotes", validQuoteBody)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[quoteResponse](t, rr)
	assert.Equal(t, "Devis créé avec succès", resp.Message)
	assert.Regexp(t, `^DEVIS-\d{6}-\d{3}$`, resp.Quote.QuoteNumber)
	assert.Equal(t, models.QuoteDraft, resp.Quote.Status)
	assert.Equal(t, models.PaymentPending, resp.Quote.PaymentStatus)
	assert.InDelta(t, 1500.0, resp.Quote.TotalAmount, 0.001)
	assert.Empty(t, resp.Quote.Payments)
}

func TestQuotes_CreateMissingData(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "no items", body: map[string]any{"clientName": "Claire", "clientEmail": "claire@example.com", "service": "wedding", "items": []any{}}},
		{name: "no client", body: map[string]any{"clientEmail": "claire@example.com", "service": "wedding", "items": validQuoteBody["items"]}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			body := requireStatus(t, api.do(http.MethodPost, "/api/quotes", tt.body), http.StatusBadRequest)
			assert.Equal(t, "Données manquantes", body.Message)
		})
	}
}

func TestQuotes_Payments(t *testing.T) {
	api := newTestAPI(t)
	quote := api.createQuote()

	for _, amount := range []any{0, -10} {
		body := requireStatus(t, api.do(http.MethodPost, "/api/quotes/"+quote.ID+"/payment", map[string]any{"amount": amount}), http.StatusBadRequest)
		assert.Equal(t, "Montant invalide", body.Message)
	}

	rr := api.do(http.MethodPost, "/api/quotes/"+quote.ID+"/payment", map[string]any{"amount": 500})
	require.Equal(t, http.StatusOK, rr.Code)
	partial := decodeBody[quoteResponse](t, rr)
	assert.Equal(t, "Paiement enregistré avec succès", partial.Message)
	assert.Equal(t, models.PaymentPartial, partial.Quote.PaymentStatus)
	require.Len(t, partial.Quote.Payments, 1)
	assert.Equal(t, models.DefaultPaymentMethod, partial.Quote.Payments[0].Method)

	paid := decodeBody[quoteResponse](t, api.do(http.MethodPost, "/api/quotes/"+quote.ID+"/payment", map[string]any{"amount": 1000, "method": "carte"}))
	assert.Equal(t, models.PaymentPaid, paid.Quote.PaymentStatus)
	assert.InDelta(t, 1500.0, paid.Quote.PaidAmount, 0.001)

	body := requireStatus(t, api.do(http.MethodPost, "/api/quotes/missing/payment", map[string]any{"amount": 10}), http.StatusNotFound)
	assert.Equal(t, "Devis non trouvé", body.Message)
}

func TestQuotes_UpdateListDelete(t *testing.T) {
	api := newTestAPI(t)
	sent := api.createQuote()
	api.createQuote()

	body := requireStatus(t, api.do(http.MethodPatch, "/api/quotes/"+sent.ID, map[string]any{"status": "sent", "notes": "Relancer en juillet"}), http.StatusOK)
	assert.Equal(t, "Devis mis à jour avec succès", body.Message)

	body = requireStatus(t, api.do(http.MethodPatch, "/api/quotes/"+sent.ID, map[string]any{"status": "lost"}), http.StatusBadRequest)
	assert.Equal(t, "Statut invalide", body.Message)

	got := decodeBody[quoteResponse](t, api.do(http.MethodGet, "/api/quotes/"+sent.ID, nil))
	assert.Equal(t, models.QuoteSent, got.Quote.Status)
	require.NotNil(t, got.Quote.Notes)
	assert.Equal(t, "Relancer en juillet", *got.Quote.Notes)

	list := decodeBody[quotesResponse](t, api.do(http.MethodGet, "/api/quotes/admin", nil))
	assert.Len(t, list.Quotes, 2)
	assert.Equal(t, 2, list.Stats.Total)
	assert.Equal(t, 1, list.Stats.Draft)
	assert.Equal(t, 1, list.Stats.Sent)
	assert.InDelta(t, 1500.0, list.Stats.PendingAmount, 0.001)

	filtered := decodeBody[quotesResponse](t, api.do(http.MethodGet, "/api/quotes/admin?status=sent", nil))
	require.Len(t, filtered.Quotes, 1)
	assert.Equal(t, sent.ID, filtered.Quotes[0].ID)

	body = requireStatus(t, api.do(http.MethodDelete, "/api/quotes/"+sent.ID, nil), http.StatusOK)
	assert.Equal(t, "Devis supprimé avec succès", body.Message)
	body = requireStatus(t, api.do(http.MethodGet, "/api/quotes/"+sent.ID, nil), http.StatusNotFound)
	assert.Equal(t, "Devis non trouvé", body.Message)
}

func TestQuotes_Preview(t *testing.T) {
	api := newTestAPI(t)
	quote := api.createQuote()

	rr := api.do(http.MethodGet, "/api/quotes/"+quote.ID+"/preview", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	page := rr.Body.String()
	assert.Contains(t, page, quote.QuoteNumber)
	assert.Contains(t, page, "Claire &lt;b&gt;Bernard&lt;/b&gt;")
	assert.NotContains(t, page, "<b>Bernard</b>")

	body := requireStatus(t, api.do(http.MethodGet, "/api/quotes/missing/preview", nil), http.StatusNotFound)
	assert.Equal(t, "Devis non trouvé", body.Message)
}

// A site that never stored a quote still answers the admin list.
func TestQuotes_AdminListWithoutDocument(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodGet, "/api/quotes/admin", nil)

	require.Equal(t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())
	assert.Contains(t, rr.Body.String(), `"quotes":[]`, "an empty list, never null")
	resp := decodeBody[quotesResponse](t, rr)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Quotes)
	assert.Equal(t, models.QuoteStats{}, resp.Stats)
}
