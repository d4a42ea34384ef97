// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboard_Empty(t *testing.T) {
	api := newTestAPI(t)

	rr := api.do(http.MethodGet, "/api/stats/dashboard", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Success bool `json:"success"`
		Stats   struct {
			Overview       map[string]float64         `json:"overview"`
			ServiceStats   map[string]json.RawMessage `json:"serviceStats"`
			MonthlyData    map[string]json.RawMessage `json:"monthlyData"`
			RecentActivity []json.RawMessage          `json:"recentActivity"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	for name, value := range resp.Stats.Overview {
		assert.Zero(t, value, name)
	}
	assert.Len(t, resp.Stats.ServiceStats, 4)
	assert.Len(t, resp.Stats.MonthlyData, 6)
	assert.NotNil(t, resp.Stats.RecentActivity)
	assert.Empty(t, resp.Stats.RecentActivity)
}

func TestDashboard_CountsActivity(t *testing.T) {
	api := newTestAPI(t)
	api.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	requireStatus(t, api.do(http.MethodPost, "/api/contact", validContactBody), http.StatusOK)
	requireStatus(t, api.do(http.MethodPost, "/api/reviews", validReviewBody), http.StatusOK)
	api.createQuote()

	var resp struct {
		Stats struct {
			Overview struct {
				TotalMessages int `json:"totalMessages"`
				TotalReviews  int `json:"totalReviews"`
				TotalQuotes   int `json:"totalQuotes"`
			} `json:"overview"`
			RecentActivity []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"recentActivity"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(api.do(http.MethodGet, "/api/stats/dashboard", nil).Body.Bytes(), &resp))

	assert.Equal(t, 1, resp.Stats.Overview.TotalMessages)
	assert.Equal(t, 1, resp.Stats.Overview.TotalReviews)
	assert.Equal(t, 1, resp.Stats.Overview.TotalQuotes)
	assert.Len(t, resp.Stats.RecentActivity, 3)
}

func TestExport(t *testing.T) {
	tests := []struct {
		kind       string
		wantFile   string
		wantHeader string
	}{
		{kind: "messages", wantFile: "messages-export.csv", wantHeader: "Date;Nom;Email;Téléphone;Service;Budget;Message;Statut"},
		{kind: "reviews", wantFile: "avis-export.csv", wantHeader: "Date;Nom;Email;Service;Note;Commentaire;Statut"},
		{kind: "quotes", wantFile: "devis-export.csv", wantHeader: "N° Devis;Date;Client;Email;Service;Montant;Statut;Paiement"},
		{kind: "bookings", wantFile: "reservations-export.csv", wantHeader: "Date;Client;Service;Notes;Statut"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			api := newTestAPI(t)

			rr := api.do(http.MethodGet, "/api/stats/export/"+tt.kind, nil)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/csv; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Header().Get("Content-Disposition"), "attachment")
			assert.Contains(t, rr.Header().Get("Content-Disposition"), tt.wantFile)

			content := rr.Body.String()
			require.True(t, strings.HasPrefix(content, "\uFEFF"), "csv must start with a BOM")
			assert.Equal(t, tt.wantHeader, strings.SplitN(strings.TrimPrefix(content, "\uFEFF"), "\n", 2)[0])
		})
	}
}

func TestExport_WithRows(t *testing.T) {
	api := newTestAPI(t)
	requireStatus(t, api.do(http.MethodPost, "/api/calendar/booking", map[string]string{
		"date":       "2025-09-06",
		"clientName": "Famille Leroy",
		"notes":      "Arrivée 14h; parking",
	}), http.StatusOK)

	rr := api.do(http.MethodGet, "/api/stats/export/bookings", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "\n06/09/2025;Famille Leroy;;\"Arrivée 14h; parking\";confirmed")
}

func TestExport_UnknownKind(t *testing.T) {
	api := newTestAPI(t)

	body := requireStatus(t, api.do(http.MethodGet, "/api/stats/export/photos", nil), http.StatusBadRequest)

	assert.False(t, body.Success)
	assert.Equal(t, "Type d'export invalide", body.Message)
}
