// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/click-storm/internal/export"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/MKhiriev/click-storm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsDashboard_Empty(t *testing.T) {
	svc := NewStatsService(newTestStorages(t), logger.Nop()).(*statsService)
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }

	dashboard, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Overview{}, dashboard.Overview)
	assert.Len(t, dashboard.ServiceStats, len(models.DashboardServices))
	require.NotEmpty(t, dashboard.MonthlyData)
	assert.Equal(t, "juin 2025", dashboard.MonthlyData[len(dashboard.MonthlyData)-1].Label)
	assert.Empty(t, dashboard.RecentActivity)
}

func TestStatsDashboard_CountsStoredData(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()
	seedMessages(t, storages, models.MessageUnread, models.MessageRead)

	quote, err := storages.Quotes.Create(ctx, models.Quote{
		ClientName: "Claire", ClientEmail: "c@example.com", Service: models.ServiceWedding,
		Items: []models.QuoteItem{{Description: "Reportage", Quantity: 1, Price: 1200}},
	})
	require.NoError(t, err)
	accepted := models.QuoteAccepted
	_, err = storages.Quotes.Update(ctx, quote.ID, models.QuoteUpdate{Status: &accepted})
	require.NoError(t, err)

	dashboard, err := NewStatsService(storages, logger.Nop()).Dashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, dashboard.Overview.TotalMessages)
	assert.Equal(t, 1, dashboard.Overview.TotalQuotes)
	assert.InDelta(t, 1200.0, dashboard.Overview.TotalRevenue, 1e-9)
	assert.Equal(t, models.ServiceStat{Total: 1, Accepted: 1, ConversionRate: 100, Revenue: 1200}, dashboard.ServiceStats[models.ServiceWedding])
	assert.Len(t, dashboard.RecentActivity, 3)
}

func TestStatsExport(t *testing.T) {
	storages := newTestStorages(t)
	seedMessages(t, storages, models.MessageUnread)
	svc := NewStatsService(storages, logger.Nop())

	out, err := svc.Export(context.Background(), "messages")

	require.NoError(t, err)
	assert.Equal(t, "messages-export.csv", out.FileName)
	assert.Equal(t, export.ContentType, out.ContentType)
	content := string(out.Content)
	assert.True(t, strings.HasPrefix(content, "\uFEFF"), "exports start with a UTF-8 BOM")
	assert.Contains(t, content, "c@example.com")
}

func TestStatsExport_EveryKind(t *testing.T) {
	svc := NewStatsService(newTestStorages(t), logger.Nop())

	for _, kind := range []string{"messages", "reviews", "quotes", "bookings"} {
		t.Run(kind, func(t *testing.T) {
			out, err := svc.Export(context.Background(), kind)
			require.NoError(t, err)
			assert.NotEmpty(t, out.Content, "the header row is always written")
		})
	}
}

func TestStatsExport_UnknownKind(t *testing.T) {
	svc := NewStatsService(newTestStorages(t), logger.Nop())

	_, err := svc.Export(context.Background(), "invoices")

	assert.ErrorIs(t, err, export.ErrUnknownKind)
}

func TestStatsExport_KeepsStoredOrder(t *testing.T) {
	backend := store.NewMemoryBackend()
	images := store.NewFileImageStorage(t.TempDir(), "/assets/images/portfolio/")
	storages := store.NewStoragesWithBackend(backend, images, logger.Nop())

	// stored out of chronological order on purpose
	stored := []models.Message{
		{ID: "a", Name: "Newest", Email: "newest@example.com", Status: models.MessageUnread, CreatedAt: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)},
		{ID: "b", Name: "Oldest", Email: "oldest@example.com", Status: models.MessageUnread, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, backend.Write(context.Background(), store.MessagesDocument, data))

	out, err := NewStatsService(storages, logger.Nop()).Export(context.Background(), "messages")

	require.NoError(t, err)
	content := string(out.Content)
	newest := strings.Index(content, "newest@example.com")
	oldest := strings.Index(content, "oldest@example.com")
	require.NotEqual(t, -1, newest)
	require.NotEqual(t, -1, oldest)
	assert.Less(t, newest, oldest, "rows follow the document, not the timestamps")
}
