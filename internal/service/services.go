// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/click-storm/internal/adapter"
	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/MKhiriev/click-storm/internal/validators"
)

type Services struct {
	ContactService   ContactService
	ReviewService    ReviewService
	CalendarService  CalendarService
	PortfolioService PortfolioService
	QuoteService     QuoteService
	TemplateService  TemplateService
	StatsService     StatsService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, mailer adapter.MailSender, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewFormValidator()
	photographer := cfg.App.PhotographerEmail

	return &Services{
		ContactService:   NewContactService(storages.Messages, storages.Templates, mailer, validator, photographer, logger),
		ReviewService:    NewReviewService(storages.Reviews, validator, logger),
		CalendarService:  NewCalendarService(storages.Calendar, validator, logger),
		PortfolioService: NewPortfolioService(storages.Portfolio, storages.Images, validator, logger),
		QuoteService:     NewQuoteService(storages.Quotes, validator, photographer, logger),
		TemplateService:  NewTemplateService(storages.Templates, mailer, validator, logger),
		StatsService:     NewStatsService(storages, logger),
		AppInfoService:   appInfo,
	}, nil
}

// filterBy returns the items matching keep, preserving order.
func filterBy[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// optional returns nil for blank input and a pointer to the trimmed value otherwise.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
