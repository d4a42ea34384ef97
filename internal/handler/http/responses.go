// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/click-storm/models"

// Response bodies of the read endpoints. Mutations answer with
// models.Response plus the created or updated entity where the client needs it.

type messagesResponse struct {
	Success  bool                `json:"success"`
	Messages []models.Message    `json:"messages"`
	Stats    models.MessageStats `json:"stats"`
}

type reviewsResponse struct {
	Success bool                `json:"success"`
	Reviews []models.Review     `json:"reviews"`
	Stats   *models.ReviewStats `json:"stats,omitempty"`
}

type calendarResponse struct {
	Success  bool            `json:"success"`
	Calendar models.Calendar `json:"calendar"`
}

type portfolioResponse struct {
	Success   bool                   `json:"success"`
	Portfolio []models.PortfolioItem `json:"portfolio"`
	Stats     *models.PortfolioStats `json:"stats,omitempty"`
}

type portfolioItemResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Item    models.PortfolioItem `json:"item"`
}

type quotesResponse struct {
	Success bool              `json:"success"`
	Quotes  []models.Quote    `json:"quotes"`
	Stats   models.QuoteStats `json:"stats"`
}

type quoteResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Quote   models.Quote `json:"quote"`
}

type templatesResponse struct {
	Success   bool                  `json:"success"`
	Templates models.EmailTemplates `json:"templates"`
}

type templateResponse struct {
	Success  bool                 `json:"success"`
	Message  string               `json:"message,omitempty"`
	Template models.EmailTemplate `json:"template"`
}

type templateTestResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Preview models.RenderedEmail `json:"preview"`
}

type dashboardResponse struct {
	Success bool             `json:"success"`
	Stats   models.Dashboard `json:"stats"`
}

func ok(message string) models.Response {
	return models.Response{Success: true, Message: message}
}
