// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RealIP)
	router.Use(middleware.RequestID)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withRecover)
	router.Use(withSecureHeaders(h.server.ContentSecurityPolicy))
	router.Use(withGZip)
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(middleware.GetHead)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	contactLimit := withRateLimit(h.server.ContactRateLimit, h.server.ContactRateWindow, msgTooManyMessages)

	router.Route("/api", func(r chi.Router) {
		r.Use(withRateLimit(h.server.RateLimit, h.server.RateWindow, msgTooManyRequests))

		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Route("/contact", func(r chi.Router) {
			r.With(contactLimit).Post("/", h.submitContact)
			r.Get("/admin", h.listMessages)
			r.Patch("/admin/{id}", h.updateMessageStatus)
			r.Delete("/admin/{id}", h.deleteMessage)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", h.listApprovedReviews)
			r.Post("/", h.submitReview)
			r.Get("/admin", h.listReviews)
			r.Patch("/admin/{id}", h.moderateReview)
			r.Delete("/admin/{id}", h.deleteReview)
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", h.getCalendar)
			r.Post("/block", h.blockDate)
			r.Delete("/block/{id}", h.unblockDate)
			r.Post("/booking", h.addBooking)
			r.Patch("/booking/{id}", h.updateBookingStatus)
			r.Delete("/booking/{id}", h.deleteBooking)
		})

		r.Route("/portfolio", func(r chi.Router) {
			r.Get("/", h.listPortfolio)
			r.Get("/admin/stats", h.portfolioStats)
			r.Post("/upload", h.uploadPortfolioImage)
			r.Post("/reorder", h.reorderPortfolio)
			r.Patch("/{id}", h.updatePortfolioItem)
			r.Delete("/{id}", h.deletePortfolioItem)
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/admin", h.listQuotes)
			r.Post("/", h.createQuote)
			r.Get("/{id}", h.getQuote)
			r.Patch("/{id}", h.updateQuote)
			r.Delete("/{id}", h.deleteQuote)
			r.Post("/{id}/payment", h.addQuotePayment)
			r.Get("/{id}/preview", h.previewQuote)
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", h.listTemplates)
			r.Get("/{id}", h.getTemplate)
			r.Patch("/{id}", h.updateTemplate)
			r.Post("/{id}/reset", h.resetTemplate)
			r.Post("/{id}/test", h.testTemplate)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/dashboard", h.dashboard)
			r.Get("/export/{type}", h.exportCSV)
		})
	})

	if prefix := publicPrefix(h.files.PublicImagePrefix); prefix != "" && h.files.UploadDir != "" {
		router.Get(prefix+"*", newStaticFiles(h.files.UploadDir, prefix).ServeHTTP)
	}
	if h.server.StaticDir != "" {
		router.Get("/*", newStaticFiles(h.server.StaticDir, "").ServeHTTP)
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeRouteError(w, msgEndpointNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origin := h.server.FrontendURL
	if origin == "" {
		origin = "*"
	}
	return cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
}
