// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/click-storm/internal/utils"
	"github.com/MKhiriev/click-storm/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, stats, err := h.services.QuoteService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err, "Erreur lors de la récupération des devis")
		return
	}

	utils.WriteJSON(w, quotesResponse{Success: true, Quotes: orEmpty(quotes), Stats: stats}, http.StatusOK)
}

func (h *Handler) getQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.services.QuoteService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "Erreur lors de la récupération du devis")
		return
	}

	utils.WriteJSON(w, quoteResponse{Success: true, Quote: quote}, http.StatusOK)
}

func (h *Handler) createQuote(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de la création du devis"

	var req models.QuoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	quote, err := h.services.QuoteService.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, quoteResponse{Success: true, Message: "Devis créé avec succès", Quote: quote}, http.StatusOK)
}

func (h *Handler) updateQuote(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de la mise à jour"

	var req models.QuoteUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	if _, err := h.services.QuoteService.Update(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, ok("Devis mis à jour avec succès"), http.StatusOK)
}

func (h *Handler) addQuotePayment(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de l'ajout du paiement"

	var req models.PaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	quote, err := h.services.QuoteService.AddPayment(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, quoteResponse{Success: true, Message: "Paiement enregistré avec succès", Quote: quote}, http.StatusOK)
}

func (h *Handler) deleteQuote(w http.ResponseWriter, r *http.Request) {
	if err := h.services.QuoteService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "Erreur lors de la suppression")
		return
	}

	utils.WriteJSON(w, ok("Devis supprimé avec succès"), http.StatusOK)
}

func (h *Handler) previewQuote(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.QuoteService.Preview(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "Erreur lors de la génération de l'aperçu")
		return
	}

	utils.WriteHTML(w, page)
}
