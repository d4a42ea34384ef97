// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/click-storm/internal/utils"
	"github.com/MKhiriev/click-storm/models"
	"github.com/go-chi/chi/v5"
)

const msgReviewsLoadFailed = "Erreur lors de la récupération des avis"

func (h *Handler) listApprovedReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.ReviewService.ListApproved(r.Context())
	if err != nil {
		writeError(w, r, err, msgReviewsLoadFailed)
		return
	}

	utils.WriteJSON(w, reviewsResponse{Success: true, Reviews: orEmpty(reviews)}, http.StatusOK)
}

func (h *Handler) submitReview(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de l'enregistrement de l'avis"

	var req models.ReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	if _, err := h.services.ReviewService.Submit(r.Context(), req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, ok("Merci ! Votre avis a été envoyé et sera publié après validation."), http.StatusOK)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, stats, err := h.services.ReviewService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err, msgReviewsLoadFailed)
		return
	}

	utils.WriteJSON(w, reviewsResponse{Success: true, Reviews: orEmpty(reviews), Stats: &stats}, http.StatusOK)
}

// moderationMessages are the confirmations per target status.
var moderationMessages = map[models.ReviewStatus]string{
	models.ReviewApproved: "Avis approuvé avec succès",
	models.ReviewRejected: "Avis rejeté avec succès",
	models.ReviewPending:  "Avis remis en attente avec succès",
}

func (h *Handler) moderateReview(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de la modification de l'avis"

	var req models.StatusUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	review, err := h.services.ReviewService.Moderate(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, ok(moderationMessages[review.Status]), http.StatusOK)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ReviewService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "Erreur lors de la suppression de l'avis")
		return
	}

	utils.WriteJSON(w, ok("Avis supprimé avec succès"), http.StatusOK)
}
