// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/utils"
	"github.com/MKhiriev/click-storm/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de l'envoi du message. Veuillez réessayer."

	var req models.ContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	message, err := h.services.ContactService.Submit(r.Context(), req)
	if err != nil {
		writeError(w, r, err, fallback)
		return
	}

	logger.FromRequest(r).Info().Str("func", "*Handler.submitContact").Str("message_id", message.ID).Msg("contact message handled")
	utils.WriteJSON(w, ok("Message envoyé avec succès! Je vous recontacte dans les plus brefs délais."), http.StatusOK)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, stats, err := h.services.ContactService.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err, "Erreur lors de la récupération des messages")
		return
	}

	utils.WriteJSON(w, messagesResponse{Success: true, Messages: orEmpty(messages), Stats: stats}, http.StatusOK)
}

func (h *Handler) updateMessageStatus(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de la modification du message"

	var req models.StatusUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	if _, err := h.services.ContactService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, ok("Message mis à jour avec succès"), http.StatusOK)
}

func (h *Handler) deleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ContactService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "Erreur lors de la suppression du message")
		return
	}

	utils.WriteJSON(w, ok("Message supprimé avec succès"), http.StatusOK)
}
