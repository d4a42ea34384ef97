// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/click-storm/internal/utils"
	"github.com/MKhiriev/click-storm/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	all, err := h.services.TemplateService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "Erreur lors de la récupération des templates")
		return
	}

	utils.WriteJSON(w, templatesResponse{Success: true, Templates: all}, http.StatusOK)
}

func (h *Handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.services.TemplateService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "Erreur lors de la récupération du template")
		return
	}

	utils.WriteJSON(w, templateResponse{Success: true, Template: tmpl}, http.StatusOK)
}

func (h *Handler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de la mise à jour"

	var req models.TemplateUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	tmpl, err := h.services.TemplateService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, templateResponse{Success: true, Message: "Template mis à jour avec succès", Template: tmpl}, http.StatusOK)
}

func (h *Handler) resetTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.services.TemplateService.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "Erreur lors de la réinitialisation")
		return
	}

	utils.WriteJSON(w, templateResponse{Success: true, Message: "Template réinitialisé aux valeurs par défaut", Template: tmpl}, http.StatusOK)
}

func (h *Handler) testTemplate(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors du test"

	var req models.TemplateTestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	preview, err := h.services.TemplateService.SendTest(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, templateTestResponse{Success: true, Message: "Email de test envoyé", Preview: preview}, http.StatusOK)
}
