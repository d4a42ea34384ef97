// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/click-storm/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.services.StatsService.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err, "Erreur lors de la récupération des statistiques")
		return
	}

	utils.WriteJSON(w, dashboardResponse{Success: true, Stats: dashboard}, http.StatusOK)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	out, err := h.services.StatsService.Export(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, r, err, "Erreur lors de l'export")
		return
	}

	utils.WriteAttachment(w, out.FileName, out.ContentType, out.Content)
}
