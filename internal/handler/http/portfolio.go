// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/utils"
	"github.com/MKhiriev/click-storm/models"
	"github.com/go-chi/chi/v5"
)

const (
	// defaultMaxUploadSize applies when the server config leaves the limit unset.
	defaultMaxUploadSize = 10 << 20
	// multipartOverhead leaves room for the text fields and part headers.
	multipartOverhead = 1 << 20
	// multipartMemory is kept in memory before parts spill to temp files.
	multipartMemory = 1 << 20
)

func (h *Handler) listPortfolio(w http.ResponseWriter, r *http.Request) {
	items, err := h.services.PortfolioService.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err, "Erreur lors de la récupération du portfolio")
		return
	}

	utils.WriteJSON(w, portfolioResponse{Success: true, Portfolio: orEmpty(items)}, http.StatusOK)
}

func (h *Handler) portfolioStats(w http.ResponseWriter, r *http.Request) {
	items, stats, err := h.services.PortfolioService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err, "Erreur lors de la récupération des stats")
		return
	}

	utils.WriteJSON(w, portfolioResponse{Success: true, Portfolio: orEmpty(items), Stats: &stats}, http.StatusOK)
}

func (h *Handler) maxUploadSize() int64 {
	if h.server.MaxUploadSize > 0 {
		return h.server.MaxUploadSize
	}
	return defaultMaxUploadSize
}

// uploadPortfolioImage reads a multipart form with an "image" file and the
// title, description and category fields.
func (h *Handler) uploadPortfolioImage(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de l'upload de l'image"
	log := logger.FromRequest(r)
	limit := h.maxUploadSize()

	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, r, fmt.Errorf("%w: %w", ErrImageTooLarge, err), fallback)
			return
		case !errors.Is(err, http.ErrNotMultipart):
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipart, err), fallback)
			return
		}
		// not multipart at all: no image, the service rejects it
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	req := models.PortfolioUpload{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		if header.Size > limit {
			writeError(w, r, fmt.Errorf("%w: %d bytes", ErrImageTooLarge, header.Size), fallback)
			return
		}
		req.Image = file
		req.FileName = header.Filename
		req.ContentType = header.Header.Get("Content-Type")
	case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		log.Warn().Err(err).Str("func", "*Handler.uploadPortfolioImage").Msg("unreadable image part")
	}

	item, err := h.services.PortfolioService.Upload(r.Context(), req)
	if err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, portfolioItemResponse{Success: true, Message: "Image ajoutée avec succès", Item: item}, http.StatusOK)
}

func (h *Handler) updatePortfolioItem(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de la mise à jour"

	var req models.PortfolioUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	if _, err := h.services.PortfolioService.Update(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, ok("Portfolio mis à jour avec succès"), http.StatusOK)
}

func (h *Handler) reorderPortfolio(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de la réorganisation"

	var req models.ReorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	if err := h.services.PortfolioService.Reorder(r.Context(), req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, ok("Ordre mis à jour avec succès"), http.StatusOK)
}

func (h *Handler) deletePortfolioItem(w http.ResponseWriter, r *http.Request) {
	if err := h.services.PortfolioService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "Erreur lors de la suppression")
		return
	}

	utils.WriteJSON(w, ok("Item supprimé avec succès"), http.StatusOK)
}
