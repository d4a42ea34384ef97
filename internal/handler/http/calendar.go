// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/click-storm/internal/utils"
	"github.com/MKhiriev/click-storm/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getCalendar(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.services.CalendarService.Get(r.Context())
	if err != nil {
		writeError(w, r, err, "Erreur lors de la récupération du calendrier")
		return
	}

	calendar.BlockedDates = orEmpty(calendar.BlockedDates)
	calendar.Bookings = orEmpty(calendar.Bookings)
	utils.WriteJSON(w, calendarResponse{Success: true, Calendar: calendar}, http.StatusOK)
}

func (h *Handler) blockDate(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors du blocage de la date"

	var req models.BlockDateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	if _, err := h.services.CalendarService.BlockDate(r.Context(), req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, ok("Date bloquée avec succès"), http.StatusOK)
}

func (h *Handler) unblockDate(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CalendarService.UnblockDate(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "Erreur lors du déblocage de la date")
		return
	}

	utils.WriteJSON(w, ok("Date débloquée avec succès"), http.StatusOK)
}

func (h *Handler) addBooking(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de l'ajout de la réservation"

	var req models.BookingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	if _, err := h.services.CalendarService.AddBooking(r.Context(), req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, ok("Réservation ajoutée avec succès"), http.StatusOK)
}

func (h *Handler) updateBookingStatus(w http.ResponseWriter, r *http.Request) {
	const fallback = "Erreur lors de la modification de la réservation"

	var req models.StatusUpdate
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	if _, err := h.services.CalendarService.UpdateBookingStatus(r.Context(), chi.URLParam(r, "id"), req); err != nil {
		writeError(w, r, err, fallback)
		return
	}

	utils.WriteJSON(w, ok("Réservation mise à jour avec succès"), http.StatusOK)
}

func (h *Handler) deleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CalendarService.DeleteBooking(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "Erreur lors de la suppression de la réservation")
		return
	}

	utils.WriteJSON(w, ok("Réservation supprimée avec succès"), http.StatusOK)
}
