// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/click-storm/internal/export"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/MKhiriev/click-storm/internal/utils"
	"github.com/MKhiriev/click-storm/internal/validators"
	"github.com/MKhiriev/click-storm/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:      http.StatusBadRequest,
	ErrInvalidMultipart: http.StatusBadRequest,
	ErrImageTooLarge:    http.StatusRequestEntityTooLarge,

	store.ErrMessageNotFound:       http.StatusNotFound,
	store.ErrReviewNotFound:        http.StatusNotFound,
	store.ErrQuoteNotFound:         http.StatusNotFound,
	store.ErrBlockedDateNotFound:   http.StatusNotFound,
	store.ErrBookingNotFound:       http.StatusNotFound,
	store.ErrPortfolioItemNotFound: http.StatusNotFound,
	store.ErrTemplateNotFound:      http.StatusNotFound,
	store.ErrDateAlreadyBlocked:    http.StatusBadRequest,

	export.ErrUnknownKind: http.StatusBadRequest,
}

var errorMessageMap = map[error]string{
	ErrInvalidJSON:      validators.MsgInvalidFormat,
	ErrInvalidMultipart: validators.MsgNoImage,
	ErrImageTooLarge:    "Image trop volumineuse (10 Mo maximum)",

	store.ErrMessageNotFound:       "Message non trouvé",
	store.ErrReviewNotFound:        "Avis non trouvé",
	store.ErrQuoteNotFound:         "Devis non trouvé",
	store.ErrBlockedDateNotFound:   "Date bloquée non trouvée",
	store.ErrBookingNotFound:       "Réservation non trouvée",
	store.ErrPortfolioItemNotFound: "Item non trouvé",
	store.ErrTemplateNotFound:      "Template non trouvé",
	store.ErrDateAlreadyBlocked:    "Cette date est déjà bloquée",

	export.ErrUnknownKind: "Type d'export invalide",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client message of err, or fallback when err
// has none. Unexpected errors always get the route's fallback.
func messageFromError(err error, fallback string) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return fallback
}

// writeError answers a failed request. Validation failures carry their
// field list; everything else gets the mapped status and French message.
// Details of server-side failures only go to the log.
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		log.Debug().Err(err).Any("fields", verr.Fields).Msg("request rejected")
		utils.WriteJSON(w, models.ErrorResponse{Message: verr.Message, Errors: verr.Fields}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(fallback)
		utils.WriteJSON(w, models.ErrorResponse{Message: fallback}, status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg("request failed")
	utils.WriteJSON(w, models.ErrorResponse{Message: messageFromError(err, fallback)}, status)
}

// writeRouteError answers unmatched routes and unexpected failures.
func writeRouteError(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.RouteError{Error: message}, status)
}

const (
	msgEndpointNotFound = "Endpoint non trouvé"
	msgInternalError    = "Erreur serveur interne"
)
