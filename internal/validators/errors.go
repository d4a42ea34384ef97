// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"

	"github.com/MKhiriev/click-storm/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is wrapped by every [ValidationError].
	ErrValidation = errors.New("validation failed")
)

// Top-level messages returned to the client with a 400.
const (
	MsgInvalidData          = "Données invalides"
	MsgMissingData          = "Données manquantes"
	MsgInvalidStatus        = "Statut invalide"
	MsgDateRequired         = "Date requise"
	MsgBookingFieldsMissing = "Date et nom du client requis"
	MsgInvalidAmount        = "Montant invalide"
	MsgNoImage              = "Aucune image fournie"
	MsgImageType            = "Seules les images (JPEG, PNG, WebP) sont autorisées"
	MsgTitleCategoryMissing = "Titre et catégorie requis"
	MsgInvalidFormat        = "Format de données invalide"
	MsgTestEmailRequired    = "Email de test requis"
)

// ValidationError reports a rejected input. Fields lists the failed fields
// when the failure is field-level.
type ValidationError struct {
	Message string
	Fields  []models.FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// invalid returns a ValidationError without field details.
func invalid(message string) error {
	return &ValidationError{Message: message}
}

// fieldErrors accumulates per-field failures.
type fieldErrors []models.FieldError

func (f *fieldErrors) add(field, message string) {
	*f = append(*f, models.FieldError{Field: field, Message: message})
}

// err returns nil when nothing failed.
func (f fieldErrors) err(message string) error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Message: message, Fields: f}
}
