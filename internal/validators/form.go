// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/click-storm/models"
)

// Field names that scope a status check on a [models.StatusUpdate].
const (
	FieldMessageStatus = "message_status"
	FieldReviewStatus  = "review_status"
	FieldQuoteStatus   = "quote_status"
	FieldBookingStatus = "booking_status"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+33|0)[1-9](\d{8})$`)
)

var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// FormValidator validates every request body of the public site and the admin.
type FormValidator struct{}

// NewFormValidator returns a [FormValidator] as a [Validator].
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the type of obj. Value and pointer forms are accepted.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ContactRequest:
		return v.validateContact(value)
	case *models.ContactRequest:
		return v.validateContact(*value)
	case models.ReviewRequest:
		return v.validateReview(value)
	case *models.ReviewRequest:
		return v.validateReview(*value)
	case models.StatusUpdate:
		return v.validateStatus(value, fields...)
	case *models.StatusUpdate:
		return v.validateStatus(*value, fields...)
	case models.BlockDateRequest:
		return v.validateBlockDate(value)
	case *models.BlockDateRequest:
		return v.validateBlockDate(*value)
	case models.BookingRequest:
		return v.validateBooking(value)
	case *models.BookingRequest:
		return v.validateBooking(*value)
	case models.QuoteRequest:
		return v.validateQuote(value)
	case *models.QuoteRequest:
		return v.validateQuote(*value)
	case models.QuoteUpdate:
		return v.validateQuoteUpdate(value)
	case *models.QuoteUpdate:
		return v.validateQuoteUpdate(*value)
	case models.PaymentRequest:
		return v.validatePayment(value)
	case *models.PaymentRequest:
		return v.validatePayment(*value)
	case models.PortfolioUpload:
		return v.validateUpload(value)
	case *models.PortfolioUpload:
		return v.validateUpload(*value)
	case models.PortfolioUpdate:
		return v.validatePortfolioUpdate(value)
	case *models.PortfolioUpdate:
		return v.validatePortfolioUpdate(*value)
	case models.ReorderRequest:
		return v.validateReorder(value)
	case *models.ReorderRequest:
		return v.validateReorder(*value)
	case models.TemplateTestRequest:
		return v.validateTemplateTest(value)
	case *models.TemplateTestRequest:
		return v.validateTemplateTest(*value)
	default:
		return ErrUnsupportedType
	}
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func isEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func isDay(s string) bool {
	_, err := time.Parse(models.DateLayout, s)
	return err == nil
}

func (v *FormValidator) validateContact(req models.ContactRequest) error {
	var errs fieldErrors

	switch name := strings.TrimSpace(req.Name); {
	case name == "":
		errs.add("name", "Le nom est requis")
	case runeLen(name) < 2 || runeLen(name) > 50:
		errs.add("name", "Le nom doit contenir entre 2 et 50 caractères")
	}
	if !isEmail(strings.TrimSpace(req.Email)) {
		errs.add("email", "Email invalide")
	}
	if req.Phone != "" && !phonePattern.MatchString(strings.TrimSpace(req.Phone)) {
		errs.add("phone", "Numéro de téléphone français invalide")
	}
	if req.Service != "" && !models.Service(req.Service).Valid() {
		errs.add("service", "Service invalide")
	}
	if req.Budget != "" && !models.Budget(req.Budget).Valid() {
		errs.add("budget", "Budget invalide")
	}
	switch msg := strings.TrimSpace(req.Message); {
	case msg == "":
		errs.add("message", "Le message est requis")
	case runeLen(msg) < 10 || runeLen(msg) > 1000:
		errs.add("message", "Le message doit contenir entre 10 et 1000 caractères")
	}

	return errs.err(MsgInvalidData)
}

func (v *FormValidator) validateReview(req models.ReviewRequest) error {
	var errs fieldErrors

	switch name := strings.TrimSpace(req.Name); {
	case name == "":
		errs.add("name", "Le nom est requis")
	case runeLen(name) < 2 || runeLen(name) > 100:
		errs.add("name", "Le nom doit contenir entre 2 et 100 caractères")
	}
	if !isEmail(strings.TrimSpace(req.Email)) {
		errs.add("email", "Email invalide")
	}
	if !models.Service(req.Service).Valid() {
		errs.add("service", "Service invalide")
	}
	if rating, err := req.Rating.Int64(); err != nil || rating < 1 || rating > 5 {
		errs.add("rating", "La note doit être entre 1 et 5")
	}
	switch comment := strings.TrimSpace(req.Comment); {
	case comment == "":
		errs.add("comment", "Le commentaire est requis")
	case runeLen(comment) < 20 || runeLen(comment) > 1000:
		errs.add("comment", "Le commentaire doit contenir entre 20 et 1000 caractères")
	}

	return errs.err(MsgInvalidData)
}

// validateStatus checks the status against the entity named by the single field.
func (v *FormValidator) validateStatus(req models.StatusUpdate, fields ...string) error {
	if len(fields) != 1 {
		return ErrUnknownField
	}

	var ok bool
	switch fields[0] {
	case FieldMessageStatus:
		ok = models.MessageStatus(req.Status).Valid()
	case FieldReviewStatus:
		ok = models.ReviewStatus(req.Status).Valid()
	case FieldQuoteStatus:
		ok = models.QuoteStatus(req.Status).Valid()
	case FieldBookingStatus:
		ok = models.BookingStatus(req.Status).Valid()
	default:
		return ErrUnknownField
	}

	if !ok {
		return invalid(MsgInvalidStatus)
	}
	return nil
}

func (v *FormValidator) validateBlockDate(req models.BlockDateRequest) error {
	if req.Date == "" {
		return invalid(MsgDateRequired)
	}

	var errs fieldErrors
	if !isDay(req.Date) {
		errs.add("date", "Date invalide (format AAAA-MM-JJ)")
	}
	return errs.err(MsgInvalidData)
}

func (v *FormValidator) validateBooking(req models.BookingRequest) error {
	if req.Date == "" || strings.TrimSpace(req.ClientName) == "" {
		return invalid(MsgBookingFieldsMissing)
	}

	var errs fieldErrors
	if !isDay(req.Date) {
		errs.add("date", "Date invalide (format AAAA-MM-JJ)")
	}
	if req.Service != "" && !models.Service(req.Service).Valid() {
		errs.add("service", "Service invalide")
	}
	return errs.err(MsgInvalidData)
}

func validateItems(errs *fieldErrors, items []models.QuoteItem) {
	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" || item.Quantity <= 0 || item.Price < 0 {
			errs.add("items", "Chaque ligne doit avoir une description, une quantité positive et un prix")
			return
		}
	}
}

func (v *FormValidator) validateQuote(req models.QuoteRequest) error {
	if strings.TrimSpace(req.ClientName) == "" || strings.TrimSpace(req.ClientEmail) == "" || req.Service == "" || len(req.Items) == 0 {
		return invalid(MsgMissingData)
	}

	var errs fieldErrors
	if !isEmail(strings.TrimSpace(req.ClientEmail)) {
		errs.add("clientEmail", "Email invalide")
	}
	if !models.Service(req.Service).Valid() {
		errs.add("service", "Service invalide")
	}
	validateItems(&errs, req.Items)

	return errs.err(MsgInvalidData)
}

func (v *FormValidator) validateQuoteUpdate(req models.QuoteUpdate) error {
	if req.Status != nil && !req.Status.Valid() {
		return invalid(MsgInvalidStatus)
	}

	var errs fieldErrors
	if req.Items != nil {
		if len(req.Items) == 0 {
			errs.add("items", "Au moins une ligne est requise")
		}
		validateItems(&errs, req.Items)
	}
	return errs.err(MsgInvalidData)
}

func (v *FormValidator) validatePayment(req models.PaymentRequest) error {
	amount, err := req.Amount.Float64()
	if err != nil || amount <= 0 {
		return invalid(MsgInvalidAmount)
	}
	return nil
}

func (v *FormValidator) validateUpload(req models.PortfolioUpload) error {
	if req.Image == nil {
		return invalid(MsgNoImage)
	}

	wantType, ok := imageTypes[strings.ToLower(filepath.Ext(req.FileName))]
	contentType := strings.ToLower(strings.TrimSpace(strings.Split(req.ContentType, ";")[0]))
	if !ok || contentType != wantType {
		return invalid(MsgImageType)
	}

	if strings.TrimSpace(req.Title) == "" || req.Category == "" {
		return invalid(MsgTitleCategoryMissing)
	}

	var errs fieldErrors
	if !models.Service(req.Category).Valid() {
		errs.add("category", "Catégorie invalide")
	}
	return errs.err(MsgInvalidData)
}

func (v *FormValidator) validatePortfolioUpdate(req models.PortfolioUpdate) error {
	var errs fieldErrors

	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		errs.add("title", "Le titre ne peut pas être vide")
	}
	if req.Category != nil && !models.Service(*req.Category).Valid() {
		errs.add("category", "Catégorie invalide")
	}
	if req.Order != nil {
		if order, err := req.Order.Int64(); err != nil || order < 0 {
			errs.add("order", "Ordre invalide")
		}
	}

	return errs.err(MsgInvalidData)
}

func (v *FormValidator) validateReorder(req models.ReorderRequest) error {
	if req.Items == nil {
		return invalid(MsgInvalidFormat)
	}
	for _, item := range req.Items {
		if item.ID == "" {
			return invalid(MsgInvalidFormat)
		}
		if _, err := item.Order.Int64(); err != nil {
			return invalid(MsgInvalidFormat)
		}
	}
	return nil
}

func (v *FormValidator) validateTemplateTest(req models.TemplateTestRequest) error {
	if strings.TrimSpace(req.TestEmail) == "" {
		return invalid(MsgTestEmailRequired)
	}

	var errs fieldErrors
	if !isEmail(strings.TrimSpace(req.TestEmail)) {
		errs.add("testEmail", "Email invalide")
	}
	return errs.err(MsgInvalidData)
}
