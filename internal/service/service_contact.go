// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/click-storm/internal/adapter"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/MKhiriev/click-storm/internal/templates"
	"github.com/MKhiriev/click-storm/internal/validators"
	"github.com/MKhiriev/click-storm/models"
	"golang.org/x/sync/errgroup"
)

type contactService struct {
	messages  store.MessageRepository
	templates store.TemplateRepository
	mailer    adapter.MailSender
	validator validators.Validator

	photographerEmail string

	logger *logger.Logger
}

func NewContactService(
	messages store.MessageRepository,
	templates store.TemplateRepository,
	mailer adapter.MailSender,
	validator validators.Validator,
	photographerEmail string,
	logger *logger.Logger,
) ContactService {
	return &contactService{
		messages:          messages,
		templates:         templates,
		mailer:            mailer,
		validator:         validator,
		photographerEmail: photographerEmail,
		logger:            logger,
	}
}

func (s *contactService) Submit(ctx context.Context, req models.ContactRequest) (models.Message, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Message{}, err
	}

	message, err := s.messages.Create(ctx, newMessage(req))
	if err != nil {
		return models.Message{}, fmt.Errorf("error saving contact message: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Info().Str("func", "*contactService.Submit").Str("message_id", message.ID).Msg("contact message stored")

	if err = s.notify(ctx, message); err != nil {
		log.Err(err).Str("func", "*contactService.Submit").Str("message_id", message.ID).Msg("contact message kept, mail failed")
		return message, fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return message, nil
}

// notify sends the operator notification and the client acknowledgment in
// parallel and returns the first failure.
func (s *contactService) notify(ctx context.Context, message models.Message) error {
	ack, err := s.templates.Get(ctx, templates.ContactConfirmation)
	if err != nil {
		return fmt.Errorf("error loading acknowledgment template: %w", err)
	}

	notification, err := templates.ContactNotification(message, s.photographerEmail)
	if err != nil {
		return err
	}
	acknowledgment := templates.ContactAcknowledgment(ack, message)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.mailer.Send(gctx, notification)
	})
	g.Go(func() error {
		return s.mailer.Send(gctx, acknowledgment)
	})
	return g.Wait()
}

// newMessage trims the form fields, lowercases the email and turns empty
// optional fields into nulls.
func newMessage(req models.ContactRequest) models.Message {
	message := models.Message{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Message: strings.TrimSpace(req.Message),
	}
	if phone := strings.TrimSpace(req.Phone); phone != "" {
		message.Phone = &phone
	}
	if req.Service != "" {
		service := models.Service(req.Service)
		message.Service = &service
	}
	if req.Budget != "" {
		budget := models.Budget(req.Budget)
		message.Budget = &budget
	}
	return message
}

func (s *contactService) List(ctx context.Context, status string) ([]models.Message, models.MessageStats, error) {
	all, err := s.messages.List(ctx, "")
	if err != nil {
		return nil, models.MessageStats{}, err
	}
	stats := models.CountMessages(all)

	filter := models.MessageStatus(status)
	if !filter.Valid() {
		return all, stats, nil
	}
	return filterBy(all, func(m models.Message) bool { return m.Status == filter }), stats, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id string, req models.StatusUpdate) (models.Message, error) {
	if err := s.validator.Validate(ctx, req, validators.FieldMessageStatus); err != nil {
		return models.Message{}, err
	}
	return s.messages.UpdateStatus(ctx, id, models.MessageStatus(req.Status))
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	return s.messages.Delete(ctx, id)
}
