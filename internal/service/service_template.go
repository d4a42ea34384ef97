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
)

type templateService struct {
	templates store.TemplateRepository
	mailer    adapter.MailSender
	validator validators.Validator

	logger *logger.Logger
}

func NewTemplateService(repo store.TemplateRepository, mailer adapter.MailSender, validator validators.Validator, logger *logger.Logger) TemplateService {
	return &templateService{
		templates: repo,
		mailer:    mailer,
		validator: validator,
		logger:    logger,
	}
}

func (s *templateService) List(ctx context.Context) (models.EmailTemplates, error) {
	return s.templates.List(ctx)
}

func (s *templateService) Get(ctx context.Context, id string) (models.EmailTemplate, error) {
	return s.templates.Get(ctx, id)
}

func (s *templateService) Update(ctx context.Context, id string, req models.TemplateUpdate) (models.EmailTemplate, error) {
	return s.templates.Update(ctx, id, req)
}

func (s *templateService) Reset(ctx context.Context, id string) (models.EmailTemplate, error) {
	return s.templates.Reset(ctx, id)
}

func (s *templateService) SendTest(ctx context.Context, id string, req models.TemplateTestRequest) (models.RenderedEmail, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.RenderedEmail{}, err
	}

	tmpl, err := s.templates.Get(ctx, id)
	if err != nil {
		return models.RenderedEmail{}, err
	}

	rendered := templates.Render(tmpl, req.Variables)
	err = s.mailer.Send(ctx, models.Mail{
		To:      strings.ToLower(strings.TrimSpace(req.TestEmail)),
		Subject: rendered.Subject,
		Body:    rendered.Body,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*templateService.SendTest").Str("template", id).Msg("test mail failed")
		return models.RenderedEmail{}, fmt.Errorf("%w: %w", ErrMailDelivery, err)
	}

	return rendered, nil
}
