// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"maps"
	"time"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/templates"
	"github.com/MKhiriev/click-storm/models"
)

// templateRepository layers the stored email-templates document over the
// built-in templates. The document holds the full merged map once any
// template was edited.
type templateRepository struct {
	doc    *Document[models.EmailTemplates]
	now    func() time.Time
	logger *logger.Logger
}

// NewTemplateRepository constructs a [TemplateRepository] over backend.
func NewTemplateRepository(backend Backend, locks *Locker, logger *logger.Logger) TemplateRepository {
	logger.Debug().Msg("creating template repository")
	return &templateRepository{
		doc:    NewDocument(TemplatesDocument, backend, locks, templates.Defaults),
		now:    utcNow,
		logger: logger,
	}
}

// merged returns the built-ins overridden by stored entries.
func merged(stored models.EmailTemplates) models.EmailTemplates {
	all := templates.Defaults()
	maps.Copy(all, stored)
	return all
}

func (r *templateRepository) List(ctx context.Context) (models.EmailTemplates, error) {
	stored, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}
	return merged(stored), nil
}

func (r *templateRepository) Get(ctx context.Context, id string) (models.EmailTemplate, error) {
	all, err := r.List(ctx)
	if err != nil {
		return models.EmailTemplate{}, err
	}

	tmpl, ok := all[id]
	if !ok {
		return models.EmailTemplate{}, ErrTemplateNotFound
	}
	return tmpl, nil
}

// Update replaces subject and body when they are non-empty.
func (r *templateRepository) Update(ctx context.Context, id string, update models.TemplateUpdate) (models.EmailTemplate, error) {
	var updated models.EmailTemplate
	err := r.doc.Update(ctx, func(stored *models.EmailTemplates) error {
		all := merged(*stored)

		tmpl, ok := all[id]
		if !ok {
			return ErrTemplateNotFound
		}
		if update.Subject != "" {
			tmpl.Subject = update.Subject
		}
		if update.Body != "" {
			tmpl.Body = update.Body
		}
		now := r.now()
		tmpl.UpdatedAt = &now

		all[id] = tmpl
		*stored = all
		updated = tmpl
		return nil
	})
	if err != nil {
		return models.EmailTemplate{}, err
	}

	return updated, nil
}

// Reset restores the built-in version of id. Only built-in templates can be reset.
func (r *templateRepository) Reset(ctx context.Context, id string) (models.EmailTemplate, error) {
	builtin, ok := templates.Defaults()[id]
	if !ok {
		return models.EmailTemplate{}, ErrTemplateNotFound
	}

	err := r.doc.Update(ctx, func(stored *models.EmailTemplates) error {
		all := merged(*stored)
		all[id] = builtin
		*stored = all
		return nil
	})
	if err != nil {
		return models.EmailTemplate{}, err
	}

	return builtin, nil
}
