// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/MKhiriev/click-storm/internal/validators"
	"github.com/MKhiriev/click-storm/models"
)

type reviewService struct {
	reviews   store.ReviewRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewReviewService(reviews store.ReviewRepository, validator validators.Validator, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviews:   reviews,
		validator: validator,
		logger:    logger,
	}
}

func (s *reviewService) ListApproved(ctx context.Context) ([]models.Review, error) {
	return s.reviews.List(ctx, models.ReviewApproved)
}

// Submit stores a pending review. Reviews only go public once approved.
func (s *reviewService) Submit(ctx context.Context, req models.ReviewRequest) (models.Review, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Review{}, err
	}

	rating, _ := req.Rating.Int64()
	review := models.Review{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Service: models.Service(req.Service),
		Rating:  int(rating),
		Comment: strings.TrimSpace(req.Comment),
	}
	if date := strings.TrimSpace(req.Date); date != "" {
		review.Date = &date
	}

	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return models.Review{}, fmt.Errorf("error saving review: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*reviewService.Submit").Str("review_id", created.ID).Msg("review awaiting moderation")
	return created, nil
}

func (s *reviewService) List(ctx context.Context, status string) ([]models.Review, models.ReviewStats, error) {
	all, err := s.reviews.List(ctx, "")
	if err != nil {
		return nil, models.ReviewStats{}, err
	}
	stats := models.CountReviews(all)

	filter := models.ReviewStatus(status)
	if !filter.Valid() {
		return all, stats, nil
	}
	return filterBy(all, func(r models.Review) bool { return r.Status == filter }), stats, nil
}

func (s *reviewService) Moderate(ctx context.Context, id string, req models.StatusUpdate) (models.Review, error) {
	if err := s.validator.Validate(ctx, req, validators.FieldReviewStatus); err != nil {
		return models.Review{}, err
	}
	return s.reviews.Moderate(ctx, id, models.ReviewStatus(req.Status))
}

func (s *reviewService) Delete(ctx context.Context, id string) error {
	return s.reviews.Delete(ctx, id)
}
