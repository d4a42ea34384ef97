// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"time"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/models"
)

// reviewRepository stores client reviews as one JSON array.
type reviewRepository struct {
	stamps
	doc    *Document[[]models.Review]
	logger *logger.Logger
}

// NewReviewRepository constructs a [ReviewRepository] over backend.
func NewReviewRepository(backend Backend, locks *Locker, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		stamps: defaultStamps(),
		doc:    NewDocument(ReviewsDocument, backend, locks, emptySlice[models.Review]),
		logger: logger,
	}
}

func (r *reviewRepository) List(ctx context.Context, status models.ReviewStatus) ([]models.Review, error) {
	reviews, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}

	if status != "" {
		reviews = slices.DeleteFunc(reviews, func(rv models.Review) bool { return rv.Status != status })
	}
	byNewest(reviews, func(rv models.Review) time.Time { return rv.CreatedAt })

	return reviews, nil
}

func (r *reviewRepository) All(ctx context.Context) ([]models.Review, error) {
	return r.doc.Load(ctx)
}

func (r *reviewRepository) Get(ctx context.Context, id string) (models.Review, error) {
	reviews, err := r.doc.Load(ctx)
	if err != nil {
		return models.Review{}, err
	}

	i := slices.IndexFunc(reviews, func(rv models.Review) bool { return rv.ID == id })
	if i < 0 {
		return models.Review{}, ErrReviewNotFound
	}
	return reviews[i], nil
}

// Create stores review as pending.
func (r *reviewRepository) Create(ctx context.Context, review models.Review) (models.Review, error) {
	err := r.doc.Update(ctx, func(reviews *[]models.Review) error {
		review.ID = r.uniqueID(func(id string) bool {
			return slices.ContainsFunc(*reviews, func(rv models.Review) bool { return rv.ID == id })
		})
		review.Status = models.ReviewPending
		review.CreatedAt = r.now()
		review.ModeratedAt = nil

		*reviews = append(*reviews, review)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewRepository.Create").Msg("error saving review")
		return models.Review{}, err
	}

	return review, nil
}

// Moderate sets the review status and stamps moderatedAt.
func (r *reviewRepository) Moderate(ctx context.Context, id string, status models.ReviewStatus) (models.Review, error) {
	var moderated models.Review
	err := r.doc.Update(ctx, func(reviews *[]models.Review) error {
		i := slices.IndexFunc(*reviews, func(rv models.Review) bool { return rv.ID == id })
		if i < 0 {
			return ErrReviewNotFound
		}

		now := r.now()
		(*reviews)[i].Status = status
		(*reviews)[i].ModeratedAt = &now
		moderated = (*reviews)[i]
		return nil
	})
	if err != nil {
		return models.Review{}, err
	}

	return moderated, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	return r.doc.Update(ctx, func(reviews *[]models.Review) error {
		before := len(*reviews)
		*reviews = slices.DeleteFunc(*reviews, func(rv models.Review) bool { return rv.ID == id })
		if len(*reviews) == before {
			return ErrReviewNotFound
		}
		return nil
	})
}
