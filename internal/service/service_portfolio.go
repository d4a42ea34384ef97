// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/MKhiriev/click-storm/internal/validators"
	"github.com/MKhiriev/click-storm/models"
)

// allCategories is the gallery filter value meaning "no filter".
const allCategories = "all"

type portfolioService struct {
	portfolio store.PortfolioRepository
	images    store.ImageStorage
	validator validators.Validator

	logger *logger.Logger
}

func NewPortfolioService(portfolio store.PortfolioRepository, images store.ImageStorage, validator validators.Validator, logger *logger.Logger) PortfolioService {
	return &portfolioService{
		portfolio: portfolio,
		images:    images,
		validator: validator,
		logger:    logger,
	}
}

func (s *portfolioService) List(ctx context.Context, category string) ([]models.PortfolioItem, error) {
	if category == allCategories {
		category = ""
	}
	return s.portfolio.List(ctx, models.Service(category))
}

func (s *portfolioService) Stats(ctx context.Context) ([]models.PortfolioItem, models.PortfolioStats, error) {
	items, err := s.portfolio.List(ctx, "")
	if err != nil {
		return nil, models.PortfolioStats{}, err
	}
	return items, models.CountPortfolio(items), nil
}

// Upload stores the image first and the item second. When the item cannot
// be saved the image is removed again.
func (s *portfolioService) Upload(ctx context.Context, req models.PortfolioUpload) (models.PortfolioItem, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.PortfolioItem{}, err
	}

	log := logger.FromContext(ctx)

	image, err := s.images.Save(ctx, strings.ToLower(filepath.Ext(req.FileName)), req.Image)
	if err != nil {
		return models.PortfolioItem{}, err
	}

	item, err := s.portfolio.Create(ctx, models.PortfolioItem{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    models.Service(req.Category),
		Image:       image,
	})
	if err != nil {
		if delErr := s.images.Delete(ctx, image); delErr != nil {
			log.Warn().Err(delErr).Str("func", "*portfolioService.Upload").Str("image", image).Msg("orphan image left behind")
		}
		return models.PortfolioItem{}, fmt.Errorf("error saving portfolio item: %w", err)
	}

	log.Info().Str("func", "*portfolioService.Upload").Str("item_id", item.ID).Str("image", image).Msg("portfolio image added")
	return item, nil
}

func (s *portfolioService) Update(ctx context.Context, id string, req models.PortfolioUpdate) (models.PortfolioItem, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.PortfolioItem{}, err
	}

	var changes models.PortfolioChanges
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		changes.Title = &title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		changes.Description = &description
	}
	if req.Category != nil {
		category := models.Service(*req.Category)
		changes.Category = &category
	}
	if req.Order != nil {
		order, _ := req.Order.Int64()
		position := int(order)
		changes.Order = &position
	}

	return s.portfolio.Update(ctx, id, changes)
}

func (s *portfolioService) Reorder(ctx context.Context, req models.ReorderRequest) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return err
	}

	positions := make([]models.ItemPosition, 0, len(req.Items))
	for _, item := range req.Items {
		order, _ := item.Order.Int64()
		positions = append(positions, models.ItemPosition{ID: item.ID, Order: int(order)})
	}
	return s.portfolio.Reorder(ctx, positions)
}

func (s *portfolioService) Delete(ctx context.Context, id string) error {
	item, err := s.portfolio.Delete(ctx, id)
	if err != nil {
		return err
	}

	if err = s.images.Delete(ctx, item.Image); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*portfolioService.Delete").Str("image", item.Image).Msg("could not remove image file")
	}
	return nil
}
