// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/models"
)

// portfolioRepository stores gallery items as one JSON array.
type portfolioRepository struct {
	stamps
	doc    *Document[[]models.PortfolioItem]
	logger *logger.Logger
}

// NewPortfolioRepository constructs a [PortfolioRepository] over backend.
func NewPortfolioRepository(backend Backend, locks *Locker, logger *logger.Logger) PortfolioRepository {
	logger.Debug().Msg("creating portfolio repository")
	return &portfolioRepository{
		stamps: defaultStamps(),
		doc:    NewDocument(PortfolioDocument, backend, locks, emptySlice[models.PortfolioItem]),
		logger: logger,
	}
}

func (r *portfolioRepository) List(ctx context.Context, category models.Service) ([]models.PortfolioItem, error) {
	items, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}

	if category != "" {
		items = slices.DeleteFunc(items, func(it models.PortfolioItem) bool { return it.Category != category })
	}
	slices.SortStableFunc(items, func(a, b models.PortfolioItem) int {
		return cmp.Compare(a.Order, b.Order)
	})

	return items, nil
}

func (r *portfolioRepository) Get(ctx context.Context, id string) (models.PortfolioItem, error) {
	items, err := r.doc.Load(ctx)
	if err != nil {
		return models.PortfolioItem{}, err
	}

	i := slices.IndexFunc(items, func(it models.PortfolioItem) bool { return it.ID == id })
	if i < 0 {
		return models.PortfolioItem{}, ErrPortfolioItemNotFound
	}
	return items[i], nil
}

// Create appends item at the end of the gallery (order = current length).
func (r *portfolioRepository) Create(ctx context.Context, item models.PortfolioItem) (models.PortfolioItem, error) {
	err := r.doc.Update(ctx, func(items *[]models.PortfolioItem) error {
		item.ID = r.uniqueID(func(id string) bool {
			return slices.ContainsFunc(*items, func(it models.PortfolioItem) bool { return it.ID == id })
		})
		item.Order = len(*items)
		item.CreatedAt = r.now()
		item.UpdatedAt = nil

		*items = append(*items, item)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*portfolioRepository.Create").Msg("error saving portfolio item")
		return models.PortfolioItem{}, err
	}

	return item, nil
}

func (r *portfolioRepository) Update(ctx context.Context, id string, changes models.PortfolioChanges) (models.PortfolioItem, error) {
	var updated models.PortfolioItem
	err := r.doc.Update(ctx, func(items *[]models.PortfolioItem) error {
		i := slices.IndexFunc(*items, func(it models.PortfolioItem) bool { return it.ID == id })
		if i < 0 {
			return ErrPortfolioItemNotFound
		}

		it := &(*items)[i]
		if changes.Title != nil {
			it.Title = *changes.Title
		}
		if changes.Description != nil {
			it.Description = *changes.Description
		}
		if changes.Category != nil {
			it.Category = *changes.Category
		}
		if changes.Order != nil {
			it.Order = *changes.Order
		}

		now := r.now()
		it.UpdatedAt = &now
		updated = *it
		return nil
	})
	if err != nil {
		return models.PortfolioItem{}, err
	}

	return updated, nil
}

// Reorder sets the order of every listed item. Unknown ids are skipped.
func (r *portfolioRepository) Reorder(ctx context.Context, positions []models.ItemPosition) error {
	return r.doc.Update(ctx, func(items *[]models.PortfolioItem) error {
		for _, pos := range positions {
			i := slices.IndexFunc(*items, func(it models.PortfolioItem) bool { return it.ID == pos.ID })
			if i >= 0 {
				(*items)[i].Order = pos.Order
			}
		}
		return nil
	})
}

func (r *portfolioRepository) Delete(ctx context.Context, id string) (models.PortfolioItem, error) {
	var deleted models.PortfolioItem
	err := r.doc.Update(ctx, func(items *[]models.PortfolioItem) error {
		i := slices.IndexFunc(*items, func(it models.PortfolioItem) bool { return it.ID == id })
		if i < 0 {
			return ErrPortfolioItemNotFound
		}

		deleted = (*items)[i]
		*items = slices.Delete(*items, i, i+1)
		return nil
	})
	if err != nil {
		return models.PortfolioItem{}, err
	}

	return deleted, nil
}
