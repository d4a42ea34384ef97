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

// messageRepository stores contact messages as one JSON array.
type messageRepository struct {
	stamps
	doc    *Document[[]models.Message]
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] over backend.
func NewMessageRepository(backend Backend, locks *Locker, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		stamps: defaultStamps(),
		doc:    NewDocument(MessagesDocument, backend, locks, emptySlice[models.Message]),
		logger: logger,
	}
}

func (r *messageRepository) List(ctx context.Context, status models.MessageStatus) ([]models.Message, error) {
	messages, err := r.doc.Load(ctx)
	if err != nil {
		return nil, err
	}

	if status != "" {
		messages = slices.DeleteFunc(messages, func(m models.Message) bool { return m.Status != status })
	}
	byNewest(messages, func(m models.Message) time.Time { return m.CreatedAt })

	return messages, nil
}

func (r *messageRepository) All(ctx context.Context) ([]models.Message, error) {
	return r.doc.Load(ctx)
}

func (r *messageRepository) Get(ctx context.Context, id string) (models.Message, error) {
	messages, err := r.doc.Load(ctx)
	if err != nil {
		return models.Message{}, err
	}

	i := slices.IndexFunc(messages, func(m models.Message) bool { return m.ID == id })
	if i < 0 {
		return models.Message{}, ErrMessageNotFound
	}
	return messages[i], nil
}

// Create stamps id, status and creation time and appends the message.
func (r *messageRepository) Create(ctx context.Context, message models.Message) (models.Message, error) {
	err := r.doc.Update(ctx, func(messages *[]models.Message) error {
		message.ID = r.uniqueID(func(id string) bool {
			return slices.ContainsFunc(*messages, func(m models.Message) bool { return m.ID == id })
		})
		message.Status = models.MessageUnread
		message.CreatedAt = r.now()
		message.UpdatedAt = nil

		*messages = append(*messages, message)
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageRepository.Create").Msg("error saving message")
		return models.Message{}, err
	}

	return message, nil
}

func (r *messageRepository) UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (models.Message, error) {
	var updated models.Message
	err := r.doc.Update(ctx, func(messages *[]models.Message) error {
		i := slices.IndexFunc(*messages, func(m models.Message) bool { return m.ID == id })
		if i < 0 {
			return ErrMessageNotFound
		}

		now := r.now()
		(*messages)[i].Status = status
		(*messages)[i].UpdatedAt = &now
		updated = (*messages)[i]
		return nil
	})
	if err != nil {
		return models.Message{}, err
	}

	return updated, nil
}

func (r *messageRepository) Delete(ctx context.Context, id string) error {
	return r.doc.Update(ctx, func(messages *[]models.Message) error {
		before := len(*messages)
		*messages = slices.DeleteFunc(*messages, func(m models.Message) bool { return m.ID == id })
		if len(*messages) == before {
			return ErrMessageNotFound
		}
		return nil
	})
}
