// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/mock"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/MKhiriev/click-storm/internal/validators"
	"github.com/MKhiriev/click-storm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestContactService(t *testing.T) (ContactService, *store.Storages, *mock.MockMailSender) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mailer := mock.NewMockMailSender(ctrl)
	storages := newTestStorages(t)
	svc := NewContactService(storages.Messages, storages.Templates, mailer, validators.NewFormValidator(), testPhotographer, logger.Nop())
	return svc, storages, mailer
}

var validContact = models.ContactRequest{
	Name:    "  Marie Dupont ",
	Email:   " Marie@Example.COM ",
	Phone:   "0612345678",
	Service: "wedding",
	Budget:  "1000-2000",
	Message: "Bonjour, je souhaite un reportage pour mon mariage.",
}

// ─────────────────────────────────────────────
// Submit
// ─────────────────────────────────────────────

func TestContactSubmit_StoresAndSendsBothMails(t *testing.T) {
	svc, storages, mailer := newTestContactService(t)
	box := &mailbox{}
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(box.send).Times(2)

	msg, err := svc.Submit(context.Background(), validContact)

	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "Marie Dupont", msg.Name)
	assert.Equal(t, "marie@example.com", msg.Email)
	assert.Equal(t, models.MessageUnread, msg.Status)
	require.NotNil(t, msg.Budget)
	assert.Equal(t, models.Budget1000To2000, *msg.Budget)

	stored, err := storages.Messages.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, msg.ID, stored[0].ID)

	notification, ok := box.to(testPhotographer)
	require.True(t, ok, "photographer must be notified")
	assert.Equal(t, "Nouveau message de Marie Dupont - click.storm51", notification.Subject)
	assert.Equal(t, "marie@example.com", notification.ReplyTo)
	assert.True(t, notification.HTML)

	ack, ok := box.to("marie@example.com")
	require.True(t, ok, "sender must get an acknowledgment")
	assert.Equal(t, "Merci pour votre message - click.storm51", ack.Subject)
	assert.Contains(t, ack.Body, "Marie Dupont")
	assert.NotContains(t, ack.Body, "{{clientName}}")
}

func TestContactSubmit_OptionalFieldsBecomeNull(t *testing.T) {
	svc, _, mailer := newTestContactService(t)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	msg, err := svc.Submit(context.Background(), models.ContactRequest{
		Name:    "Luc",
		Email:   "luc@example.com",
		Message: "Une question sur vos tarifs.",
	})

	require.NoError(t, err)
	assert.Nil(t, msg.Phone)
	assert.Nil(t, msg.Service)
	assert.Nil(t, msg.Budget)
}

func TestContactSubmit_InvalidRequest_NothingStoredNothingSent(t *testing.T) {
	svc, storages, _ := newTestContactService(t)

	_, err := svc.Submit(context.Background(), models.ContactRequest{Name: "M", Email: "nope", Message: "court"})

	verr := requireValidationError(t, err, validators.MsgInvalidData)
	assert.NotEmpty(t, verr.Fields)

	stored, err := storages.Messages.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestContactSubmit_MailFailure_KeepsMessage(t *testing.T) {
	svc, storages, mailer := newTestContactService(t)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m models.Mail) error {
		if m.To == testPhotographer {
			return errors.New("smtp down")
		}
		return nil
	}).Times(2)

	msg, err := svc.Submit(context.Background(), validContact)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMailDelivery)
	assert.NotEmpty(t, msg.ID)

	stored, err := storages.Messages.Get(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageUnread, stored.Status)
}

// ─────────────────────────────────────────────
// Admin
// ─────────────────────────────────────────────

func seedMessages(t *testing.T, storages *store.Storages, statuses ...models.MessageStatus) {
	t.Helper()
	ctx := context.Background()
	for _, status := range statuses {
		m, err := storages.Messages.Create(ctx, models.Message{Name: "Client", Email: "c@example.com", Message: "Bonjour à vous"})
		require.NoError(t, err)
		if status != models.MessageUnread {
			_, err = storages.Messages.UpdateStatus(ctx, m.ID, status)
			require.NoError(t, err)
		}
	}
}

func TestContactList_FilterAndStats(t *testing.T) {
	svc, storages, _ := newTestContactService(t)
	seedMessages(t, storages, models.MessageUnread, models.MessageRead, models.MessageRead, models.MessageDone)

	tests := []struct {
		name   string
		status string
		want   int
	}{
		{name: "no filter", status: "", want: 4},
		{name: "read only", status: "read", want: 2},
		{name: "unknown status is ignored", status: "spam", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages, stats, err := svc.List(context.Background(), tt.status)

			require.NoError(t, err)
			assert.Len(t, messages, tt.want)
			assert.Equal(t, models.MessageStats{Total: 4, Unread: 1, Read: 2, Done: 1}, stats)
		})
	}
}

func TestContactUpdateStatus(t *testing.T) {
	svc, storages, _ := newTestContactService(t)
	seedMessages(t, storages, models.MessageUnread)
	all, _, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	id := all[0].ID

	updated, err := svc.UpdateStatus(context.Background(), id, models.StatusUpdate{Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, models.MessageInProgress, updated.Status)
	assert.NotNil(t, updated.UpdatedAt)

	_, err = svc.UpdateStatus(context.Background(), id, models.StatusUpdate{Status: "approved"})
	requireValidationError(t, err, validators.MsgInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), "missing", models.StatusUpdate{Status: "read"})
	assert.ErrorIs(t, err, store.ErrMessageNotFound)
}

func TestContactDelete(t *testing.T) {
	svc, storages, _ := newTestContactService(t)
	seedMessages(t, storages, models.MessageUnread)
	all, _, err := svc.List(context.Background(), "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), all[0].ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), all[0].ID), store.ErrMessageNotFound)
}
