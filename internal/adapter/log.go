// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/models"
)

type logSender struct {
	logger *logger.Logger
}

// NewLogSender returns a [MailSender] that logs every mail instead of
// delivering it. Used when no relay or SMTP host is configured.
func NewLogSender(logger *logger.Logger) MailSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(_ context.Context, mail models.Mail) error {
	if mail.To == "" {
		return ErrNoRecipient
	}

	s.logger.Info().
		Str("func", "*logSender.Send").
		Str("to", mail.To).
		Str("reply_to", mail.ReplyTo).
		Str("subject", mail.Subject).
		Bool("html", mail.HTML).
		Int("body_size", len(mail.Body)).
		Msg("mail delivery disabled, mail logged")
	return nil
}
