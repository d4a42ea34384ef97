// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/internal/logger"
)

// NewMailSender selects the delivery channel: the relay when RelayURL is
// set, SMTP when SMTPHost is set, the log sender otherwise.
func NewMailSender(cfg config.Mailer, log *logger.Logger) (MailSender, error) {
	switch {
	case cfg.RelayURL != "":
		log.Info().Str("func", "NewMailSender").Str("channel", "relay").Msg("mail sender ready")
		return NewRelaySender(cfg, log)
	case cfg.SMTPHost != "":
		log.Info().Str("func", "NewMailSender").Str("channel", "smtp").Str("host", cfg.SMTPHost).Msg("mail sender ready")
		return NewSMTPSender(cfg, log)
	default:
		log.Warn().Str("func", "NewMailSender").Msg("no mail channel configured, mails will only be logged")
		return NewLogSender(log), nil
	}
}

func senderAddress(cfg config.Mailer) string {
	if cfg.SMTPFrom != "" {
		return cfg.SMTPFrom
	}
	return cfg.SMTPUser
}
