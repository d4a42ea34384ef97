// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/utils"
	"github.com/MKhiriev/click-storm/models"
)

type relaySender struct {
	client   *utils.HTTPClient
	endpoint string
	from     string

	logger *logger.Logger
}

// relayMail is the JSON body posted to the relay.
type relayMail struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to"`
	ReplyTo string `json:"replyTo,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html,omitempty"`
	Text    string `json:"text,omitempty"`
}

// NewRelaySender posts every mail as JSON to cfg.RelayURL, authenticated
// with cfg.RelayToken as a bearer token when set.
func NewRelaySender(cfg config.Mailer, logger *logger.Logger) (MailSender, error) {
	endpoint, err := normalizeURL(cfg.RelayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail relay url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetTimeout(cfg.RelayTimeout).
		SetHeader("Accept", "application/json")
	if cfg.RelayToken != "" {
		client.SetAuthToken(cfg.RelayToken)
	}

	return &relaySender{client: client, endpoint: endpoint, from: senderAddress(cfg), logger: logger}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [MailSender].
func (s *relaySender) Send(ctx context.Context, mail models.Mail) error {
	if mail.To == "" {
		return ErrNoRecipient
	}

	body := relayMail{
		From:    s.from,
		To:      mail.To,
		ReplyTo: mail.ReplyTo,
		Subject: mail.Subject,
	}
	if mail.HTML {
		body.HTML = mail.Body
	} else {
		body.Text = mail.Body
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(s.endpoint)
	if err != nil {
		s.logger.Err(err).Str("func", "*relaySender.Send").Msg("error calling mail relay")
		return fmt.Errorf("error calling mail relay: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		s.logger.Err(err).Str("func", "*relaySender.Send").Int("status", resp.StatusCode()).Msg("mail relay refused the mail")
		return err
	}

	s.logger.Debug().Str("func", "*relaySender.Send").Str("to", mail.To).Msg("mail handed to relay")
	return nil
}
