// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/models"
	"github.com/wneessen/go-mail"
)

const (
	// implicitTLSPort is the SMTPS port where TLS starts before the SMTP greeting.
	implicitTLSPort = 465

	senderName  = "click.storm51"
	smtpTimeout = 10 * time.Second
)

type smtpSender struct {
	// mu serializes deliveries, a client holds one connection at a time.
	mu     sync.Mutex
	client *mail.Client

	host string
	from string
	now  func() time.Time

	logger *logger.Logger
}

// NewSMTPSender delivers mails through cfg.SMTPHost. Port 465 uses implicit
// TLS; other ports upgrade with STARTTLS when the server offers it.
func NewSMTPSender(cfg config.Mailer, logger *logger.Logger) (MailSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTimeout(smtpTimeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPPort == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPass),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSMTP, err)
	}

	return &smtpSender{
		client: client,
		host:   cfg.SMTPHost,
		from:   senderAddress(cfg),
		now:    time.Now,
		logger: logger,
	}, nil
}

func (s *smtpSender) Send(ctx context.Context, m models.Mail) error {
	if m.To == "" {
		return ErrNoRecipient
	}

	msg, err := newMessage(s.from, m, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSMTP, err)
	}

	s.mu.Lock()
	err = s.client.DialAndSendWithContext(ctx, msg)
	s.mu.Unlock()
	if err != nil {
		s.logger.Err(err).Str("func", "*smtpSender.Send").Str("host", s.host).Msg("error delivering mail")
		return fmt.Errorf("%w: %w", ErrSMTP, err)
	}

	s.logger.Debug().Str("func", "*smtpSender.Send").Str("to", m.To).Msg("mail delivered")
	return nil
}

// newMessage renders m as a UTF-8 message with a quoted-printable body.
func newMessage(from string, m models.Mail, now time.Time) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithEncoding(mail.EncodingQP))

	if err := msg.FromFormat(senderName, from); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to: %w", err)
		}
	}
	msg.Subject(m.Subject)
	msg.SetDateWithValue(now)

	contentType := mail.TypeTextPlain
	if m.HTML {
		contentType = mail.TypeTextHTML
	}
	msg.SetBodyString(contentType, m.Body)

	return msg, nil
}
