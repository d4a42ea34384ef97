// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter delivers outbound email.
//
// [MailSender] decouples the services from the delivery channel. Three
// implementations ship with the package: an HTTP relay ([NewRelaySender]),
// an SMTP client on go-mail ([NewSMTPSender]) and a sender that only logs
// ([NewLogSender]). [NewMailSender] picks one from the configuration.
//
// Relay failures are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/click-storm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mail_sender_mock.go -package=mock

// MailSender delivers one email. Implementations must be safe for
// concurrent use since contact submissions send two mails in parallel.
type MailSender interface {
	Send(ctx context.Context, mail models.Mail) error
}
