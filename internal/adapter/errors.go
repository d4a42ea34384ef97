// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("relay rejected the mail")
	ErrUnauthorized        = errors.New("relay unauthorized")
	ErrForbidden           = errors.New("relay forbidden")
	ErrNotFound            = errors.New("relay endpoint not found")
	ErrTooManyRequests     = errors.New("relay rate limited")
	ErrBadGateway          = errors.New("relay bad gateway")
	ErrInternalServerError = errors.New("relay internal error")

	ErrNoRecipient = errors.New("mail has no recipient")
	ErrSMTP        = errors.New("smtp delivery failed")
)
