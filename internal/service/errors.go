// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrMailDelivery is returned when a message was stored but at least one
	// of its emails could not be sent.
	ErrMailDelivery = errors.New("error sending mail")
)
