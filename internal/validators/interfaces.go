// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before they reach the repositories.
//
// A Validator dispatches on the dynamic type of the value it gets and can be
// scoped to a subset of rules by passing field names. Rejections are returned
// as *ValidationError, which wraps ErrValidation and carries the French
// message shown to the client.
package validators

import "context"

// Validator validates the provided input and optionally restricts validation
// to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
