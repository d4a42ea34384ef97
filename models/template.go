// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EmailTemplate is an editable email with {{name}} placeholders.
type EmailTemplate struct {
	Name      string     `json:"name"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Variables []string   `json:"variables"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// EmailTemplates is the templates document, keyed by template id.
type EmailTemplates map[string]EmailTemplate

// RenderedEmail is a subject/body pair with placeholders substituted.
type RenderedEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mail is a message handed to a mail sender. Body is HTML when HTML is set,
// plain text otherwise.
type Mail struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
	HTML    bool
}
