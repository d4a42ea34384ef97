// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package templates holds the built-in email templates and renders them.
package templates

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/click-storm/models"
)

// Render replaces every {{name}} of subject and body with vars[name].
// Placeholders without a value are left as they are.
func Render(tmpl models.EmailTemplate, vars map[string]any) models.RenderedEmail {
	subject, body := tmpl.Subject, tmpl.Body
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		placeholder := "{{" + name + "}}"
		value := stringify(vars[name])
		subject = strings.ReplaceAll(subject, placeholder, value)
		body = strings.ReplaceAll(body, placeholder, value)
	}
	return models.RenderedEmail{Subject: subject, Body: body}
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
