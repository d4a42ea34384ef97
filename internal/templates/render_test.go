// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package templates

import (
	"testing"

	"github.com/MKhiriev/click-storm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	tmpl := models.EmailTemplate{
		Subject: "Votre devis {{quoteNumber}}",
		Body:    "Bonjour {{clientName}}, total {{totalAmount}} €. {{clientName}} / {{missing}}",
	}

	tests := []struct {
		name        string
		vars        map[string]any
		wantSubject string
		wantBody    string
	}{
		{
			name:        "every occurrence replaced",
			vars:        map[string]any{"quoteNumber": "DEVIS-202506-042", "clientName": "Marie", "totalAmount": 1500.0},
			wantSubject: "Votre devis DEVIS-202506-042",
			wantBody:    "Bonjour Marie, total 1500 €. Marie / {{missing}}",
		},
		{
			name:        "no variables leaves placeholders",
			vars:        nil,
			wantSubject: tmpl.Subject,
			wantBody:    tmpl.Body,
		},
		{
			name:        "nil value renders empty",
			vars:        map[string]any{"clientName": nil},
			wantSubject: "Votre devis {{quoteNumber}}",
			wantBody:    "Bonjour , total {{totalAmount}} €.  / {{missing}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tmpl, tt.vars)
			assert.Equal(t, tt.wantSubject, got.Subject)
			assert.Equal(t, tt.wantBody, got.Body)
		})
	}
}

func TestDefaults_ReturnsIndependentCopies(t *testing.T) {
	first := Defaults()
	require.Len(t, first, 5)

	tmpl := first[ContactConfirmation]
	tmpl.Subject = "changed"
	tmpl.Variables[0] = "changed"
	first[ContactConfirmation] = tmpl
	delete(first, ThankYou)

	second := Defaults()
	assert.Equal(t, "Merci pour votre message - click.storm51", second[ContactConfirmation].Subject)
	assert.Equal(t, "clientName", second[ContactConfirmation].Variables[0])
	assert.Contains(t, second, ThankYou)
}

func TestDefaults_PlaceholdersAreDeclared(t *testing.T) {
	for id, tmpl := range Defaults() {
		vars := make(map[string]any, len(tmpl.Variables))
		for _, v := range tmpl.Variables {
			vars[v] = "x"
		}
		rendered := Render(tmpl, vars)
		assert.NotContains(t, rendered.Subject, "{{", id)
		assert.NotContains(t, rendered.Body, "{{", id)
	}
}
