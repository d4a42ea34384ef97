// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest puts a buffer-backed logger into the request context the same
// way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/api/reviews",
			status: http.StatusOK,
			body:   `{"success":true}`,
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/api/reviews"`,
				`"status":200`,
				`"size":16`,
				`"duration":`,
			},
		},
		{
			name:   "POST 400",
			method: http.MethodPost,
			path:   "/api/contact",
			status: http.StatusBadRequest,
			body:   "{}",
			wantContains: []string{
				`"method":"POST"`,
				`"status":400`,
				`"size":2`,
			},
		},
		{
			name:         "no explicit status logs 200",
			method:       http.MethodDelete,
			path:         "/api/quotes/q-1",
			wantContains: []string{`"status":200`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
