// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithTraceID(h *Handler, traceID string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "incoming id is reused", incoming: "client-trace-42", wantSame: true},
		{name: "missing id is generated", incoming: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

			rr, captured := executeWithTraceID(h, tt.incoming)

			require.NotNil(t, captured)
			got := rr.Header().Get(traceIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

func TestWithTraceID_DoesNotTouchParentLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := &logger.Logger{Logger: zerolog.New(&buf)}
	h := &Handler{logger: parent}

	executeWithTraceID(h, "abc")
	buf.Reset()
	parent.Info().Msg("outside")

	assert.NotContains(t, buf.String(), "trace_id")
}
