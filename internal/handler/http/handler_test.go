// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/mock"
	"github.com/MKhiriev/click-storm/internal/service"
	"github.com/MKhiriev/click-storm/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testPhotographer = "studio@example.com"

// testAPI is the full router over in-memory storages and a mocked mailer.
type testAPI struct {
	t        *testing.T
	router   http.Handler
	storages *store.Storages
	backend  store.Backend
	mailer   *mock.MockMailSender
	cfg      config.StructuredConfig
}

func newTestAPI(t *testing.T, opts ...func(*config.StructuredConfig)) *testAPI {
	t.Helper()

	cfg := config.Defaults()
	cfg.App.Version = "1.2.3"
	cfg.App.PhotographerEmail = testPhotographer
	cfg.Storage.Files.UploadDir = t.TempDir()
	for _, opt := range opts {
		opt(cfg)
	}

	images := store.NewFileImageStorage(cfg.Storage.Files.UploadDir, cfg.Storage.Files.PublicImagePrefix)
	backend := store.NewMemoryBackend()
	storages := store.NewStoragesWithBackend(backend, images, logger.Nop())
	mailer := mock.NewMockMailSender(gomock.NewController(t))

	services, err := service.NewServices(storages, mailer, *cfg, logger.Nop())
	require.NoError(t, err)

	return &testAPI{
		t:        t,
		router:   NewHandler(services, *cfg, logger.Nop()).Init(),
		storages: storages,
		backend:  backend,
		mailer:   mailer,
		cfg:      *cfg,
	}
}

// do sends body as JSON, or verbatim when it is a string.
func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(a.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.10:4321"
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return a.serve(req)
}

// seed writes a document straight to the backend, bypassing the repositories.
func (a *testAPI) seed(name string, v any) {
	a.t.Helper()
	data, err := json.Marshal(v)
	require.NoError(a.t, err)
	require.NoError(a.t, a.backend.Write(context.Background(), name, data))
}

func (a *testAPI) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

// envelope covers the fields shared by every JSON answer.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func requireStatus(t *testing.T, rr *httptest.ResponseRecorder, status int) envelope {
	t.Helper()
	require.Equal(t, status, rr.Code, "body: %s", rr.Body.String())
	return decodeBody[envelope](t, rr)
}
