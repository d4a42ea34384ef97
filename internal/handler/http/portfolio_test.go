// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/click-storm/internal/config"
	"github.com/MKhiriev/click-storm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----------------------------------------------------------------------------
// Helpers
// ----------------------------------------------------------------------------

type imagePart struct {
	fileName    string
	contentType string
	content     []byte
}

var jpegPart = &imagePart{fileName: "mariage.JPG", contentType: "image/jpeg", content: []byte("\xff\xd8\xff\xe0fake-jpeg")}

func uploadRequest(t *testing.T, fields map[string]string, image *imagePart) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if image != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, image.fileName))
		h.Set("Content-Type", image.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(image.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/portfolio/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.RemoteAddr = "192.0.2.10:4321"
	return req
}

func (a *testAPI) upload(title, category string) models.PortfolioItem {
	a.t.Helper()
	rr := a.serve(uploadRequest(a.t, map[string]string{"title": title, "category": category}, jpegPart))
	require.Equal(a.t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())
	return decodeBody[portfolioItemResponse](a.t, rr).Item
}

// ----------------------------------------------------------------------------
// Tests
// ----------------------------------------------------------------------------

func TestPortfolioUpload(t *testing.T) {
	api := newTestAPI(t)

	rr := api.serve(uploadRequest(t, map[string]string{
		"title":       "Mariage au domaine",
		"description": "Cérémonie laïque",
		"category":    "wedding",
	}, jpegPart))

	require.Equal(t, http.StatusOK, rr.Code, "body: %s", rr.Body.String())
	resp := decodeBody[portfolioItemResponse](t, rr)
	assert.Equal(t, "Image ajoutée avec succès", resp.Message)
	assert.Equal(t, "Mariage au domaine", resp.Item.Title)
	assert.Equal(t, models.Service("wedding"), resp.Item.Category)
	assert.Regexp(t, `^/assets/images/portfolio/\d+-\d+\.jpg$`, resp.Item.Image)

	stored := filepath.Join(api.cfg.Storage.Files.UploadDir, path.Base(resp.Item.Image))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, jpegPart.content, data)

	// the stored image is published under its public path
	img := api.do(http.MethodGet, resp.Item.Image, nil)
	require.Equal(t, http.StatusOK, img.Code)
	assert.Equal(t, "image/jpeg", img.Header().Get("Content-Type"))
	body, err := io.ReadAll(img.Body)
	require.NoError(t, err)
	assert.Equal(t, jpegPart.content, body)
}

func TestPortfolioUpload_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		fields      map[string]string
		image       *imagePart
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no image",
			fields:      map[string]string{"title": "Portrait", "category": "portrait"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Aucune image fournie",
		},
		{
			name:        "not an image",
			fields:      map[string]string{"title": "Portrait", "category": "portrait"},
			image:       &imagePart{fileName: "cv.pdf", contentType: "application/pdf", content: []byte("%PDF")},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Seules les images (JPEG, PNG, WebP) sont autorisées",
		},
		{
			name:        "extension and type disagree",
			fields:      map[string]string{"title": "Portrait", "category": "portrait"},
			image:       &imagePart{fileName: "photo.png", contentType: "image/jpeg", content: []byte("x")},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Seules les images (JPEG, PNG, WebP) sont autorisées",
		},
		{
			name:        "missing title",
			fields:      map[string]string{"category": "portrait"},
			image:       jpegPart,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Titre et catégorie requis",
		},
		{
			name:        "unknown category",
			fields:      map[string]string{"title": "Portrait", "category": "landscape"},
			image:       jpegPart,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Données invalides",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)

			body := requireStatus(t, api.serve(uploadRequest(t, tt.fields, tt.image)), tt.wantStatus)
			assert.Equal(t, tt.wantMessage, body.Message)

			entries, err := os.ReadDir(api.cfg.Storage.Files.UploadDir)
			require.NoError(t, err)
			assert.Empty(t, entries, "rejected uploads must not leave files")
		})
	}
}

func TestPortfolioUpload_TooLarge(t *testing.T) {
	api := newTestAPI(t, func(cfg *config.StructuredConfig) {
		cfg.Server.MaxUploadSize = 1024
	})

	big := &imagePart{fileName: "grande.png", contentType: "image/png", content: bytes.Repeat([]byte{0x89}, 4096)}
	body := requireStatus(t, api.serve(uploadRequest(t, map[string]string{"title": "Grande", "category": "artistic"}, big)), http.StatusRequestEntityTooLarge)

	assert.Equal(t, "Image trop volumineuse (10 Mo maximum)", body.Message)
}

func TestPortfolioUpload_JSONBody(t *testing.T) {
	api := newTestAPI(t)

	body := requireStatus(t, api.do(http.MethodPost, "/api/portfolio/upload", map[string]string{"title": "x"}), http.StatusBadRequest)

	assert.Equal(t, "Aucune image fournie", body.Message)
}

func TestPortfolio_ListStatsAndManage(t *testing.T) {
	api := newTestAPI(t)
	first := api.upload("Mariage", "wedding")
	second := api.upload("Portrait studio", "portrait")
	api.upload("Séminaire", "corporate")

	all := decodeBody[portfolioResponse](t, api.do(http.MethodGet, "/api/portfolio", nil))
	assert.Len(t, all.Portfolio, 3)
	assert.Nil(t, all.Stats)

	same := decodeBody[portfolioResponse](t, api.do(http.MethodGet, "/api/portfolio?category=all", nil))
	assert.Len(t, same.Portfolio, 3)

	weddings := decodeBody[portfolioResponse](t, api.do(http.MethodGet, "/api/portfolio?category=wedding", nil))
	require.Len(t, weddings.Portfolio, 1)
	assert.Equal(t, first.ID, weddings.Portfolio[0].ID)

	stats := decodeBody[portfolioResponse](t, api.do(http.MethodGet, "/api/portfolio/admin/stats", nil))
	require.NotNil(t, stats.Stats)
	assert.Equal(t, models.PortfolioStats{Total: 3, Wedding: 1, Portrait: 1, Corporate: 1}, *stats.Stats)
	assert.Len(t, stats.Portfolio, 3)

	body := requireStatus(t, api.do(http.MethodPatch, "/api/portfolio/"+second.ID, map[string]any{"title": "Portrait en lumière naturelle"}), http.StatusOK)
	assert.Equal(t, "Portfolio mis à jour avec succès", body.Message)

	body = requireStatus(t, api.do(http.MethodPatch, "/api/portfolio/"+second.ID, map[string]any{"category": "landscape"}), http.StatusBadRequest)
	assert.Equal(t, "Données invalides", body.Message)

	body = requireStatus(t, api.do(http.MethodPatch, "/api/portfolio/missing", map[string]any{"title": "x"}), http.StatusNotFound)
	assert.Equal(t, "Item non trouvé", body.Message)

	body = requireStatus(t, api.do(http.MethodPost, "/api/portfolio/reorder", map[string]any{
		"items": []map[string]any{{"id": first.ID, "order": 2}, {"id": second.ID, "order": 0}},
	}), http.StatusOK)
	assert.Equal(t, "Ordre mis à jour avec succès", body.Message)

	body = requireStatus(t, api.do(http.MethodPost, "/api/portfolio/reorder", map[string]any{}), http.StatusBadRequest)
	assert.Equal(t, "Format de données invalide", body.Message)

	body = requireStatus(t, api.do(http.MethodDelete, "/api/portfolio/"+first.ID, nil), http.StatusOK)
	assert.Equal(t, "Item supprimé avec succès", body.Message)
	_, err := os.Stat(filepath.Join(api.cfg.Storage.Files.UploadDir, path.Base(first.Image)))
	assert.True(t, os.IsNotExist(err), "image file must be removed")

	body = requireStatus(t, api.do(http.MethodDelete, "/api/portfolio/"+first.ID, nil), http.StatusNotFound)
	assert.Equal(t, "Item non trouvé", body.Message)
}
