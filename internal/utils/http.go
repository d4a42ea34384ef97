// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// The Content-Type is "application/json; charset=utf-8". If marshaling
// fails the client gets a 500 and the wrapped error is returned.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "OK"}, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "Message non trouvé"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteAttachment sends content as a download named fileName.
func WriteAttachment(w http.ResponseWriter, fileName, contentType string, content []byte) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)

	return w.Write(content)
}

// WriteHTML writes page as a 200 text/html response.
func WriteHTML(w http.ResponseWriter, page []byte) (int, error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	return w.Write(page)
}
