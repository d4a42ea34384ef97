// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
//
// Chi answers 405 when a path matches a route but the method does not. The
// site's contract is a JSON 404 for every request that has no handler, so
// the method is looked up again through [chi.Mux.Match] (which expands URL
// parameters) and anything without a handler gets the "Endpoint non trouvé"
// body instead.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			writeRouteError(w, msgEndpointNotFound, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
