// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/click-storm/internal/logger"
)

// withRecover turns a handler panic into the generic JSON 500.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Any("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("uri", r.RequestURI).
				Msg("handler panicked")
			writeRouteError(w, msgInternalError, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
