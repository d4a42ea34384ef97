// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/click-storm/internal/logger"
	"github.com/MKhiriev/click-storm/internal/utils"
	"github.com/MKhiriev/click-storm/models"
	"github.com/go-chi/httprate"
)

const (
	msgTooManyRequests = "Trop de requêtes depuis cette IP, réessayez plus tard."
	msgTooManyMessages = "Trop de messages envoyés, réessayez dans une heure."
)

// withRateLimit allows limit requests per window and client IP, counted over
// a sliding window. RemoteAddr is used as the key, so middleware.RealIP must
// run first when the server sits behind a proxy. A zero limit or window
// disables the limiter.
func withRateLimit(limit int, window time.Duration, message string) func(http.Handler) http.Handler {
	if limit <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	retryAfter := strconv.Itoa(int(window.Seconds()))

	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			key, _ := httprate.KeyByIP(r)
			logger.FromRequest(r).Warn().Str("ip", key).Str("path", r.URL.Path).Msg("rate limit exceeded")

			w.Header().Set("Retry-After", retryAfter)
			utils.WriteJSON(w, models.Response{Message: message}, http.StatusTooManyRequests)
		}),
	)
}
