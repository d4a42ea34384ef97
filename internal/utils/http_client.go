// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// userAgent identifies the backend to the services it calls.
const userAgent = "click-storm"

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client so
// callers configure timeouts, auth and headers on it directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetBody(payload).Post("https://relay.example.com/send")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends JSON and announces
// itself with the backend's User-Agent.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}
