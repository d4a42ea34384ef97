// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const defaultContentSecurityPolicy = "default-src 'self'; " +
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
	"font-src 'self' https://fonts.gstatic.com; " +
	"img-src 'self' https://images.unsplash.com data:; " +
	"script-src 'self' 'unsafe-inline'"

// Defaults returns the configuration used when no other source sets a field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SiteURL:  "http://localhost:3000",
			Version:  "dev",
			LogLevel: "info",
		},
		Server: Server{
			HTTPAddress:           ":3000",
			RequestTimeout:        30 * time.Second,
			FrontendURL:           "*",
			RateLimit:             100,
			RateWindow:            15 * time.Minute,
			ContactRateLimit:      5,
			ContactRateWindow:     time.Hour,
			MaxUploadSize:         10 << 20,
			ContentSecurityPolicy: defaultContentSecurityPolicy,
		},
		Storage: Storage{
			Backend: BackendFile,
			Files: Files{
				DataDir:           "data",
				UploadDir:         "uploads/portfolio",
				PublicImagePrefix: "/assets/images/portfolio/",
			},
			Redis: Redis{
				KeyPrefix: "clickstorm:",
			},
		},
		Mailer: Mailer{
			SMTPPort:     587,
			RelayTimeout: 10 * time.Second,
		},
	}
}
