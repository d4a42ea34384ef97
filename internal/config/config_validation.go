// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] can start the server.
// Every failing section is reported; the returned error matches each
// section sentinel with errors.Is.
func (cfg *StructuredConfig) validate() error {
	return errors.Join(
		cfg.App.validate(),
		cfg.Server.validate(),
		cfg.Storage.validate(),
		cfg.Mailer.validate(),
		cfg.Workers.validate(),
	)
}

func (a App) validate() error {
	if a.PhotographerEmail == "" {
		return fmt.Errorf("%w: photographer email is required", ErrInvalidAppConfigs)
	}
	if a.LogLevel != "" {
		if _, err := zerolog.ParseLevel(a.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}
	return nil
}

func (s Server) validate() error {
	switch {
	case s.HTTPAddress == "":
		return fmt.Errorf("%w: address is required", ErrInvalidServerConfigs)
	case s.RateLimit <= 0 || s.RateWindow <= 0:
		return fmt.Errorf("%w: rate limit and window must be positive", ErrInvalidServerConfigs)
	case s.ContactRateLimit <= 0 || s.ContactRateWindow <= 0:
		return fmt.Errorf("%w: contact rate limit and window must be positive", ErrInvalidServerConfigs)
	case s.MaxUploadSize <= 0:
		return fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs)
	}
	return nil
}

func (s Storage) validate() error {
	switch s.Backend {
	case BackendFile:
		if s.Files.DataDir == "" {
			return fmt.Errorf("%w: data dir is required", ErrInvalidStorageConfigs)
		}
	case BackendMemory:
	case BackendSQLite, BackendPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend needs a DSN", ErrInvalidStorageConfigs, s.Backend)
		}
	case BackendRedis:
		if s.Redis.URL == "" {
			return fmt.Errorf("%w: redis backend needs a URL", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}

	if s.Files.UploadDir == "" || s.Files.PublicImagePrefix == "" {
		return fmt.Errorf("%w: upload dir and public image prefix are required", ErrInvalidStorageConfigs)
	}
	return nil
}

func (m Mailer) validate() error {
	if m.RelayURL != "" {
		if _, err := url.ParseRequestURI(m.RelayURL); err != nil {
			return fmt.Errorf("%w: relay url: %w", ErrInvalidMailerConfigs, err)
		}
		if m.RelayTimeout <= 0 {
			return fmt.Errorf("%w: relay timeout must be positive", ErrInvalidMailerConfigs)
		}
	}

	if m.SMTPHost != "" {
		if m.SMTPPort < 1 || m.SMTPPort > 65535 {
			return fmt.Errorf("%w: smtp port out of range", ErrInvalidMailerConfigs)
		}
		if m.SMTPFrom == "" && m.SMTPUser == "" {
			return fmt.Errorf("%w: smtp sender address is required", ErrInvalidMailerConfigs)
		}
	}
	return nil
}

func (w Workers) validate() error {
	if w.QuoteExpiryInterval < 0 {
		return fmt.Errorf("%w: quote expiry interval is negative", ErrInvalidWorkerConfigs)
	}
	return nil
}
