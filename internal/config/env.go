// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// deploymentEnv holds the unprefixed variable names of the site's existing
// .env files. They apply only where the prefixed variable is unset.
type deploymentEnv struct {
	Port              int    `env:"PORT"`
	FrontendURL       string `env:"FRONTEND_URL"`
	WebsiteURL        string `env:"WEBSITE_URL"`
	PhotographerEmail string `env:"PHOTOGRAPHER_EMAIL"`
	SMTPHost          string `env:"SMTP_HOST"`
	SMTPPort          int    `env:"SMTP_PORT"`
	SMTPUser          string `env:"SMTP_USER"`
	SMTPPass          string `env:"SMTP_PASS"`
}

// parseEnv fills cfg from APP_, SERVER_, STORAGE_, MAILER_ and WORKERS_
// prefixed variables, then from the unprefixed deployment names.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var dep deploymentEnv
	if err := env.Parse(&dep); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	dep.applyTo(cfg)

	return nil
}

func (d deploymentEnv) applyTo(cfg *StructuredConfig) {
	if cfg.Server.HTTPAddress == "" && d.Port > 0 {
		cfg.Server.HTTPAddress = net.JoinHostPort("", strconv.Itoa(d.Port))
	}
	setIfEmpty(&cfg.Server.FrontendURL, d.FrontendURL)
	setIfEmpty(&cfg.App.SiteURL, d.WebsiteURL)
	setIfEmpty(&cfg.App.PhotographerEmail, d.PhotographerEmail)
	setIfEmpty(&cfg.Mailer.SMTPHost, d.SMTPHost)
	setIfEmpty(&cfg.Mailer.SMTPUser, d.SMTPUser)
	setIfEmpty(&cfg.Mailer.SMTPPass, d.SMTPPass)
	if cfg.Mailer.SMTPPort == 0 {
		cfg.Mailer.SMTPPort = d.SMTPPort
	}
}

func setIfEmpty(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}
