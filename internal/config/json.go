// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	App struct {
		PhotographerEmail string `json:"photographer_email"`
		SiteURL           string `json:"site_url"`
		Version           string `json:"version"`
		LogLevel          string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		StaticDir         string   `json:"static_dir"`
		FrontendURL       string   `json:"frontend_url"`
		RateLimit         int      `json:"rate_limit"`
		RateWindow        Duration `json:"rate_window"`
		ContactRateLimit  int      `json:"contact_rate_limit"`
		ContactRateWindow Duration `json:"contact_rate_window"`
		MaxUploadSize     int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		Files   struct {
			DataDir           string `json:"data_dir"`
			UploadDir         string `json:"upload_dir"`
			PublicImagePrefix string `json:"public_image_prefix"`
		} `json:"files,omitempty"`
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Redis struct {
			URL       string `json:"url"`
			KeyPrefix string `json:"key_prefix"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Mailer struct {
		SMTPHost     string   `json:"smtp_host"`
		SMTPPort     int      `json:"smtp_port"`
		SMTPUser     string   `json:"smtp_user"`
		SMTPPass     string   `json:"smtp_pass"`
		SMTPFrom     string   `json:"smtp_from"`
		RelayURL     string   `json:"relay_url"`
		RelayToken   string   `json:"relay_token"`
		RelayTimeout Duration `json:"relay_timeout"`
	} `json:"mailer,omitempty"`

	Workers struct {
		QuoteExpiryInterval Duration `json:"quote_expiry_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			PhotographerEmail: jsonCfg.App.PhotographerEmail,
			SiteURL:           jsonCfg.App.SiteURL,
			Version:           jsonCfg.App.Version,
			LogLevel:          jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			StaticDir:         jsonCfg.Server.StaticDir,
			FrontendURL:       jsonCfg.Server.FrontendURL,
			RateLimit:         jsonCfg.Server.RateLimit,
			RateWindow:        time.Duration(jsonCfg.Server.RateWindow),
			ContactRateLimit:  jsonCfg.Server.ContactRateLimit,
			ContactRateWindow: time.Duration(jsonCfg.Server.ContactRateWindow),
			MaxUploadSize:     jsonCfg.Server.MaxUploadSize,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Files: Files{
				DataDir:           jsonCfg.Storage.Files.DataDir,
				UploadDir:         jsonCfg.Storage.Files.UploadDir,
				PublicImagePrefix: jsonCfg.Storage.Files.PublicImagePrefix,
			},
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				URL:       jsonCfg.Storage.Redis.URL,
				KeyPrefix: jsonCfg.Storage.Redis.KeyPrefix,
			},
		},
		Mailer: Mailer{
			SMTPHost:     jsonCfg.Mailer.SMTPHost,
			SMTPPort:     jsonCfg.Mailer.SMTPPort,
			SMTPUser:     jsonCfg.Mailer.SMTPUser,
			SMTPPass:     jsonCfg.Mailer.SMTPPass,
			SMTPFrom:     jsonCfg.Mailer.SMTPFrom,
			RelayURL:     jsonCfg.Mailer.RelayURL,
			RelayToken:   jsonCfg.Mailer.RelayToken,
			RelayTimeout: time.Duration(jsonCfg.Mailer.RelayTimeout),
		},
		Workers: Workers{
			QuoteExpiryInterval: time.Duration(jsonCfg.Workers.QuoteExpiryInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
