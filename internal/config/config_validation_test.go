// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults with mailbox", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing mailbox",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PhotographerEmail = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LogLevel = "loud" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero contact window",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.ContactRateWindow = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "unknown backend",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Backend = "mongo" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "postgres without dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Backend = BackendPostgres },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "redis without url",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Backend = BackendRedis },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "sqlite with dsn",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Backend = BackendSQLite
				cfg.Storage.DB.DSN = "click.db"
			},
		},
		{
			name:    "smtp without sender",
			mutate:  func(cfg *StructuredConfig) { cfg.Mailer.SMTPHost = "smtp.example.com" },
			wantErr: ErrInvalidMailerConfigs,
		},
		{
			name:    "relay with bad url",
			mutate:  func(cfg *StructuredConfig) { cfg.Mailer.RelayURL = "not a url" },
			wantErr: ErrInvalidMailerConfigs,
		},
		{
			name:    "negative expiry interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.QuoteExpiryInterval = -time.Minute },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ReportsEverySection(t *testing.T) {
	cfg := &StructuredConfig{}

	err := cfg.validate()

	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}
