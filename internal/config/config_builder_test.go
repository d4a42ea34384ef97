// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.App.PhotographerEmail = "studio@example.com"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{Version: "1.0.0"}, Server: Server{HTTPAddress: ":8080"}},
		&StructuredConfig{Server: Server{HTTPAddress: ":9090"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 100, cfg.Server.RateLimit, "zero values must not override defaults")
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
}

func TestBuild_ValidatesResult(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

func TestWithDotEnv_LoadsVariables(t *testing.T) {
	setEnvVars(t, nil)
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_PHOTOGRAPHER_EMAIL=dotenv@example.com\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("APP_PHOTOGRAPHER_EMAIL") })

	b := newConfigBuilder().withDotEnv(p).withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "dotenv@example.com", b.configs[0].App.PhotographerEmail)
}

func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_VERSION": "from-env"})
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_VERSION=from-file\n"), 0o600))

	b := newConfigBuilder().withDotEnv(p).withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "from-env", b.configs[0].App.Version)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_SetsError_OnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_RATE_LIMIT": "lots"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-backend", "memory"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, BackendMemory, b.configs[0].Storage.Backend)
}

func TestWithFlags_SetsError_OnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "missing.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Priority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"request_timeout": "5s"},
	})
	setEnvVars(t, map[string]string{
		"APP_PHOTOGRAPHER_EMAIL": "studio@example.com",
		"SERVER_ADDRESS":         ":4000",
		"SERVER_REQUEST_TIMEOUT": "1m",
		"STORAGE_BACKEND":        "memory",
	})
	t.Chdir(t.TempDir())

	cfg, err := GetStructuredConfig([]string{"-a", ":5000", "-c", jsonPath})

	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.Server.HTTPAddress, "flags override env")
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout, "json overrides env")
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "data", cfg.Storage.Files.DataDir, "defaults fill the rest")
}
