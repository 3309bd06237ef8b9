// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_BASE_URL":            "http://localhost:8000",
		"ADAPTER_REQUEST_TIMEOUT":     "30s",
		"ADAPTER_STREAM_IDLE_TIMEOUT": "2m",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/lib/officetool/state.db",

		"WORKERS_REFRESH_INTERVAL": "45s",

		"CHAT_MODEL":             "gpt-4.1-mini",
		"CHAT_MAX_OUTPUT_TOKENS": "64000",
		"CHAT_MAX_CONTEXT_TURNS": "500",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "http://localhost:8000", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.StreamIdleTimeout)

	assert.Equal(t, "/var/lib/officetool/state.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 45*time.Second, cfg.Workers.RefreshInterval)

	assert.Equal(t, "gpt-4.1-mini", cfg.Chat.Model)
	assert.Equal(t, 64000, cfg.Chat.MaxOutputTokens)
	assert.Equal(t, 500, cfg.Chat.MaxContextTurns)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_BASE_URL": "http://10.0.0.5:8000",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:8000", cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
