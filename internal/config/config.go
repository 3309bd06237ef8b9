// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// officetool client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend endpoint address and timeouts used by the
	// outbound transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local client state database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background refresh jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Chat holds default per-run chat settings applied when the user has not
	// changed them in the settings form.
	Chat Chat `envPrefix:"CHAT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// BaseURL is the officetool backend base URL
	// (e.g. "http://localhost:8000").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration allowed for a single
	// non-streaming request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StreamIdleTimeout bounds how long a chat stream may stay silent before
	// the transport gives up. Zero disables the bound; progress feedback then
	// relies on backend heartbeats alone.
	// Env: ADAPTER_STREAM_IDLE_TIMEOUT
	StreamIdleTimeout time.Duration `env:"STREAM_IDLE_TIMEOUT"`
}

// Storage groups the configuration for the local state database.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite state database.
type DB struct {
	// DSN is the SQLite file path used for client state
	// (e.g. "officetool.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background refresh jobs.
type Workers struct {
	// RefreshInterval defines how often the session list and usage stats are
	// refreshed from the backend.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Chat holds the default per-run chat settings.
type Chat struct {
	// Model overrides the backend default model when non-empty.
	// Env: CHAT_MODEL
	Model string `env:"MODEL"`

	// MaxOutputTokens caps the reply length (120..128000).
	// Env: CHAT_MAX_OUTPUT_TOKENS
	MaxOutputTokens int `env:"MAX_OUTPUT_TOKENS"`

	// MaxContextTurns caps how many history turns are fed to the model
	// (2..2000).
	// Env: CHAT_MAX_CONTEXT_TURNS
	MaxContextTurns int `env:"MAX_CONTEXT_TURNS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
