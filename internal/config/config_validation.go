// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Cross-field rules live on [ClientConfig.validate]; the structured config
// only rejects values that no view could repair.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Chat.MaxOutputTokens < 0 || cfg.Chat.MaxContextTurns < 0 {
		return ErrInvalidChatConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Chat.MaxOutputTokens < 120 || cfg.Chat.MaxOutputTokens > 128000 {
		return ErrInvalidChatConfigs
	}
	if cfg.Chat.MaxContextTurns < 2 || cfg.Chat.MaxContextTurns > 2000 {
		return ErrInvalidChatConfigs
	}

	return nil
}
