// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/models"
)

const (
	keyLastUsedSession = "last_used_session"
	keyChatSettings    = "chat_settings"
)

type localStateRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalStateRepository creates the SQLite-backed [StateRepository] on top
// of the client_state key-value table.
func NewLocalStateRepository(db *DB, logger *logger.Logger) StateRepository {
	return &localStateRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveLastUsedSession implements [StateRepository].
func (l *localStateRepository) SaveLastUsedSession(ctx context.Context, sessionID string) error {
	return l.saveValue(ctx, keyLastUsedSession, sessionID)
}

// LoadLastUsedSession implements [StateRepository]. A missing value is not an
// error: there is simply nothing to restore.
func (l *localStateRepository) LoadLastUsedSession(ctx context.Context) (string, error) {
	value, err := l.loadValue(ctx, keyLastUsedSession)
	if errors.Is(err, ErrLocalStateNotFound) {
		return "", nil
	}
	return value, err
}

// ClearLastUsedSession implements [StateRepository].
func (l *localStateRepository) ClearLastUsedSession(ctx context.Context) error {
	return l.clearValue(ctx, keyLastUsedSession)
}

// SaveChatSettings implements [StateRepository]. Settings are stored as one
// JSON value under a fixed key.
func (l *localStateRepository) SaveChatSettings(ctx context.Context, settings models.ChatSettings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode chat settings: %w", err)
	}
	return l.saveValue(ctx, keyChatSettings, string(payload))
}

// LoadChatSettings implements [StateRepository].
func (l *localStateRepository) LoadChatSettings(ctx context.Context) (models.ChatSettings, error) {
	value, err := l.loadValue(ctx, keyChatSettings)
	if err != nil {
		return models.ChatSettings{}, err
	}

	var settings models.ChatSettings
	if err = json.Unmarshal([]byte(value), &settings); err != nil {
		return models.ChatSettings{}, fmt.Errorf("decode chat settings: %w", err)
	}
	return settings, nil
}

func (l *localStateRepository) saveValue(ctx context.Context, key, value string) error {
	if _, err := l.DB.ExecContext(ctx, upsertStateValue, key, value); err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.saveValue").
			Str("key", key).
			Msg("failed to upsert client state value")
		return fmt.Errorf("failed to save client state (key=%s): %w", key, err)
	}
	return nil
}

func (l *localStateRepository) loadValue(ctx context.Context, key string) (string, error) {
	var value string
	err := l.DB.QueryRowContext(ctx, getStateValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: key=%s", ErrLocalStateNotFound, key)
	}
	if err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.loadValue").
			Str("key", key).
			Msg("failed to query client state value")
		return "", fmt.Errorf("failed to load client state (key=%s): %w", key, err)
	}
	return value, nil
}

func (l *localStateRepository) clearValue(ctx context.Context, key string) error {
	if _, err := l.DB.ExecContext(ctx, deleteStateValue, key); err != nil {
		l.logger.Err(err).
			Str("func", "localStateRepository.clearValue").
			Str("key", key).
			Msg("failed to delete client state value")
		return fmt.Errorf("failed to clear client state (key=%s): %w", key, err)
	}
	return nil
}
