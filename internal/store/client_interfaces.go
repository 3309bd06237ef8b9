// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client's durable local state: a small SQLite
// key-value table holding the last-used session id and the saved chat
// settings. Everything the backend owns (sessions, attachments, usage) is
// deliberately not cached here.
package store

import (
	"context"

	"github.com/MKhiriev/officetool-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// StateRepository is the low-level local client state repository.
type StateRepository interface {
	// SaveLastUsedSession records sessionID as the session to restore on the
	// next start. Called on every foreground session change.
	SaveLastUsedSession(ctx context.Context, sessionID string) error

	// LoadLastUsedSession returns the persisted session id, or an empty
	// string when none was saved.
	LoadLastUsedSession(ctx context.Context) (string, error)

	// ClearLastUsedSession removes the persisted session id. Called when no
	// session is active anymore.
	ClearLastUsedSession(ctx context.Context) error

	// SaveChatSettings persists the user's chat settings between starts.
	SaveChatSettings(ctx context.Context, settings models.ChatSettings) error

	// LoadChatSettings returns the persisted chat settings. Returns
	// [ErrLocalStateNotFound] (wrapped) when none were saved yet.
	LoadChatSettings(ctx context.Context) (models.ChatSettings, error)
}
