// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, db *sql.DB) StateRepository {
	t.Helper()
	storeDB := &DB{DB: db, logger: logger.Nop()}
	return NewLocalStateRepository(storeDB, logger.Nop())
}

// ── Last used session ────────────────────────────────────────────────────────

func TestSaveLastUsedSession(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO client_state")).
		WithArgs(keyLastUsedSession, "s-42").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.SaveLastUsedSession(context.Background(), "s-42")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadLastUsedSession(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM client_state")).
		WithArgs(keyLastUsedSession).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("s-42"))

	got, err := repo.LoadLastUsedSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "s-42", got)
}

func TestLoadLastUsedSession_NothingSaved(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM client_state")).
		WithArgs(keyLastUsedSession).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.LoadLastUsedSession(context.Background())

	require.NoError(t, err, "missing value is not an error")
	assert.Empty(t, got)
}

func TestClearLastUsedSession(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM client_state")).
		WithArgs(keyLastUsedSession).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ClearLastUsedSession(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveLastUsedSession_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO client_state")).
		WithArgs(keyLastUsedSession, "s-1").
		WillReturnError(errors.New("database is locked"))

	err := repo.SaveLastUsedSession(context.Background(), "s-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}

// ── Chat settings ────────────────────────────────────────────────────────────

func TestSaveAndLoadChatSettings(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	settings := models.DefaultChatSettings()
	settings.Model = "gpt-main"
	settings.ResponseStyle = models.ResponseStyleShort

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO client_state")).
		WithArgs(keyChatSettings, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.SaveChatSettings(context.Background(), settings))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM client_state")).
		WithArgs(keyChatSettings).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).
			AddRow(`{"model":"gpt-main","max_output_tokens":128000,"max_context_turns":2000,"enable_tools":true,"debug_raw":false,"response_style":"short"}`))

	got, err := repo.LoadChatSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, settings, got)
}

func TestLoadChatSettings_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM client_state")).
		WithArgs(keyChatSettings).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.LoadChatSettings(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocalStateNotFound)
}

func TestLoadChatSettings_MalformedValue(t *testing.T) {
	db, mock := newTestDB(t)
	repo := newTestRepo(t, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM client_state")).
		WithArgs(keyChatSettings).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("{broken"))

	_, err := repo.LoadChatSettings(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode chat settings")
}
