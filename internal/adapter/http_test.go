// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/officetool-client/internal/config"
	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpBackendAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpBackendAdapter {
	t.Helper()
	log := logger.Nop()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL}

	a, err := NewHTTPBackendAdapter(adapterCfg, log)
	require.NoError(t, err)
	return a.(*httpBackendAdapter)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:8000", want: "http://localhost:8000"},
		{raw: "localhost:8000", want: "http://localhost:8000"},
		{raw: "https://backend.local/", want: "https://backend.local"},
		{raw: "   ", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		if tt.wantErr {
			assert.Error(t, err, "raw=%q", tt.raw)
			continue
		}
		require.NoError(t, err, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got)
	}
}

// ── Health ───────────────────────────────────────────────────────────────────

func TestHealth_Success(t *testing.T) {
	want := models.HealthResponse{OK: true, ModelDefault: "gpt-main", DockerAvailable: true}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHealth_BackendUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"detail":"agent backend is down"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Health(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "agent backend is down")
}

// ── Sessions ─────────────────────────────────────────────────────────────────

func TestCreateSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/session/new", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"session_id":"s-new"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "s-new", got.SessionID)
}

func TestDeleteSession_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/session/s-missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"session not found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.DeleteSession(context.Background(), "s-missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestGetSession_MaxTurnsQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/session/s-1", r.URL.Path)
		assert.Equal(t, "40", r.URL.Query().Get("max_turns"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"session_id":"s-1","summary":"","turn_count":3,"turns":[{"role":"user","text":"привет"}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetSession(context.Background(), "s-1", 40)

	require.NoError(t, err)
	assert.Equal(t, 3, got.TurnCount)
	require.Len(t, got.Turns, 1)
	assert.Equal(t, "привет", got.Turns[0].Text)
}

func TestListSessions_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sessions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sessions":[{"session_id":"s-1","title":"Отчёт","turn_count":4}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListSessions(context.Background())

	require.NoError(t, err)
	require.Len(t, got.Sessions, 1)
	assert.Equal(t, "Отчёт", got.Sessions[0].Title)
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestUploadAttachment_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/upload", r.URL.Path)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "report.txt", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"att-1","name":"report.txt","mime":"text/plain","size":11,"kind":"text"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UploadAttachment(context.Background(), "report.txt", strings.NewReader("file content"))

	require.NoError(t, err)
	assert.Equal(t, "att-1", got.ID)
	assert.Equal(t, "text", got.Kind)
}

func TestUploadAttachment_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_, _ = w.Write([]byte(`{"detail":"file exceeds limit"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.UploadAttachment(context.Background(), "huge.bin", strings.NewReader("x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

// ── Stats ────────────────────────────────────────────────────────────────────

func TestStats_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totals":{"requests":7,"total_tokens":1200},"sessions":{"s-1":{"requests":3}}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, got.Totals.Requests)
	assert.Equal(t, 3, got.Sessions["s-1"].Requests)
}

func TestClearStats_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/stats/clear", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ClearStats(context.Background())

	require.NoError(t, err)
	assert.True(t, got.OK)
}

// ── RunChat ──────────────────────────────────────────────────────────────────

func TestRunChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)

		var req models.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "s-1", req.SessionID)
		assert.Equal(t, "сделай отчёт", req.Message)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"session_id":"s-1","text":"готово","turn_count":2}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RunChat(context.Background(), models.ChatRequest{
		SessionID: "s-1",
		Message:   "сделай отчёт",
		Settings:  models.DefaultChatSettings(),
	})

	require.NoError(t, err)
	assert.Equal(t, "готово", got.Text)
	assert.Equal(t, 2, got.TurnCount)
}

func TestRunChat_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"message must not be empty"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RunChat(context.Background(), models.ChatRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── RunChatStream ────────────────────────────────────────────────────────────

func TestRunChatStream_ReturnsRawBody(t *testing.T) {
	payload := "event: stage\ndata: {\"code\":\"backend_start\"}\n\nevent: done\ndata: {}\n\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat/stream", r.URL.Path)
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, payload)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	body, err := a.RunChatStream(context.Background(), models.ChatRequest{Message: "hi"})

	require.NoError(t, err)
	defer func() { _ = body.Close() }()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, payload, string(raw))
}

func TestRunChatStream_ErrorStatusMapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"agent crashed"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RunChatStream(context.Background(), models.ChatRequest{Message: "hi"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "agent crashed")
}
