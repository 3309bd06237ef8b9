// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the officetool backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPBackendAdapter]) covering both the synchronous chat
// endpoint and the streaming variant, whose raw body is handed to the caller
// for incremental decoding.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrSessionNotFound] for 404).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/officetool-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the officetool
// backend. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type BackendAdapter interface {
	// Health probes GET /api/health and returns the backend's self-reported
	// capabilities (default model, docker availability).
	Health(ctx context.Context) (models.HealthResponse, error)

	// CreateSession asks the backend for a fresh empty session and returns
	// its id.
	CreateSession(ctx context.Context) (models.NewSessionResponse, error)

	// DeleteSession removes a stored session and its transcript. Returns
	// [ErrSessionNotFound] (wrapped) when the id is unknown.
	DeleteSession(ctx context.Context, sessionID string) (models.DeleteSessionResponse, error)

	// GetSession fetches a session's summary and up to maxTurns transcript
	// entries. maxTurns <= 0 leaves the server default in place.
	GetSession(ctx context.Context, sessionID string, maxTurns int) (models.SessionDetailResponse, error)

	// ListSessions returns metadata for every stored session, most recently
	// updated first.
	ListSessions(ctx context.Context) (models.SessionListResponse, error)

	// UploadAttachment streams one file to the backend and returns the
	// reference the backend assigned to it. The payload itself stays on the
	// backend. Returns [ErrFileTooLarge] (wrapped) on HTTP 413.
	UploadAttachment(ctx context.Context, name string, payload io.Reader) (models.UploadResponse, error)

	// Stats fetches the global usage totals, the per-session totals map and
	// recent usage records.
	Stats(ctx context.Context) (models.TokenStatsResponse, error)

	// ClearStats resets the backend's global usage accumulator. Per-session
	// history is not touched.
	ClearStats(ctx context.Context) (models.ClearStatsResponse, error)

	// RunChat performs one synchronous chat run and returns the complete
	// result.
	RunChat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error)

	// RunChatStream dispatches a streaming chat run and returns the raw
	// response body carrying the event stream. The caller owns the body and
	// must close it; cancelling ctx aborts the stream. No overall timeout is
	// applied: a run may legitimately stay silent for a long time.
	RunChatStream(ctx context.Context, req models.ChatRequest) (io.ReadCloser, error)
}
