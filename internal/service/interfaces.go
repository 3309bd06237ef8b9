// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client's business layer on top of the
// backend adapter: the run orchestrator that drives a chat run from dispatch
// to a resolved result, usage accounting, the pending-attachment list and
// session management.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/officetool-client/internal/run"
	"github.com/MKhiriev/officetool-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_service_mock.go -package=mock

// RunSink receives UI-facing progress of an in-flight run. The orchestrator
// calls it only while the run's originating session is the foreground one;
// durable effects (usage accounting, session metadata) bypass the sink and
// are applied unconditionally. Implementations must be safe to call from the
// run's goroutine.
type RunSink interface {
	// OnStateChange reports a stage transition together with the backend's
	// human-readable detail line for it.
	OnStateChange(sessionID string, state run.State, detail string)

	// OnTrace appends one progress line to the transcript. Applied lines are
	// never rolled back, even when the run later fails.
	OnTrace(sessionID string, line string)

	// OnToolEvent reports one tool invocation performed by the agent.
	OnToolEvent(sessionID string, item models.ToolEvent)

	// OnDebug reports one internal flow item (debug_raw runs only).
	OnDebug(sessionID string, item models.DebugFlowItem)

	// OnElapsed refreshes the waiting-time label. Cosmetic only.
	OnElapsed(sessionID string, elapsed time.Duration)
}

// ClientChatService is the run orchestrator contract.
type ClientChatService interface {
	// SetSink installs the UI progress sink. May be called once the UI
	// exists; a nil sink (the initial state) simply drops progress.
	SetSink(sink RunSink)

	// Run performs one streaming chat run: it claims the session's in-flight
	// slot, creates a session when sessionID is empty, dispatches the
	// request, drives the event stream and resolves to the final result.
	// Returns ErrRunInFlight (wrapped) without touching the network when a
	// run on that session is already in flight. Errors are one of
	// [*TransportError], [*ProtocolError] or [*ServerError].
	Run(ctx context.Context, sessionID, message string, attachmentIDs []string, settings models.ChatSettings) (models.ChatResponse, error)

	// RunSync performs one synchronous (non-streaming) run against the plain
	// chat endpoint. The single response is treated like a stream that
	// emitted Final followed by Done. Same locking and error contract as Run.
	RunSync(ctx context.Context, sessionID, message string, attachmentIDs []string, settings models.ChatSettings) (models.ChatResponse, error)
}

// ClientUsageService holds the three usage scopes reported by the backend.
type ClientUsageService interface {
	// MergeLastRun replaces the last-run scope wholesale.
	MergeLastRun(usage models.TokenUsage)

	// MergeCumulative replaces the session and global scopes wholesale with
	// backend-reported totals. The client never sums them locally.
	MergeCumulative(session, global models.TokenTotals)

	// ResetSessionScope zeroes the session scope, e.g. after switching to a
	// session with no runs yet. Last-run and global scopes are untouched.
	ResetSessionScope()

	// Snapshot returns a copy of all three scopes.
	Snapshot() models.UsageSnapshot

	// Stats fetches the backend's full usage report and refreshes the global
	// scope from it.
	Stats(ctx context.Context) (models.TokenStatsResponse, error)

	// ClearGlobal asks the backend to reset its global accumulator, then
	// refreshes the cumulative view. Last-run and session scopes are not
	// touched.
	ClearGlobal(ctx context.Context) error
}

// ClientAttachmentService manages the ordered pending-attachment list of the
// message currently being composed.
type ClientAttachmentService interface {
	// Add uploads the file at path to the backend and appends the returned
	// reference to the pending list.
	Add(ctx context.Context, path string) (models.Attachment, error)

	// Pending returns a copy of the pending list in upload order.
	Pending() []models.Attachment

	// PendingIDs returns the backend ids of the pending list in order.
	PendingIDs() []string

	// Remove drops one pending reference by id. Unknown ids are ignored.
	Remove(id string)

	// Clear empties the pending list. Called after each dispatched run.
	Clear()

	// Reconcile prunes pending references whose ids the backend reported as
	// unresolvable. It returns at most one warning per call and nil when the
	// missing list is empty. Never fatal.
	Reconcile(missingIDs []string) *ReconciliationWarning
}

// ClientSessionService manages backend-stored sessions and caches their
// metadata for display.
type ClientSessionService interface {
	// Create asks the backend for a fresh session and returns its id.
	Create(ctx context.Context) (string, error)

	// Delete removes the session on the backend. When the deleted session is
	// the foreground one, the persisted last-used key is cleared.
	Delete(ctx context.Context, sessionID string) error

	// List fetches session metadata from the backend and refreshes the
	// local cache.
	List(ctx context.Context) ([]models.SessionListItem, error)

	// Cached returns the most recently fetched session list without a
	// network call.
	Cached() []models.SessionListItem

	// Detail fetches a session's summary and transcript. maxTurns is clamped
	// to [1..2000]; values <= 0 request the full default window.
	Detail(ctx context.Context, sessionID string, maxTurns int) (models.SessionDetailResponse, error)
}
