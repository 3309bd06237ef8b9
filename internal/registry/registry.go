// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry guards chat sessions: at most one run may be in flight per
// session id, and one session at a time is the foreground one whose run output
// is rendered. Switching the foreground session never blocks or cancels runs
// on other sessions.
package registry

import (
	"context"
	"sync"
)

// anonymousSessionKey is the lock key used for a run dispatched before the
// backend has assigned a session id. Only one such run may be in flight.
const anonymousSessionKey = "\x00anonymous"

// LastUsedStore persists the id of the last active session so it can be
// restored on the next start.
type LastUsedStore interface {
	SaveLastUsedSession(ctx context.Context, sessionID string) error
	LoadLastUsedSession(ctx context.Context) (string, error)
	ClearLastUsedSession(ctx context.Context) error
}

// Registry implements the per-session concurrency guard. Session ids are
// independent mutex keys. Safe for concurrent use.
type Registry struct {
	store LastUsedStore

	mu         sync.Mutex
	inFlight   map[string]struct{}
	foreground string
}

// NewRegistry creates a Registry with no runs in flight and no foreground
// session. store may be nil when persistence is not wanted (tests).
func NewRegistry(store LastUsedStore) *Registry {
	return &Registry{
		store:    store,
		inFlight: make(map[string]struct{}),
	}
}

// Begin claims the in-flight slot for sessionID. It returns false, changing
// nothing, when a run on that id is already in flight. An empty id claims the
// shared anonymous slot used before the backend assigns a session id.
func (r *Registry) Begin(sessionID string) bool {
	key := sessionKey(sessionID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.inFlight[key]; busy {
		return false
	}
	r.inFlight[key] = struct{}{}
	return true
}

// End releases the in-flight slot for sessionID. Idempotent: releasing a slot
// that is not held is a no-op.
func (r *Registry) End(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inFlight, sessionKey(sessionID))
}

// InFlight reports whether a run on sessionID is currently in flight.
func (r *Registry) InFlight(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, busy := r.inFlight[sessionKey(sessionID)]
	return busy
}

// IsForeground reports whether sessionID is the currently displayed session.
// The foreground may change while a run is in flight; callers re-check at
// each UI-facing side effect.
func (r *Registry) IsForeground(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.foreground == sessionID
}

// Foreground returns the currently displayed session id, empty when none.
func (r *Registry) Foreground() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.foreground
}

// SetForeground switches the displayed session and persists it as the
// last-used one. An empty id means no session is active and clears the
// persisted value. Persistence failures are returned but the in-memory
// foreground is updated regardless.
func (r *Registry) SetForeground(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	r.foreground = sessionID
	r.mu.Unlock()

	if r.store == nil {
		return nil
	}
	if sessionID == "" {
		return r.store.ClearLastUsedSession(ctx)
	}
	return r.store.SaveLastUsedSession(ctx, sessionID)
}

// LoadLastUsed returns the persisted last-used session id, empty when none
// was saved or no store is configured.
func (r *Registry) LoadLastUsed(ctx context.Context) (string, error) {
	if r.store == nil {
		return "", nil
	}
	return r.store.LoadLastUsedSession(ctx)
}

func sessionKey(sessionID string) string {
	if sessionID == "" {
		return anonymousSessionKey
	}
	return sessionID
}
