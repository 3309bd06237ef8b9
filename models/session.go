// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NewSessionResponse is the body of POST /api/session/new.
type NewSessionResponse struct {
	SessionID string `json:"session_id"`
}

// DeleteSessionResponse is the body of DELETE /api/session/{id}.
type DeleteSessionResponse struct {
	OK        bool   `json:"ok"`
	SessionID string `json:"session_id"`
}

// SessionTurn is one transcript entry of a stored conversation.
type SessionTurn struct {
	Role      string `json:"role"`
	Text      string `json:"text"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SessionDetailResponse is the body of GET /api/session/{id}. Turns are
// limited server-side by the max_turns query parameter; TurnCount always
// reflects the full stored history.
type SessionDetailResponse struct {
	SessionID string        `json:"session_id"`
	Summary   string        `json:"summary"`
	TurnCount int           `json:"turn_count"`
	Turns     []SessionTurn `json:"turns"`
}

// SessionListItem is one row of GET /api/sessions.
type SessionListItem struct {
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
	Preview   string `json:"preview"`
	TurnCount int    `json:"turn_count"`
	UpdatedAt string `json:"updated_at"`
	CreatedAt string `json:"created_at"`
}

// SessionListResponse is the body of GET /api/sessions.
type SessionListResponse struct {
	Sessions []SessionListItem `json:"sessions"`
}
