// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResponseStyle controls how verbose the assistant reply should be.
type ResponseStyle string

const (
	ResponseStyleShort  ResponseStyle = "short"
	ResponseStyleNormal ResponseStyle = "normal"
	ResponseStyleLong   ResponseStyle = "long"
)

// ExecutionMode selects where the backend runs tool commands.
type ExecutionMode string

const (
	ExecutionModeHost   ExecutionMode = "host"
	ExecutionModeDocker ExecutionMode = "docker"
)

// ChatSettings is the closed per-run configuration record. It is immutable
// once a request has been dispatched.
type ChatSettings struct {
	// Model overrides the backend default model when non-empty.
	Model string `json:"model,omitempty"`

	// MaxOutputTokens caps the reply length. Valid range is 120..128000.
	MaxOutputTokens int `json:"max_output_tokens"`

	// MaxContextTurns caps how many history turns the backend feeds to the
	// model. Valid range is 2..2000.
	MaxContextTurns int `json:"max_context_turns"`

	// EnableTools allows the backend agent to call its local tools.
	EnableTools bool `json:"enable_tools"`

	// ExecutionMode selects host or docker tool execution; empty keeps the
	// backend default.
	ExecutionMode ExecutionMode `json:"execution_mode,omitempty"`

	// DebugRaw asks the backend to include raw flow items in the response.
	DebugRaw bool `json:"debug_raw"`

	// ResponseStyle is one of short, normal, long.
	ResponseStyle ResponseStyle `json:"response_style"`
}

// DefaultChatSettings returns the settings the backend applies when a field
// is absent from the request.
func DefaultChatSettings() ChatSettings {
	return ChatSettings{
		MaxOutputTokens: 128000,
		MaxContextTurns: 2000,
		EnableTools:     true,
		ResponseStyle:   ResponseStyleNormal,
	}
}

// ChatRequest is the body of POST /api/chat and POST /api/chat/stream.
type ChatRequest struct {
	// SessionID is empty on the first send; the backend then creates a
	// session implicitly.
	SessionID string `json:"session_id,omitempty"`

	// Message is the user message text. Must be non-empty.
	Message string `json:"message"`

	// AttachmentIDs is the ordered list of previously uploaded attachment
	// ids referenced by this message.
	AttachmentIDs []string `json:"attachment_ids"`

	// Settings is the per-run configuration.
	Settings ChatSettings `json:"settings"`
}
