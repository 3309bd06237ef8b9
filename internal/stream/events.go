// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stream

import (
	"encoding/json"

	"github.com/MKhiriev/officetool-client/models"
)

// EventKind discriminates the [Event] tagged variant.
type EventKind int

const (
	// KindUnknown is any event name this client does not recognise. Unknown
	// events are tolerated and skipped, never fatal.
	KindUnknown EventKind = iota
	KindStage
	KindTrace
	KindDebug
	KindTool
	KindHeartbeat
	KindError
	KindFinal
	KindDone
)

// StagePayload is the body of a `stage` frame.
type StagePayload struct {
	Code        string `json:"code"`
	Detail      string `json:"detail"`
	RunID       string `json:"run_id,omitempty"`
	QueueWaitMS int    `json:"queue_wait_ms,omitempty"`
}

// TracePayload is the body of a `trace` frame.
type TracePayload struct {
	Message string `json:"message"`
	Index   int    `json:"index,omitempty"`
	RunID   string `json:"run_id,omitempty"`
}

// DebugPayload is the body of a `debug` frame.
type DebugPayload struct {
	Item models.DebugFlowItem `json:"item"`
}

// ToolPayload is the body of a `tool_event` frame.
type ToolPayload struct {
	Item models.ToolEvent `json:"item"`
}

// HeartbeatPayload is the body of a `heartbeat` frame.
type HeartbeatPayload struct {
	TS int64 `json:"ts"`
}

// ErrorPayload is the body of an `error` frame.
type ErrorPayload struct {
	StatusCode int    `json:"status_code"`
	Detail     string `json:"detail"`
}

// FinalPayload is the body of a `final` frame: the complete run result.
type FinalPayload struct {
	Response models.ChatResponse `json:"response"`
}

// Event is the tagged variant decoded from one frame. Exactly one of the
// payload fields matching Kind is meaningful; Raw carries the undecoded
// payload text when structured decoding failed or the name is unknown.
type Event struct {
	Kind EventKind
	Name string

	Stage     StagePayload
	Trace     TracePayload
	Debug     DebugPayload
	Tool      ToolPayload
	Heartbeat HeartbeatPayload
	Err       ErrorPayload
	Final     FinalPayload

	Raw string
}

// DecodeEvent interprets a frame's payload according to its event name.
// Frames whose payload fails structured decoding keep the raw text so the
// caller can still surface something; frames with unknown names come back as
// KindUnknown and are expected to be skipped.
func DecodeEvent(f Frame) Event {
	ev := Event{Name: f.Name, Raw: f.Data}

	switch f.Name {
	case "stage":
		ev.Kind = KindStage
		if err := json.Unmarshal([]byte(f.Data), &ev.Stage); err != nil {
			ev.Stage = StagePayload{Detail: f.Data}
		}
	case "trace":
		ev.Kind = KindTrace
		if err := json.Unmarshal([]byte(f.Data), &ev.Trace); err != nil {
			ev.Trace = TracePayload{Message: f.Data}
		}
	case "debug":
		ev.Kind = KindDebug
		_ = json.Unmarshal([]byte(f.Data), &ev.Debug)
	case "tool_event":
		ev.Kind = KindTool
		_ = json.Unmarshal([]byte(f.Data), &ev.Tool)
	case "heartbeat":
		ev.Kind = KindHeartbeat
		_ = json.Unmarshal([]byte(f.Data), &ev.Heartbeat)
	case "error":
		ev.Kind = KindError
		if err := json.Unmarshal([]byte(f.Data), &ev.Err); err != nil {
			ev.Err = ErrorPayload{Detail: f.Data}
		}
	case "final":
		ev.Kind = KindFinal
		if err := json.Unmarshal([]byte(f.Data), &ev.Final); err != nil {
			// A final frame that cannot be decoded is a protocol violation;
			// signal it through Kind so the orchestrator aborts the run.
			ev.Kind = KindError
			ev.Err = ErrorPayload{Detail: "malformed final payload"}
		}
	case TerminalEventName:
		ev.Kind = KindDone
	default:
		ev.Kind = KindUnknown
	}

	return ev
}
