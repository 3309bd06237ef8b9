// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ApplyStage ───────────────────────────────────────────────────────────────

func TestMachine_FullStageProgression(t *testing.T) {
	m := NewMachine()
	require.Equal(t, StateIdle, m.State())

	steps := []struct {
		code string
		want State
	}{
		{"backend_start", StatePreparing},
		{"session_ready", StateSent},
		{"attachments_ready", StateSent}, // same rank, no change
		{"agent_run_start", StateWaiting},
		{"agent_run_done", StateParsing},
		{"session_saved", StateParsing},
		{"stats_saved", StateParsing},
		{"ready", StateDone},
	}

	for _, step := range steps {
		got, _ := m.ApplyStage(step.code)
		assert.Equal(t, step.want, got, "after code %q", step.code)
	}
	assert.True(t, m.State().Terminal())
}

func TestMachine_UnknownCodeIgnored(t *testing.T) {
	m := NewMachine()
	m.ApplyStage("backend_start")

	got, changed := m.ApplyStage("quantum_warmup")

	assert.False(t, changed)
	assert.Equal(t, StatePreparing, got)
}

func TestMachine_NeverMovesBackwards(t *testing.T) {
	m := NewMachine()
	m.ApplyStage("agent_run_start")
	require.Equal(t, StateWaiting, m.State())

	// A duplicated or late early-stage frame must not roll progress back.
	got, changed := m.ApplyStage("backend_start")

	assert.False(t, changed)
	assert.Equal(t, StateWaiting, got)
}

func TestMachine_StagesIgnoredAfterTerminal(t *testing.T) {
	m := NewMachine()
	m.ApplyStage("ready")
	require.Equal(t, StateDone, m.State())

	_, changed := m.ApplyStage("backend_start")
	assert.False(t, changed)
	assert.Equal(t, StateDone, m.State())
}

// ── Fail ─────────────────────────────────────────────────────────────────────

func TestMachine_FailFromEveryNonTerminalState(t *testing.T) {
	warmups := map[State][]string{
		StateIdle:      nil,
		StatePreparing: {"backend_start"},
		StateSent:      {"backend_start", "session_ready"},
		StateWaiting:   {"backend_start", "agent_run_start"},
		StateParsing:   {"backend_start", "agent_run_done"},
	}

	for from, codes := range warmups {
		m := NewMachine()
		for _, code := range codes {
			m.ApplyStage(code)
		}
		require.Equal(t, from, m.State())

		assert.True(t, m.Fail(), "from %s", from)
		assert.Equal(t, StateError, m.State())
	}
}

func TestMachine_FailAfterDoneIsNoOp(t *testing.T) {
	m := NewMachine()
	m.ApplyStage("ready")

	assert.False(t, m.Fail())
	assert.Equal(t, StateDone, m.State())
}

// ── Heartbeat ────────────────────────────────────────────────────────────────

func TestMachine_HeartbeatNotesEveryThird(t *testing.T) {
	m := NewMachine()
	m.ApplyStage("agent_run_start")

	var notes []int
	for i := 0; i < 7; i++ {
		if count, note := m.Heartbeat(); note {
			notes = append(notes, count)
		}
	}

	assert.Equal(t, []int{3, 6}, notes)
	assert.Equal(t, 7, m.Heartbeats())
	assert.Equal(t, StateWaiting, m.State(), "heartbeats must not change stage")
}
