// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package run tracks the progress of one chat run: an ordered stage machine
// driven by backend stage codes, and a watchdog that reports elapsed time
// while the agent is working.
package run

import "fmt"

// State is the progress stage of a run. Done and Error are terminal; Error is
// reachable from any non-terminal state.
type State int

const (
	StateIdle State = iota
	StatePreparing
	StateSent
	StateWaiting
	StateParsing
	StateDone
	StateError
)

// String implements [fmt.Stringer].
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreparing:
		return "preparing"
	case StateSent:
		return "sent"
	case StateWaiting:
		return "waiting"
	case StateParsing:
		return "parsing"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further transitions are possible from s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateError
}

// heartbeatNoteEvery controls how often accumulated heartbeats surface a
// trace note: every third one.
const heartbeatNoteEvery = 3

// stageStates maps backend stage codes to the state they announce. Codes
// absent from the map are ignored, so newer backends can add stages without
// breaking older clients.
var stageStates = map[string]State{
	"backend_start":     StatePreparing,
	"session_ready":     StateSent,
	"attachments_ready": StateSent,
	"agent_run_start":   StateWaiting,
	"agent_run_done":    StateParsing,
	"session_saved":     StateParsing,
	"stats_saved":       StateParsing,
	"ready":             StateDone,
}

// Machine is the run progress machine. Transitions only move forward: a stage
// code announcing an earlier state than the current one is discarded, so a
// late or duplicated frame can never roll progress back. Machine is not safe
// for concurrent use; each run owns one machine.
type Machine struct {
	state      State
	heartbeats int
}

// NewMachine returns a machine in [StateIdle].
func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Heartbeats returns how many heartbeat events this run has absorbed.
func (m *Machine) Heartbeats() int {
	return m.heartbeats
}

// ApplyStage advances the machine according to a backend stage code. It
// returns the state after the call and whether it changed. Unknown codes and
// codes that would move the machine backwards leave the state untouched; once
// terminal, every code is ignored.
func (m *Machine) ApplyStage(code string) (State, bool) {
	if m.state.Terminal() {
		return m.state, false
	}

	next, ok := stageStates[code]
	if !ok || next <= m.state {
		return m.state, false
	}

	m.state = next
	return m.state, true
}

// Fail moves the machine to [StateError]. It reports false when the machine
// was already terminal, in which case the state is left as it was.
func (m *Machine) Fail() bool {
	if m.state.Terminal() {
		return false
	}

	m.state = StateError
	return true
}

// Heartbeat records one liveness signal and reports whether the caller should
// surface a trace note for it. Heartbeats never change the stage and their
// absence is never an error.
func (m *Machine) Heartbeat() (count int, note bool) {
	m.heartbeats++
	return m.heartbeats, m.heartbeats%heartbeatNoteEvery == 0
}
