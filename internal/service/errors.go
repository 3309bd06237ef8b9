// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRunInFlight is returned by the orchestrator when a run on the requested
// session is already in flight. No network traffic happens in that case.
var ErrRunInFlight = errors.New("run already in flight for this session")

// TransportError is a failure to reach the backend or to keep the connection
// alive: dial errors, timeouts, a stream that broke mid-read.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport failure: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ProtocolError is a stream that violated the run protocol: undecodable
// final payload, or termination with neither Final nor Done observed.
type ProtocolError struct {
	Err error
}

func (e *ProtocolError) Error() string { return "protocol violation: " + e.Err.Error() }
func (e *ProtocolError) Unwrap() error { return e.Err }

// ServerError is an explicit failure reported by the backend, either as a
// non-2xx response or an error frame inside the stream.
type ServerError struct {
	StatusCode int
	Detail     string
}

func (e *ServerError) Error() string {
	if e.StatusCode == 0 {
		return "server error: " + e.Detail
	}
	return fmt.Sprintf("server error (http %d): %s", e.StatusCode, e.Detail)
}

// ReconciliationWarning records attachment ids the backend could not resolve
// for a run. It is informational: the run itself still succeeds, and at most
// one warning is produced per run.
type ReconciliationWarning struct {
	MissingIDs []string
}

func (w *ReconciliationWarning) String() string {
	return fmt.Sprintf("backend could not resolve attachments: %s", strings.Join(w.MissingIDs, ", "))
}
