// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers holds the client's background jobs. The only job today is
// the periodic refresh of session metadata and usage stats, which keeps the
// sessions and stats pages current without user interaction.
package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle.
type Worker interface {
	// Start launches the job's goroutine. It runs every interval, with a
	// package default when interval is zero or negative. Any previously
	// running instance is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has fully
	// terminated. Safe to call when the job is not running.
	Stop()
}
