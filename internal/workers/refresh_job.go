// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/internal/service"
)

const defaultRefreshInterval = 30 * time.Second

type refreshJob struct {
	sessions service.ClientSessionService
	usage    service.ClientUsageService
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that re-fetches the session list and
// the usage stats on a ticker. The job is idle until Start is called.
func NewRefreshJob(sessions service.ClientSessionService, usage service.ClientUsageService, logger *logger.Logger) Worker {
	return &refreshJob{sessions: sessions, usage: usage, logger: logger}
}

// Start implements [Worker]. Each tick is jittered by up to 10% of the
// interval so restarts of many clients do not hammer the backend in sync.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				jitter := time.Duration(rand.Int63n(int64(interval)/10 + 1))
				select {
				case <-jobCtx.Done():
					return
				case <-time.After(jitter):
				}
				j.refresh(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker].
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// refresh fetches both views concurrently; a failing fetch is logged and
// retried on the next tick.
func (j *refreshJob) refresh(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := j.sessions.List(gctx)
		return err
	})
	g.Go(func() error {
		_, err := j.usage.Stats(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		j.logger.Warn().Err(err).Msg("background refresh failed")
	}
}
