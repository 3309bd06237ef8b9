package run

import (
	"context"
	"sync"
	"time"
)

const (
	defaultWatchdogTick = time.Second
	defaultNoticeAfter  = 30 * time.Second
)

// Watchdog reports how long a run has been waiting on the agent. It is purely
// cosmetic: it calls back with the elapsed time on every tick and, once past
// a threshold, fires a single notice so the caller can explain the delay. It
// never aborts the run and absence of progress is never treated as an error.
//
// The watchdog is idle until Start is called and must be stopped when the run
// leaves the waiting stage.
type Watchdog struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatchdog returns an idle Watchdog.
func NewWatchdog() *Watchdog {
	return &Watchdog{}
}

// Start stops any previously running watchdog, then launches a background
// goroutine that calls onElapsed(elapsed) every tick and onNotice exactly
// once after noticeAfter has passed. Non-positive tick and noticeAfter fall
// back to one second and thirty seconds. The goroutine exits when ctx is
// cancelled or Stop is called.
func (w *Watchdog) Start(ctx context.Context, tick, noticeAfter time.Duration, onElapsed func(time.Duration), onNotice func()) {
	if tick <= 0 {
		tick = defaultWatchdogTick
	}
	if noticeAfter <= 0 {
		noticeAfter = defaultNoticeAfter
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	started := time.Now()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(tick)
		defer t.Stop()

		noticed := false
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				elapsed := time.Since(started)
				if onElapsed != nil {
					onElapsed(elapsed)
				}
				if !noticed && elapsed >= noticeAfter {
					noticed = true
					if onNotice != nil {
						onNotice()
					}
				}
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully exited.
// Safe to call when the watchdog is not running.
func (w *Watchdog) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
