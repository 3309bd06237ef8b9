// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/officetool-client/internal/adapter"
	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/models"
)

type clientUsageService struct {
	backend adapter.BackendAdapter
	logger  *logger.Logger

	mu       sync.RWMutex
	snapshot models.UsageSnapshot
}

// NewClientUsageService creates the usage accounting service. All scopes
// start zeroed and are filled from backend-reported values only.
func NewClientUsageService(backend adapter.BackendAdapter, logger *logger.Logger) ClientUsageService {
	return &clientUsageService{backend: backend, logger: logger}
}

// MergeLastRun implements [ClientUsageService].
func (u *clientUsageService) MergeLastRun(usage models.TokenUsage) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.snapshot.LastRun = usage
}

// MergeCumulative implements [ClientUsageService]. Both scopes are replaced
// wholesale; summing locally would drift from the backend across restarts.
func (u *clientUsageService) MergeCumulative(session, global models.TokenTotals) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.snapshot.Session = session
	u.snapshot.Global = global
}

// ResetSessionScope implements [ClientUsageService].
func (u *clientUsageService) ResetSessionScope() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.snapshot.Session = models.TokenTotals{}
}

// Snapshot implements [ClientUsageService].
func (u *clientUsageService) Snapshot() models.UsageSnapshot {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.snapshot
}

// Stats implements [ClientUsageService].
func (u *clientUsageService) Stats(ctx context.Context) (models.TokenStatsResponse, error) {
	stats, err := u.backend.Stats(ctx)
	if err != nil {
		return models.TokenStatsResponse{}, fmt.Errorf("fetch usage stats: %w", err)
	}

	u.mu.Lock()
	u.snapshot.Global = stats.Totals
	u.mu.Unlock()

	return stats, nil
}

// ClearGlobal implements [ClientUsageService]. The backend clear touches only
// the global accumulator; the last-run and session scopes stay as they are.
func (u *clientUsageService) ClearGlobal(ctx context.Context) error {
	if _, err := u.backend.ClearStats(ctx); err != nil {
		return fmt.Errorf("clear global usage: %w", err)
	}

	stats, err := u.backend.Stats(ctx)
	if err != nil {
		// The clear itself went through; the refresh can wait for the next
		// stats fetch.
		u.logger.Warn().Err(err).Msg("stats refresh after clear failed")
		u.mu.Lock()
		u.snapshot.Global = models.TokenTotals{}
		u.mu.Unlock()
		return nil
	}

	u.mu.Lock()
	u.snapshot.Global = stats.Totals
	u.mu.Unlock()
	return nil
}
