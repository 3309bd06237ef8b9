// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/internal/mock"
	"github.com/MKhiriev/officetool-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUsageSvc(t *testing.T, ctrl *gomock.Controller) (ClientUsageService, *mock.MockBackendAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	return NewClientUsageService(mockAdapter, logger.Nop()), mockAdapter
}

// ── Merge ────────────────────────────────────────────────────────────────────

func TestUsageService_MergeReplacesScopesWholesale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUsageSvc(t, ctrl)

	svc.MergeLastRun(models.TokenUsage{TotalTokens: 100})
	svc.MergeCumulative(
		models.TokenTotals{Requests: 2, TotalTokens: 300},
		models.TokenTotals{Requests: 10, TotalTokens: 5000},
	)

	// Backend reports smaller numbers after a server-side reset: the client
	// takes them as-is instead of keeping a local running sum.
	svc.MergeLastRun(models.TokenUsage{TotalTokens: 40})
	svc.MergeCumulative(
		models.TokenTotals{Requests: 3, TotalTokens: 340},
		models.TokenTotals{Requests: 1, TotalTokens: 40},
	)

	got := svc.Snapshot()
	assert.Equal(t, 40, got.LastRun.TotalTokens)
	assert.Equal(t, 340, got.Session.TotalTokens)
	assert.Equal(t, 40, got.Global.TotalTokens)
}

func TestUsageService_ResetSessionScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUsageSvc(t, ctrl)
	svc.MergeLastRun(models.TokenUsage{TotalTokens: 7})
	svc.MergeCumulative(models.TokenTotals{Requests: 4}, models.TokenTotals{Requests: 20})

	svc.ResetSessionScope()

	got := svc.Snapshot()
	assert.Zero(t, got.Session)
	assert.Equal(t, 7, got.LastRun.TotalTokens)
	assert.Equal(t, 20, got.Global.Requests)
}

// ── ClearGlobal ──────────────────────────────────────────────────────────────

func TestUsageService_ClearGlobal_Isolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUsageSvc(t, ctrl)
	ctx := context.Background()

	svc.MergeLastRun(models.TokenUsage{TotalTokens: 42})
	svc.MergeCumulative(models.TokenTotals{Requests: 5, TotalTokens: 900}, models.TokenTotals{Requests: 50, TotalTokens: 9000})

	mockAdapter.EXPECT().ClearStats(ctx).Return(models.ClearStatsResponse{OK: true}, nil)
	mockAdapter.EXPECT().Stats(ctx).Return(models.TokenStatsResponse{Totals: models.TokenTotals{}}, nil)

	require.NoError(t, svc.ClearGlobal(ctx))

	got := svc.Snapshot()
	assert.Zero(t, got.Global, "global scope cleared")
	assert.Equal(t, 42, got.LastRun.TotalTokens, "last-run scope untouched")
	assert.Equal(t, 900, got.Session.TotalTokens, "session scope untouched")
}

func TestUsageService_ClearGlobal_BackendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUsageSvc(t, ctrl)
	ctx := context.Background()
	svc.MergeCumulative(models.TokenTotals{Requests: 5}, models.TokenTotals{Requests: 50})

	mockAdapter.EXPECT().ClearStats(ctx).Return(models.ClearStatsResponse{}, errors.New("backend down"))

	err := svc.ClearGlobal(ctx)

	require.Error(t, err)
	assert.Equal(t, 50, svc.Snapshot().Global.Requests, "failed clear changes nothing")
}

func TestUsageService_ClearGlobal_RefreshFailureStillZeroes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUsageSvc(t, ctrl)
	ctx := context.Background()
	svc.MergeCumulative(models.TokenTotals{Requests: 5}, models.TokenTotals{Requests: 50})

	mockAdapter.EXPECT().ClearStats(ctx).Return(models.ClearStatsResponse{OK: true}, nil)
	mockAdapter.EXPECT().Stats(ctx).Return(models.TokenStatsResponse{}, errors.New("flaky network"))

	require.NoError(t, svc.ClearGlobal(ctx))
	assert.Zero(t, svc.Snapshot().Global)
}

// ── Stats ────────────────────────────────────────────────────────────────────

func TestUsageService_StatsRefreshesGlobalScope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestUsageSvc(t, ctrl)
	ctx := context.Background()

	want := models.TokenStatsResponse{
		Totals:   models.TokenTotals{Requests: 12, TotalTokens: 3400},
		Sessions: map[string]models.TokenTotals{"s-1": {Requests: 4}},
	}
	mockAdapter.EXPECT().Stats(ctx).Return(want, nil)

	got, err := svc.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 12, svc.Snapshot().Global.Requests)
}
