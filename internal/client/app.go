// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the officetool client application: startup health
// probe, restore of the persisted state, background refresh job and the
// terminal UI main loop.
package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/officetool-client/internal/adapter"
	"github.com/MKhiriev/officetool-client/internal/config"
	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/internal/registry"
	"github.com/MKhiriev/officetool-client/internal/service"
	"github.com/MKhiriev/officetool-client/internal/store"
	"github.com/MKhiriev/officetool-client/internal/tui"
	"github.com/MKhiriev/officetool-client/internal/workers"
	"github.com/MKhiriev/officetool-client/models"
)

type App struct {
	backend    adapter.BackendAdapter
	services   *service.ClientServices
	registry   *registry.Registry
	state      store.StateRepository
	refreshJob workers.Worker
	tui        *tui.TUI
	cfg        *config.ClientConfig
	logger     *logger.Logger
}

func NewApp(backend adapter.BackendAdapter, services *service.ClientServices, reg *registry.Registry, state store.StateRepository, ui *tui.TUI, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	return &App{
		backend:    backend,
		services:   services,
		registry:   reg,
		state:      state,
		refreshJob: workers.NewRefreshJob(services.SessionService, services.UsageService, log),
		tui:        ui,
		cfg:        cfg,
		logger:     log,
	}, nil
}

// Run probes the backend, restores the persisted chat settings and last-used
// session, starts the periodic refresh job and enters the UI main loop.
func (a *App) Run() error {
	ctx := context.Background()

	health, err := a.backend.Health(ctx)
	if err != nil {
		// The UI still starts; the first chat request will surface the
		// connectivity problem to the user.
		a.logger.Warn().Err(err).Msg("backend health check failed")
		health = models.HealthResponse{DockerMessage: "сервер недоступен"}
	}

	settings, err := a.state.LoadChatSettings(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalStateNotFound) {
			a.logger.Warn().Err(err).Msg("load saved chat settings")
		}
		settings = a.cfg.Chat
	}

	startSessionID, err := a.registry.LoadLastUsed(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("restore last used session")
		startSessionID = ""
	}

	a.refreshJob.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer a.refreshJob.Stop()

	if err := a.tui.MainLoop(ctx, health, startSessionID, settings); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}
