// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal UI of the officetool client: a chat page with
// live run progress, plus pages for stored sessions, usage stats and chat
// settings. Run progress arrives asynchronously through the service sink and
// is rendered only for the foreground session.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/internal/registry"
	"github.com/MKhiriev/officetool-client/internal/service"
	"github.com/MKhiriev/officetool-client/internal/store"
	"github.com/MKhiriev/officetool-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
	registry *registry.Registry
	state    store.StateRepository
	logger   *logger.Logger
}

func New(services *service.ClientServices, reg *registry.Registry, state store.StateRepository, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, registry: reg, state: state, logger: log}, nil
}

// MainLoop runs the UI until the user quits. health is the startup probe
// result, startSessionID the restored last-used session (empty for a fresh
// one) and settings the effective chat settings.
func (t *TUI) MainLoop(ctx context.Context, health models.HealthResponse, startSessionID string, settings models.ChatSettings) error {
	model := newMainLoopModel(ctx, t.services, t.registry, t.state, health, startSessionID, settings)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Run progress flows from the orchestrator's goroutines into the
	// program's message queue.
	t.services.ChatService.SetSink(newProgramSink(p))

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(mainLoopModel); ok && result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
