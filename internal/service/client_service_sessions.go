// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/officetool-client/internal/adapter"
	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/internal/registry"
	"github.com/MKhiriev/officetool-client/models"
)

// maxSessionTurns bounds the max_turns query of a session detail fetch.
const maxSessionTurns = 2000

type clientSessionService struct {
	backend  adapter.BackendAdapter
	registry *registry.Registry
	logger   *logger.Logger

	mu     sync.RWMutex
	cached []models.SessionListItem
}

// NewClientSessionService creates the session management service.
func NewClientSessionService(backend adapter.BackendAdapter, reg *registry.Registry, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{backend: backend, registry: reg, logger: logger}
}

// Create implements [ClientSessionService].
func (s *clientSessionService) Create(ctx context.Context) (string, error) {
	created, err := s.backend.CreateSession(ctx)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return created.SessionID, nil
}

// Delete implements [ClientSessionService]. Deleting the foreground session
// also clears the persisted last-used key, so the next start does not try to
// restore a session that no longer exists.
func (s *clientSessionService) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.backend.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if s.registry.IsForeground(sessionID) {
		if err := s.registry.SetForeground(ctx, ""); err != nil {
			s.logger.Warn().Err(err).Msg("clearing last-used session after delete failed")
		}
	}

	s.mu.Lock()
	kept := s.cached[:0]
	for _, item := range s.cached {
		if item.SessionID != sessionID {
			kept = append(kept, item)
		}
	}
	s.cached = kept
	s.mu.Unlock()

	return nil
}

// List implements [ClientSessionService].
func (s *clientSessionService) List(ctx context.Context) ([]models.SessionListItem, error) {
	list, err := s.backend.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	s.mu.Lock()
	s.cached = list.Sessions
	s.mu.Unlock()

	return list.Sessions, nil
}

// Cached implements [ClientSessionService].
func (s *clientSessionService) Cached() []models.SessionListItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SessionListItem, len(s.cached))
	copy(out, s.cached)
	return out
}

// Detail implements [ClientSessionService].
func (s *clientSessionService) Detail(ctx context.Context, sessionID string, maxTurns int) (models.SessionDetailResponse, error) {
	if maxTurns > maxSessionTurns {
		maxTurns = maxSessionTurns
	}

	detail, err := s.backend.GetSession(ctx, sessionID, maxTurns)
	if err != nil {
		return models.SessionDetailResponse{}, fmt.Errorf("get session: %w", err)
	}
	return detail, nil
}
