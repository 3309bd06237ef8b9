// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/officetool-client/internal/adapter"
	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/models"
)

type clientAttachmentService struct {
	backend adapter.BackendAdapter
	logger  *logger.Logger

	mu      sync.Mutex
	pending []models.Attachment
}

// NewClientAttachmentService creates the pending-attachment list service.
func NewClientAttachmentService(backend adapter.BackendAdapter, logger *logger.Logger) ClientAttachmentService {
	return &clientAttachmentService{backend: backend, logger: logger}
}

// Add implements [ClientAttachmentService]. The file is streamed to the
// backend; only the returned reference is kept locally.
func (a *clientAttachmentService) Add(ctx context.Context, path string) (models.Attachment, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("open attachment file: %w", err)
	}
	defer func() { _ = f.Close() }()

	uploaded, err := a.backend.UploadAttachment(ctx, filepath.Base(path), f)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("upload attachment: %w", err)
	}

	ref := models.Attachment{
		ID:   uploaded.ID,
		Name: uploaded.Name,
		Size: uploaded.Size,
		Kind: uploaded.Kind,
	}

	a.mu.Lock()
	a.pending = append(a.pending, ref)
	a.mu.Unlock()

	a.logger.Info().Str("attachment_id", ref.ID).Str("name", ref.Name).Msg("attachment uploaded")
	return ref, nil
}

// Pending implements [ClientAttachmentService].
func (a *clientAttachmentService) Pending() []models.Attachment {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.Attachment, len(a.pending))
	copy(out, a.pending)
	return out
}

// PendingIDs implements [ClientAttachmentService].
func (a *clientAttachmentService) PendingIDs() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	ids := make([]string, 0, len(a.pending))
	for _, ref := range a.pending {
		ids = append(ids, ref.ID)
	}
	return ids
}

// Remove implements [ClientAttachmentService].
func (a *clientAttachmentService) Remove(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i, ref := range a.pending {
		if ref.ID == id {
			a.pending = append(a.pending[:i], a.pending[i+1:]...)
			return
		}
	}
}

// Clear implements [ClientAttachmentService].
func (a *clientAttachmentService) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = nil
}

// Reconcile implements [ClientAttachmentService]. Ids the backend reported
// as unresolvable are pruned from the pending list; one warning covers the
// whole run.
func (a *clientAttachmentService) Reconcile(missingIDs []string) *ReconciliationWarning {
	if len(missingIDs) == 0 {
		return nil
	}

	missing := make(map[string]struct{}, len(missingIDs))
	for _, id := range missingIDs {
		missing[id] = struct{}{}
	}

	a.mu.Lock()
	kept := a.pending[:0]
	for _, ref := range a.pending {
		if _, gone := missing[ref.ID]; !gone {
			kept = append(kept, ref)
		}
	}
	a.pending = kept
	a.mu.Unlock()

	return &ReconciliationWarning{MissingIDs: missingIDs}
}
