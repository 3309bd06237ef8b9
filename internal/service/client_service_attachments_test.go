package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/internal/mock"
	"github.com/MKhiriev/officetool-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAttachmentSvc(t *testing.T, ctrl *gomock.Controller) (ClientAttachmentService, *mock.MockBackendAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	return NewClientAttachmentService(mockAdapter, logger.Nop()), mockAdapter
}

// ── Add ──────────────────────────────────────────────────────────────────────

func TestAttachmentService_AddUploadsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestAttachmentSvc(t, ctrl)

	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("file content"), 0o600))

	mockAdapter.EXPECT().UploadAttachment(gomock.Any(), "report.txt", gomock.Any()).
		DoAndReturn(func(_ context.Context, name string, payload io.Reader) (models.UploadResponse, error) {
			raw, err := io.ReadAll(payload)
			require.NoError(t, err)
			assert.Equal(t, "file content", string(raw))
			return models.UploadResponse{ID: "att-1", Name: name, Size: int64(len(raw)), Kind: "text"}, nil
		})

	got, err := svc.Add(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "att-1", got.ID)
	assert.Equal(t, []string{"att-1"}, svc.PendingIDs())
}

func TestAttachmentService_AddMissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAttachmentSvc(t, ctrl)

	_, err := svc.Add(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))

	require.Error(t, err)
	assert.Empty(t, svc.Pending())
}

// ── Pending list ─────────────────────────────────────────────────────────────

func TestAttachmentService_PendingOrderAndRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAttachmentSvc(t, ctrl)
	raw := svc.(*clientAttachmentService)
	raw.pending = []models.Attachment{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	assert.Equal(t, []string{"a", "b", "c"}, svc.PendingIDs())

	svc.Remove("b")
	assert.Equal(t, []string{"a", "c"}, svc.PendingIDs())

	svc.Remove("missing") // no-op
	assert.Equal(t, []string{"a", "c"}, svc.PendingIDs())

	svc.Clear()
	assert.Empty(t, svc.Pending())
}

// ── Reconcile ────────────────────────────────────────────────────────────────

func TestAttachmentService_ReconcilePrunesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAttachmentSvc(t, ctrl)
	raw := svc.(*clientAttachmentService)
	raw.pending = []models.Attachment{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	warning := svc.Reconcile([]string{"b", "unknown"})

	require.NotNil(t, warning)
	assert.Equal(t, []string{"b", "unknown"}, warning.MissingIDs)
	assert.Equal(t, []string{"a", "c"}, svc.PendingIDs())
	assert.Contains(t, warning.String(), "b, unknown")
}

func TestAttachmentService_ReconcileEmptyIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAttachmentSvc(t, ctrl)
	raw := svc.(*clientAttachmentService)
	raw.pending = []models.Attachment{{ID: "a"}}

	assert.Nil(t, svc.Reconcile(nil))
	assert.Nil(t, svc.Reconcile([]string{}))
	assert.Equal(t, []string{"a"}, svc.PendingIDs())
}
