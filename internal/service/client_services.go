package service

import (
	"github.com/MKhiriev/officetool-client/internal/adapter"
	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/internal/registry"
)

type ClientServices struct {
	ChatService       ClientChatService
	UsageService      ClientUsageService
	AttachmentService ClientAttachmentService
	SessionService    ClientSessionService
}

func NewClientServices(backend adapter.BackendAdapter, reg *registry.Registry, logger *logger.Logger) *ClientServices {
	usageSvc := NewClientUsageService(backend, logger)
	attachmentSvc := NewClientAttachmentService(backend, logger)
	sessionSvc := NewClientSessionService(backend, reg, logger)

	return &ClientServices{
		ChatService:       NewClientChatService(backend, reg, usageSvc, attachmentSvc, sessionSvc, logger),
		UsageService:      usageSvc,
		AttachmentService: attachmentSvc,
		SessionService:    sessionSvc,
	}
}
