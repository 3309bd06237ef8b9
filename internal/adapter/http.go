// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/officetool-client/internal/config"
	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/models"
	"github.com/go-resty/resty/v2"
)

type httpBackendAdapter struct {
	client *resty.Client

	// streamClient carries no overall timeout: a run may stay quiet for
	// minutes while the agent works, and only ctx cancellation aborts it.
	streamClient *resty.Client

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying clients with the resolved
// base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPBackendAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	streamClient := resty.New().
		SetBaseURL(baseURL)

	return &httpBackendAdapter{client: client, streamClient: streamClient, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Health implements [BackendAdapter]. It GETs /api/health and decodes the
// backend capability report.
func (h *httpBackendAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

// CreateSession implements [BackendAdapter]. It POSTs to /api/session/new and
// returns the id of the freshly created session.
func (h *httpBackendAdapter) CreateSession(ctx context.Context) (models.NewSessionResponse, error) {
	var created models.NewSessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&created).
		Post("/api/session/new")
	if err != nil {
		return models.NewSessionResponse{}, fmt.Errorf("create session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NewSessionResponse{}, err
	}

	return created, nil
}

// DeleteSession implements [BackendAdapter]. It sends a DELETE request to
// /api/session/{id}. Returns [ErrSessionNotFound] (wrapped) on HTTP 404.
func (h *httpBackendAdapter) DeleteSession(ctx context.Context, sessionID string) (models.DeleteSessionResponse, error) {
	var deleted models.DeleteSessionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&deleted).
		Delete("/api/session/" + url.PathEscape(sessionID))
	if err != nil {
		return models.DeleteSessionResponse{}, fmt.Errorf("delete session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteSessionResponse{}, err
	}

	return deleted, nil
}

// GetSession implements [BackendAdapter]. It GETs /api/session/{id} with an
// optional max_turns query parameter limiting how much transcript is
// returned. Returns [ErrSessionNotFound] (wrapped) on HTTP 404.
func (h *httpBackendAdapter) GetSession(ctx context.Context, sessionID string, maxTurns int) (models.SessionDetailResponse, error) {
	req := h.client.R().SetContext(ctx)
	if maxTurns > 0 {
		req.SetQueryParam("max_turns", strconv.Itoa(maxTurns))
	}

	resp, err := req.Get("/api/session/" + url.PathEscape(sessionID))
	if err != nil {
		return models.SessionDetailResponse{}, fmt.Errorf("get session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionDetailResponse{}, err
	}

	var detail models.SessionDetailResponse
	if err = json.Unmarshal(resp.Body(), &detail); err != nil {
		return models.SessionDetailResponse{}, fmt.Errorf("decode session response: %w", err)
	}

	return detail, nil
}

// ListSessions implements [BackendAdapter]. It GETs /api/sessions and decodes
// the stored-session metadata list.
func (h *httpBackendAdapter) ListSessions(ctx context.Context) (models.SessionListResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/sessions")
	if err != nil {
		return models.SessionListResponse{}, fmt.Errorf("list sessions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionListResponse{}, err
	}

	var list models.SessionListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.SessionListResponse{}, fmt.Errorf("decode sessions response: %w", err)
	}

	return list, nil
}

// UploadAttachment implements [BackendAdapter]. It POSTs the file as
// multipart form data to /api/upload and returns the backend-assigned
// attachment reference. Returns [ErrFileTooLarge] (wrapped) on HTTP 413.
func (h *httpBackendAdapter) UploadAttachment(ctx context.Context, name string, payload io.Reader) (models.UploadResponse, error) {
	var uploaded models.UploadResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFileReader("file", name, payload).
		SetResult(&uploaded).
		Post("/api/upload")
	if err != nil {
		return models.UploadResponse{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadResponse{}, err
	}

	return uploaded, nil
}

// Stats implements [BackendAdapter]. It GETs /api/stats and decodes the
// cumulative usage report.
func (h *httpBackendAdapter) Stats(ctx context.Context) (models.TokenStatsResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/stats")
	if err != nil {
		return models.TokenStatsResponse{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenStatsResponse{}, err
	}

	var stats models.TokenStatsResponse
	if err = json.Unmarshal(resp.Body(), &stats); err != nil {
		return models.TokenStatsResponse{}, fmt.Errorf("decode stats response: %w", err)
	}

	return stats, nil
}

// ClearStats implements [BackendAdapter]. It POSTs to /api/stats/clear,
// resetting the backend's global usage accumulator.
func (h *httpBackendAdapter) ClearStats(ctx context.Context) (models.ClearStatsResponse, error) {
	var cleared models.ClearStatsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&cleared).
		Post("/api/stats/clear")
	if err != nil {
		return models.ClearStatsResponse{}, fmt.Errorf("clear stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ClearStatsResponse{}, err
	}

	return cleared, nil
}

// RunChat implements [BackendAdapter]. It POSTs the run request to /api/chat
// and decodes the complete synchronous result.
func (h *httpBackendAdapter) RunChat(ctx context.Context, req models.ChatRequest) (models.ChatResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/chat")
	if err != nil {
		return models.ChatResponse{}, fmt.Errorf("chat request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChatResponse{}, err
	}

	var result models.ChatResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.ChatResponse{}, fmt.Errorf("decode chat response: %w", err)
	}

	return result, nil
}

// RunChatStream implements [BackendAdapter]. It POSTs the run request to
// /api/chat/stream with response parsing disabled and hands the raw body to
// the caller for incremental decoding. A non-2xx status is mapped to the
// package sentinels before any body is returned.
func (h *httpBackendAdapter) RunChatStream(ctx context.Context, req models.ChatRequest) (io.ReadCloser, error) {
	resp, err := h.streamClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "text/event-stream").
		SetDoNotParseResponse(true).
		SetBody(req).
		Post("/api/chat/stream")
	if err != nil {
		return nil, fmt.Errorf("chat stream request: %w", err)
	}

	body := resp.RawBody()
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(body, 8<<10))
		_ = body.Close()
		return nil, mapStatusError(resp.StatusCode(), raw)
	}

	return body, nil
}
