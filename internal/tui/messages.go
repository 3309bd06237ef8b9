package tui

import (
	"time"

	"github.com/MKhiriev/officetool-client/internal/run"
	"github.com/MKhiriev/officetool-client/models"
)

type runStateMsg struct {
	sessionID string
	state     run.State
	detail    string
}

type runTraceMsg struct {
	sessionID string
	line      string
}

type runToolMsg struct {
	sessionID string
	item      models.ToolEvent
}

type runDebugMsg struct {
	sessionID string
	item      models.DebugFlowItem
}

type runElapsedMsg struct {
	sessionID string
	elapsed   time.Duration
}

type runDoneMsg struct {
	sessionID string
	resp      models.ChatResponse
	err       error
}

type sessionsLoadedMsg struct {
	items []models.SessionListItem
	err   error
}

type sessionOpenedMsg struct {
	detail models.SessionDetailResponse
	err    error
}

type sessionCreatedMsg struct {
	sessionID string
	err       error
}

type sessionDeletedMsg struct {
	sessionID string
	err       error
}

type statsLoadedMsg struct {
	stats models.TokenStatsResponse
	err   error
}

type statsClearedMsg struct {
	err error
}

type uploadDoneMsg struct {
	ref models.Attachment
	err error
}

type settingsSavedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
