package tui

import (
	"time"

	"github.com/MKhiriev/officetool-client/internal/run"
	"github.com/MKhiriev/officetool-client/internal/service"
	"github.com/MKhiriev/officetool-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// programSink implements [service.RunSink] by forwarding run progress into
// the bubbletea message queue. Send is safe from any goroutine.
type programSink struct {
	p *tea.Program
}

func newProgramSink(p *tea.Program) service.RunSink {
	return &programSink{p: p}
}

func (s *programSink) OnStateChange(sessionID string, state run.State, detail string) {
	s.p.Send(runStateMsg{sessionID: sessionID, state: state, detail: detail})
}

func (s *programSink) OnTrace(sessionID string, line string) {
	s.p.Send(runTraceMsg{sessionID: sessionID, line: line})
}

func (s *programSink) OnToolEvent(sessionID string, item models.ToolEvent) {
	s.p.Send(runToolMsg{sessionID: sessionID, item: item})
}

func (s *programSink) OnDebug(sessionID string, item models.DebugFlowItem) {
	s.p.Send(runDebugMsg{sessionID: sessionID, item: item})
}

func (s *programSink) OnElapsed(sessionID string, elapsed time.Duration) {
	s.p.Send(runElapsedMsg{sessionID: sessionID, elapsed: elapsed})
}
