// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/officetool-client/internal/adapter"
	"github.com/MKhiriev/officetool-client/internal/logger"
	"github.com/MKhiriev/officetool-client/internal/registry"
	"github.com/MKhiriev/officetool-client/internal/run"
	"github.com/MKhiriev/officetool-client/internal/stream"
	"github.com/MKhiriev/officetool-client/models"
	"github.com/google/uuid"
)

type clientChatService struct {
	backend     adapter.BackendAdapter
	registry    *registry.Registry
	usage       ClientUsageService
	attachments ClientAttachmentService
	sessions    ClientSessionService
	logger      *logger.Logger

	// watchdog timings; zero values fall back to the run package defaults.
	watchdogTick time.Duration
	noticeAfter  time.Duration

	mu   sync.RWMutex
	sink RunSink
}

// NewClientChatService creates the run orchestrator. The sink starts nil and
// is installed later via SetSink once the UI exists.
func NewClientChatService(
	backend adapter.BackendAdapter,
	reg *registry.Registry,
	usage ClientUsageService,
	attachments ClientAttachmentService,
	sessions ClientSessionService,
	logger *logger.Logger,
) ClientChatService {
	return &clientChatService{
		backend:     backend,
		registry:    reg,
		usage:       usage,
		attachments: attachments,
		sessions:    sessions,
		logger:      logger,
	}
}

// SetSink implements [ClientChatService].
func (s *clientChatService) SetSink(sink RunSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sink = sink
}

// Run implements [ClientChatService]. It drives one streaming run end to
// end: claim the session slot, ensure a session id, dispatch, decode the
// event stream and resolve. The slot is released on every exit path.
func (s *clientChatService) Run(ctx context.Context, sessionID, message string, attachmentIDs []string, settings models.ChatSettings) (models.ChatResponse, error) {
	if !s.registry.Begin(sessionID) {
		return models.ChatResponse{}, fmt.Errorf("%w (session=%q)", ErrRunInFlight, sessionID)
	}
	defer s.registry.End(sessionID)

	localRunID := uuid.NewString()
	log := s.logger.With().Str("local_run_id", localRunID).Str("session_id", sessionID).Logger()
	log.Info().Msg("starting chat run")

	sid, err := s.ensureSession(ctx, sessionID)
	if err != nil {
		return models.ChatResponse{}, err
	}

	body, err := s.backend.RunChatStream(ctx, models.ChatRequest{
		SessionID:     sid,
		Message:       message,
		AttachmentIDs: attachmentIDs,
		Settings:      settings,
	})
	if err != nil {
		log.Err(err).Msg("chat stream dispatch failed")
		return models.ChatResponse{}, classifyAdapterError(err)
	}
	defer func() { _ = body.Close() }()

	machine := run.NewMachine()
	final, runErr := s.drive(ctx, sessionID, sid, body, machine)
	if runErr != nil {
		machine.Fail()
		s.emitState(sessionID, sid, run.StateError, runErr.Error())
		log.Err(runErr).Msg("chat run failed")
		return models.ChatResponse{}, runErr
	}

	if !machine.State().Terminal() {
		// Lenient completion: the result is in hand even though the stream
		// never announced the final stage.
		s.emitState(sessionID, sid, run.StateDone, "")
	}

	log.Info().Str("run_id", final.RunID).Int("turn_count", final.TurnCount).Msg("chat run finished")
	s.finish(ctx, sessionID, sid, *final)
	return *final, nil
}

// RunSync implements [ClientChatService]. The synchronous endpoint returns
// the complete result in one response, which is treated exactly like a
// stream that emitted Final followed by Done.
func (s *clientChatService) RunSync(ctx context.Context, sessionID, message string, attachmentIDs []string, settings models.ChatSettings) (models.ChatResponse, error) {
	if !s.registry.Begin(sessionID) {
		return models.ChatResponse{}, fmt.Errorf("%w (session=%q)", ErrRunInFlight, sessionID)
	}
	defer s.registry.End(sessionID)

	sid, err := s.ensureSession(ctx, sessionID)
	if err != nil {
		return models.ChatResponse{}, err
	}

	s.emitState(sessionID, sid, run.StatePreparing, "")
	final, err := s.backend.RunChat(ctx, models.ChatRequest{
		SessionID:     sid,
		Message:       message,
		AttachmentIDs: attachmentIDs,
		Settings:      settings,
	})
	if err != nil {
		runErr := classifyAdapterError(err)
		s.emitState(sessionID, sid, run.StateError, runErr.Error())
		return models.ChatResponse{}, runErr
	}

	s.emitState(sessionID, sid, run.StateDone, "")
	s.finish(ctx, sessionID, sid, final)
	return final, nil
}

func (s *clientChatService) ensureSession(ctx context.Context, sessionID string) (string, error) {
	if sessionID != "" {
		return sessionID, nil
	}

	created, err := s.backend.CreateSession(ctx)
	if err != nil {
		return "", classifyAdapterError(err)
	}
	return created.SessionID, nil
}

// drive pulls the raw stream through the decoder and applies every event.
// claimedID is the id the in-flight slot was claimed under and stays the
// foreground gate even after a session id was created mid-run; sid is the
// effective session id used for labelling.
func (s *clientChatService) drive(ctx context.Context, claimedID, sid string, body io.Reader, machine *run.Machine) (*models.ChatResponse, error) {
	dec := stream.NewDecoder()
	watchdog := run.NewWatchdog()
	defer watchdog.Stop()

	var final *models.ChatResponse
	buf := make([]byte, 4<<10)

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			for _, frame := range dec.Feed(buf[:n]) {
				done, err := s.apply(ctx, claimedID, sid, machine, watchdog, stream.DecodeEvent(frame), &final)
				if err != nil {
					return nil, err
				}
				if done {
					return s.resolve(final)
				}
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) || final != nil {
				return s.resolve(final)
			}
			return nil, &TransportError{Err: readErr}
		}
	}
}

// resolve applies the lenient-completion policy: a captured Final resolves
// the run even without a Done marker; otherwise the stream was incomplete.
func (s *clientChatService) resolve(final *models.ChatResponse) (*models.ChatResponse, error) {
	if final == nil {
		return nil, &ProtocolError{Err: stream.ErrStreamIncomplete}
	}
	return final, nil
}

func (s *clientChatService) apply(ctx context.Context, claimedID, sid string, machine *run.Machine, watchdog *run.Watchdog, ev stream.Event, final **models.ChatResponse) (done bool, err error) {
	switch ev.Kind {
	case stream.KindStage:
		next, changed := machine.ApplyStage(ev.Stage.Code)
		if !changed {
			return false, nil
		}
		if next == run.StateWaiting {
			watchdog.Start(ctx, s.watchdogTick, s.noticeAfter,
				func(elapsed time.Duration) {
					if sink := s.foregroundSink(claimedID); sink != nil {
						sink.OnElapsed(sid, elapsed)
					}
				},
				func() {
					if sink := s.foregroundSink(claimedID); sink != nil {
						sink.OnTrace(sid, "агент всё ещё работает, ожидание продолжается")
					}
				})
		} else {
			watchdog.Stop()
		}
		s.emitState(claimedID, sid, next, ev.Stage.Detail)

	case stream.KindTrace:
		if sink := s.foregroundSink(claimedID); sink != nil {
			sink.OnTrace(sid, ev.Trace.Message)
		}

	case stream.KindDebug:
		if sink := s.foregroundSink(claimedID); sink != nil {
			sink.OnDebug(sid, ev.Debug.Item)
		}

	case stream.KindTool:
		if sink := s.foregroundSink(claimedID); sink != nil {
			sink.OnToolEvent(sid, ev.Tool.Item)
		}

	case stream.KindHeartbeat:
		if count, note := machine.Heartbeat(); note {
			if sink := s.foregroundSink(claimedID); sink != nil {
				sink.OnTrace(sid, fmt.Sprintf("связь с агентом активна (heartbeat %d)", count))
			}
		}

	case stream.KindError:
		return false, &ServerError{StatusCode: ev.Err.StatusCode, Detail: ev.Err.Detail}

	case stream.KindFinal:
		resp := ev.Final.Response
		*final = &resp

	case stream.KindDone:
		return true, nil

	case stream.KindUnknown:
		// Tolerated for forward compatibility.
	}

	return false, nil
}

// finish applies the run's durable effects. Accounting and the session list
// refresh reflect backend state and run regardless of which session is
// foreground; only the reconciliation trace line is gated.
func (s *clientChatService) finish(ctx context.Context, claimedID, sid string, final models.ChatResponse) {
	s.usage.MergeLastRun(final.TokenUsage)
	s.usage.MergeCumulative(final.SessionTokenTotals, final.GlobalTokenTotals)

	if _, err := s.sessions.List(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("session list refresh after run failed")
	}

	if warning := s.attachments.Reconcile(final.MissingAttachmentIDs); warning != nil {
		s.logger.Warn().Strs("missing_ids", warning.MissingIDs).Msg("attachments were not resolved by backend")
		if sink := s.foregroundSink(claimedID); sink != nil {
			sink.OnTrace(sid, warning.String())
		}
	}
	s.attachments.Clear()
}

func (s *clientChatService) emitState(claimedID, sid string, state run.State, detail string) {
	if sink := s.foregroundSink(claimedID); sink != nil {
		sink.OnStateChange(sid, state, detail)
	}
}

// foregroundSink returns the sink only when the run's originating session is
// still the foreground one; otherwise nil, so UI-facing effects are dropped
// while the durable ones proceed.
func (s *clientChatService) foregroundSink(claimedID string) RunSink {
	s.mu.RLock()
	sink := s.sink
	s.mu.RUnlock()

	if sink == nil || !s.registry.IsForeground(claimedID) {
		return nil
	}
	return sink
}

func classifyAdapterError(err error) error {
	var statusErr *adapter.StatusError
	if errors.As(err, &statusErr) {
		return &ServerError{StatusCode: statusErr.Status, Detail: statusErr.Detail}
	}
	return &TransportError{Err: err}
}
