// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/officetool-client/internal/registry"
	"github.com/MKhiriev/officetool-client/internal/run"
	"github.com/MKhiriev/officetool-client/internal/service"
	"github.com/MKhiriev/officetool-client/internal/store"
	"github.com/MKhiriev/officetool-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type page int

const (
	pageChat page = iota
	pageSessions
	pageStats
	pageSettings
)

const (
	settingsFieldModel = iota
	settingsFieldMaxOutput
	settingsFieldMaxTurns
	settingsFieldTools
	settingsFieldExecMode
	settingsFieldDebugRaw
	settingsFieldStyle
	settingsFieldCount
)

const statusTTL = 4 * time.Second

// largeMessageTokens is the estimate past which the compose box warns that
// the message is unusually big before sending it anyway.
const largeMessageTokens = 16000

// mainLoopModel is the single bubbletea model of the client. It routes
// between the chat, sessions, stats and settings pages and renders run
// progress delivered through programSink.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	registry *registry.Registry
	state    store.StateRepository

	health    models.HealthResponse
	settings  models.ChatSettings
	estimator *service.TokenEstimator

	page page

	// chat page
	input             textarea.Model
	vp                viewport.Model
	spin              spinner.Model
	lines             []string
	sending           bool
	pendingRunSession string
	runState          run.State
	elapsed           time.Duration
	lastReply         string
	sessionID         string
	turnCount         int

	attachInput textinput.Model
	attaching   bool

	// sessions page
	sessions   []models.SessionListItem
	sessionIdx int

	// stats page
	stats      models.TokenStatsResponse
	statsReady bool

	// settings page
	fields     []textinput.Model
	fieldFocus int
	formTools  bool
	formExec   models.ExecutionMode
	formDebug  bool
	formStyle  models.ResponseStyle

	status string
	errMsg string

	width  int
	height int
	ready  bool

	quitByUser bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, reg *registry.Registry, state store.StateRepository, health models.HealthResponse, startSessionID string, settings models.ChatSettings) mainLoopModel {
	input := textarea.New()
	input.Placeholder = "Введите сообщение..."
	input.Prompt = "> "
	input.SetHeight(3)
	input.ShowLineNumbers = false
	input.Focus()

	attach := textinput.New()
	attach.Placeholder = "путь к файлу"
	attach.Prompt = "файл: "

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	model := settings.Model
	if model == "" {
		model = health.ModelDefault
	}

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		registry:    reg,
		state:       state,
		health:      health,
		settings:    settings,
		estimator:   service.NewTokenEstimator(model),
		input:       input,
		attachInput: attach,
		spin:        spin,
		vp:          viewport.New(80, 20),
		sessionID:   startSessionID,
		runState:    run.StateIdle,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, m.spin.Tick, m.cmdLoadSessions()}
	if m.sessionID != "" {
		cmds = append(cmds, m.cmdOpenSession(m.sessionID))
	}
	return tea.Batch(cmds...)
}

// ── commands ──

func (m mainLoopModel) cmdLoadSessions() tea.Cmd {
	return func() tea.Msg {
		items, err := m.services.SessionService.List(m.ctx)
		return sessionsLoadedMsg{items: items, err: err}
	}
}

func (m mainLoopModel) cmdOpenSession(sessionID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.registry.SetForeground(m.ctx, sessionID); err != nil {
			return sessionOpenedMsg{err: err}
		}
		m.services.UsageService.ResetSessionScope()
		detail, err := m.services.SessionService.Detail(m.ctx, sessionID, 0)
		return sessionOpenedMsg{detail: detail, err: err}
	}
}

func (m mainLoopModel) cmdNewSession() tea.Cmd {
	return func() tea.Msg {
		sessionID, err := m.services.SessionService.Create(m.ctx)
		if err != nil {
			return sessionCreatedMsg{err: err}
		}
		if err := m.registry.SetForeground(m.ctx, sessionID); err != nil {
			return sessionCreatedMsg{err: err}
		}
		m.services.UsageService.ResetSessionScope()
		return sessionCreatedMsg{sessionID: sessionID}
	}
}

func (m mainLoopModel) cmdDeleteSession(sessionID string) tea.Cmd {
	return func() tea.Msg {
		err := m.services.SessionService.Delete(m.ctx, sessionID)
		return sessionDeletedMsg{sessionID: sessionID, err: err}
	}
}

func (m mainLoopModel) cmdLoadStats() tea.Cmd {
	return func() tea.Msg {
		stats, err := m.services.UsageService.Stats(m.ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m mainLoopModel) cmdClearStats() tea.Cmd {
	return func() tea.Msg {
		return statsClearedMsg{err: m.services.UsageService.ClearGlobal(m.ctx)}
	}
}

func (m mainLoopModel) cmdUpload(path string) tea.Cmd {
	return func() tea.Msg {
		ref, err := m.services.AttachmentService.Add(m.ctx, path)
		return uploadDoneMsg{ref: ref, err: err}
	}
}

func (m mainLoopModel) cmdSend(sessionID, message string, attachmentIDs []string, settings models.ChatSettings) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.services.ChatService.Run(m.ctx, sessionID, message, attachmentIDs, settings)
		return runDoneMsg{sessionID: sessionID, resp: resp, err: err}
	}
}

func (m mainLoopModel) cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return clearStatusMsg{}
		}
		return copiedMsg{}
	}
}

func (m mainLoopModel) cmdSaveSettings(settings models.ChatSettings) tea.Cmd {
	return func() tea.Msg {
		return settingsSavedMsg{err: m.state.SaveChatSettings(m.ctx, settings)}
	}
}

func cmdClearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// ── update ──

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.vp.Width = msg.Width - 4
		vpHeight := msg.Height - m.input.Height() - 8
		if vpHeight < 3 {
			vpHeight = 3
		}
		m.vp.Height = vpHeight
		m.input.SetWidth(msg.Width - 4)
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.handleEvent(msg)
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.attaching {
		return m.handleAttachKey(msg)
	}

	switch m.page {
	case pageChat:
		return m.handleChatKey(msg)
	case pageSessions:
		return m.handleSessionsKey(msg)
	case pageStats:
		return m.handleStatsKey(msg)
	case pageSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m mainLoopModel) handleAttachKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.attaching = false
		m.attachInput.Reset()
		m.input.Focus()
		return m, nil
	case key.Matches(msg, keys.enter):
		path := strings.TrimSpace(m.attachInput.Value())
		m.attaching = false
		m.attachInput.Reset()
		m.input.Focus()
		if path == "" {
			return m, nil
		}
		m.status = "Загрузка файла..."
		return m, m.cmdUpload(path)
	}

	var cmd tea.Cmd
	m.attachInput, cmd = m.attachInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.sessions):
		m.page = pageSessions
		return m, m.cmdLoadSessions()
	case key.Matches(msg, keys.stats):
		m.page = pageStats
		m.status = "Загрузка статистики..."
		return m, m.cmdLoadStats()
	case key.Matches(msg, keys.settings):
		m.enterSettings()
		return m, nil
	case key.Matches(msg, keys.newChat):
		return m, m.cmdNewSession()
	case key.Matches(msg, keys.attach):
		if m.sending {
			return m, nil
		}
		m.attaching = true
		m.input.Blur()
		m.attachInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.copy):
		if m.lastReply == "" {
			return m, nil
		}
		return m, m.cmdCopy(m.lastReply)
	case msg.String() == "ctrl+j":
		m.input.InsertString("\n")
		return m, nil
	case msg.String() == "pgup":
		m.vp.HalfViewUp()
		return m, nil
	case msg.String() == "pgdown":
		m.vp.HalfViewDown()
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.submitMessage()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m mainLoopModel) submitMessage() (tea.Model, tea.Cmd) {
	message := strings.TrimSpace(m.input.Value())
	if message == "" {
		return m, nil
	}
	if m.sending {
		m.status = "Дождитесь завершения текущего запроса"
		return m, cmdClearStatusAfter()
	}

	pending := m.services.AttachmentService.Pending()
	ids := m.services.AttachmentService.PendingIDs()

	(&m).appendLine(userStyle.Render("Вы: ") + message)
	for _, ref := range pending {
		(&m).appendLine(traceStyle.Render(fmt.Sprintf("  вложение: %s", ref.Name)))
	}

	if estimate := m.estimator.Estimate(message); estimate > largeMessageTokens {
		(&m).appendLine(statusStyle.Render(fmt.Sprintf(
			"  предупреждение: сообщение очень большое (≈ %d токенов)", estimate)))
	}

	m.input.Reset()
	m.sending = true
	m.pendingRunSession = m.sessionID
	m.runState = run.StatePreparing
	m.elapsed = 0
	m.errMsg = ""
	m.status = ""

	return m, tea.Batch(m.cmdSend(m.sessionID, message, ids, m.settings), m.spin.Tick)
}

func (m mainLoopModel) handleSessionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.page = pageChat
		return m, nil
	case key.Matches(msg, keys.up):
		if m.sessionIdx > 0 {
			m.sessionIdx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.sessionIdx < len(m.sessions)-1 {
			m.sessionIdx++
		}
		return m, nil
	case msg.String() == "n":
		return m, m.cmdNewSession()
	case key.Matches(msg, keys.delete):
		if len(m.sessions) == 0 {
			return m, nil
		}
		return m, m.cmdDeleteSession(m.sessions[m.sessionIdx].SessionID)
	case key.Matches(msg, keys.enter):
		if len(m.sessions) == 0 {
			return m, nil
		}
		return m, m.cmdOpenSession(m.sessions[m.sessionIdx].SessionID)
	}
	return m, nil
}

func (m mainLoopModel) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.page = pageChat
		return m, nil
	case key.Matches(msg, keys.clear):
		m.status = "Сброс статистики..."
		return m, m.cmdClearStats()
	}
	return m, nil
}

// ── settings form ──

func (m *mainLoopModel) enterSettings() {
	fields := make([]textinput.Model, 3)
	for i := range fields {
		fields[i] = textinput.New()
		fields[i].Prompt = ""
		fields[i].CharLimit = 64
	}
	fields[settingsFieldModel].SetValue(m.settings.Model)
	fields[settingsFieldModel].Placeholder = m.health.ModelDefault
	fields[settingsFieldMaxOutput].SetValue(strconv.Itoa(m.settings.MaxOutputTokens))
	fields[settingsFieldMaxTurns].SetValue(strconv.Itoa(m.settings.MaxContextTurns))

	m.fields = fields
	m.fieldFocus = settingsFieldModel
	m.fields[m.fieldFocus].Focus()
	m.formTools = m.settings.EnableTools
	m.formExec = m.settings.ExecutionMode
	m.formDebug = m.settings.DebugRaw
	m.formStyle = m.settings.ResponseStyle
	if m.formStyle == "" {
		m.formStyle = models.ResponseStyleNormal
	}
	m.input.Blur()
	m.page = pageSettings
}

func (m *mainLoopModel) moveSettingsFocus(delta int) {
	if m.fieldFocus < len(m.fields) {
		m.fields[m.fieldFocus].Blur()
	}
	m.fieldFocus = (m.fieldFocus + delta + settingsFieldCount) % settingsFieldCount
	if m.fieldFocus < len(m.fields) {
		m.fields[m.fieldFocus].Focus()
	}
}

func (m mainLoopModel) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.page = pageChat
		m.input.Focus()
		m.status = "Настройки не изменены"
		return m, cmdClearStatusAfter()
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.down):
		(&m).moveSettingsFocus(1)
		return m, nil
	case key.Matches(msg, keys.backtab), key.Matches(msg, keys.up):
		(&m).moveSettingsFocus(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		return m.applySettings()
	case msg.String() == " " || msg.String() == "left" || msg.String() == "right":
		if m.fieldFocus < len(m.fields) && msg.String() == " " {
			break
		}
		(&m).toggleSettingsField()
		return m, nil
	}

	if m.fieldFocus < len(m.fields) {
		var cmd tea.Cmd
		m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *mainLoopModel) toggleSettingsField() {
	switch m.fieldFocus {
	case settingsFieldTools:
		m.formTools = !m.formTools
	case settingsFieldExecMode:
		if !m.health.DockerAvailable {
			m.status = "Режим docker недоступен: " + m.health.DockerMessage
			return
		}
		if m.formExec == models.ExecutionModeDocker {
			m.formExec = models.ExecutionModeHost
		} else {
			m.formExec = models.ExecutionModeDocker
		}
	case settingsFieldDebugRaw:
		m.formDebug = !m.formDebug
	case settingsFieldStyle:
		switch m.formStyle {
		case models.ResponseStyleShort:
			m.formStyle = models.ResponseStyleNormal
		case models.ResponseStyleNormal:
			m.formStyle = models.ResponseStyleLong
		default:
			m.formStyle = models.ResponseStyleShort
		}
	}
}

func (m mainLoopModel) applySettings() (tea.Model, tea.Cmd) {
	settings := m.settings
	settings.Model = strings.TrimSpace(m.fields[settingsFieldModel].Value())
	settings.MaxOutputTokens = clampInt(parseIntOr(m.fields[settingsFieldMaxOutput].Value(), settings.MaxOutputTokens), 120, 128000)
	settings.MaxContextTurns = clampInt(parseIntOr(m.fields[settingsFieldMaxTurns].Value(), settings.MaxContextTurns), 2, 2000)
	settings.EnableTools = m.formTools
	settings.ExecutionMode = m.formExec
	settings.DebugRaw = m.formDebug
	settings.ResponseStyle = m.formStyle

	if settings.Model != m.settings.Model {
		model := settings.Model
		if model == "" {
			model = m.health.ModelDefault
		}
		m.estimator = service.NewTokenEstimator(model)
	}
	m.settings = settings
	m.page = pageChat
	m.input.Focus()
	m.status = "Настройки сохранены"
	return m, tea.Batch(m.cmdSaveSettings(settings), cmdClearStatusAfter())
}

func parseIntOr(v string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ── service events ──

func (m mainLoopModel) handleEvent(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runStateMsg:
		m.runState = msg.state
		if msg.state == run.StateError && msg.detail != "" {
			(&m).appendLine(errorStyle.Render("Ошибка: " + msg.detail))
		}
		return m, nil

	case runTraceMsg:
		(&m).appendLine(traceStyle.Render("  · " + msg.line))
		return m, nil

	case runToolMsg:
		line := fmt.Sprintf("  инструмент %s: %s", msg.item.Name, fitText(msg.item.OutputPreview, 120))
		(&m).appendLine(traceStyle.Render(line))
		return m, nil

	case runDebugMsg:
		line := fmt.Sprintf("  [debug %d/%s] %s", msg.item.Step, msg.item.Stage, msg.item.Title)
		(&m).appendLine(traceStyle.Render(line))
		return m, nil

	case runElapsedMsg:
		m.elapsed = msg.elapsed
		return m, nil

	case runDoneMsg:
		return m.handleRunDone(msg)

	case sessionsLoadedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось загрузить список сессий: " + msg.err.Error()
			return m, nil
		}
		m.sessions = msg.items
		if m.sessionIdx >= len(m.sessions) {
			m.sessionIdx = 0
		}
		return m, nil

	case sessionOpenedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось открыть сессию: " + msg.err.Error()
			return m, nil
		}
		m.sessionID = msg.detail.SessionID
		m.turnCount = msg.detail.TurnCount
		m.lines = nil
		m.lastReply = ""
		for _, turn := range msg.detail.Turns {
			switch turn.Role {
			case "user":
				(&m).appendLine(userStyle.Render("Вы: ") + turn.Text)
			default:
				(&m).appendLine("Ассистент: " + turn.Text)
				m.lastReply = turn.Text
			}
		}
		m.page = pageChat
		m.input.Focus()
		m.errMsg = ""
		return m, nil

	case sessionCreatedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось создать сессию: " + msg.err.Error()
			return m, nil
		}
		m.sessionID = msg.sessionID
		m.turnCount = 0
		m.lines = nil
		m.lastReply = ""
		m.page = pageChat
		m.input.Focus()
		m.status = "Новая сессия создана"
		m.errMsg = ""
		return m, tea.Batch(m.cmdLoadSessions(), cmdClearStatusAfter())

	case sessionDeletedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось удалить сессию: " + msg.err.Error()
			return m, nil
		}
		if msg.sessionID == m.sessionID {
			m.sessionID = ""
			m.turnCount = 0
			m.lines = nil
			m.lastReply = ""
			m.refreshViewport()
		}
		m.status = "Сессия удалена"
		return m, tea.Batch(m.cmdLoadSessions(), cmdClearStatusAfter())

	case statsLoadedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось загрузить статистику: " + msg.err.Error()
			return m, nil
		}
		m.stats = msg.stats
		m.statsReady = true
		m.status = ""
		return m, nil

	case statsClearedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось сбросить статистику: " + msg.err.Error()
			return m, nil
		}
		m.status = "Статистика сброшена"
		return m, tea.Batch(m.cmdLoadStats(), cmdClearStatusAfter())

	case uploadDoneMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось загрузить файл: " + msg.err.Error()
			m.status = ""
			return m, nil
		}
		m.status = fmt.Sprintf("Файл загружен: %s (%d байт)", msg.ref.Name, msg.ref.Size)
		return m, cmdClearStatusAfter()

	case settingsSavedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось сохранить настройки: " + msg.err.Error()
		}
		return m, nil

	case copiedMsg:
		m.status = "Ответ скопирован в буфер обмена"
		return m, cmdClearStatusAfter()

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) handleRunDone(msg runDoneMsg) (tea.Model, tea.Cmd) {
	if msg.sessionID == m.pendingRunSession {
		m.sending = false
		m.elapsed = 0
	}

	if msg.err != nil {
		m.runState = run.StateError
		m.errMsg = msg.err.Error()
		return m, nil
	}

	// A run finished for a session the user has navigated away from.
	// Durable effects are already applied by the orchestrator; only the
	// session list needs a refresh here.
	if !m.registry.IsForeground(msg.sessionID) {
		m.status = "Фоновая сессия завершила выполнение"
		return m, tea.Batch(m.cmdLoadSessions(), cmdClearStatusAfter())
	}

	resp := msg.resp
	m.runState = run.StateDone
	m.turnCount = resp.TurnCount
	m.lastReply = resp.Text

	var cmds []tea.Cmd
	if m.sessionID == "" && resp.SessionID != "" {
		m.sessionID = resp.SessionID
		sessionID := resp.SessionID
		cmds = append(cmds, func() tea.Msg {
			// Persist the implicitly created session as the one to restore
			// on the next start.
			_ = m.registry.SetForeground(m.ctx, sessionID)
			return nil
		})
	}

	if len(resp.ExecutionPlan) > 0 {
		(&m).appendLine(traceStyle.Render("  план выполнения:"))
		for _, step := range resp.ExecutionPlan {
			(&m).appendLine(traceStyle.Render("    - " + step))
		}
	}

	(&m).appendLine("Ассистент: " + resp.Text)

	if resp.QueueWaitMS > 0 {
		(&m).appendLine(traceStyle.Render(fmt.Sprintf(
			"  ожидание в очереди: %d мс", resp.QueueWaitMS)))
	}

	usage := resp.TokenUsage
	(&m).appendLine(traceStyle.Render(fmt.Sprintf(
		"  токены: %d вход / %d выход / %d всего, %s",
		usage.InputTokens, usage.OutputTokens, usage.TotalTokens,
		formatCost(usage.EstimatedCostUSD, usage.PricingKnown))))

	if resp.Summarized {
		(&m).appendLine(statusStyle.Render("  история сессии сжата, старые ходы заменены кратким изложением"))
	}
	if len(resp.MissingAttachmentIDs) > 0 {
		(&m).appendLine(errorStyle.Render(fmt.Sprintf(
			"  часть вложений не найдена на сервере: %s", strings.Join(resp.MissingAttachmentIDs, ", "))))
	}
	(&m).appendLine("")

	return m, tea.Batch(cmds...)
}

// ── view ──

func (m *mainLoopModel) appendLine(line string) {
	m.lines = append(m.lines, line)
	m.refreshViewport()
}

func (m *mainLoopModel) refreshViewport() {
	m.vp.SetContent(strings.Join(m.lines, "\n"))
	m.vp.GotoBottom()
}

func (m mainLoopModel) View() string {
	if !m.ready {
		return "Загрузка..."
	}

	switch m.page {
	case pageSessions:
		return m.viewSessions()
	case pageStats:
		return m.viewStats()
	case pageSettings:
		return m.viewSettings()
	default:
		return m.viewChat()
	}
}

func (m mainLoopModel) viewChat() string {
	var b strings.Builder

	title := "Новый диалог"
	if m.sessionID != "" {
		title = fmt.Sprintf("Сессия %s (%d ходов)", fitText(m.sessionID, 12), m.turnCount)
	}
	b.WriteString(viewTitle("Officetool · " + title))
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if m.sending {
		b.WriteString(fmt.Sprintf("%s %s", m.spin.View(), statusStyle.Render(m.runStateLabel())))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + fitText(m.errMsg, 160)))
		b.WriteString("\n")
	}

	if m.attaching {
		b.WriteString(m.attachInput.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: загрузить · esc: отмена"))
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	footer := fmt.Sprintf("≈ %d токенов", m.estimator.Estimate(m.input.Value()))
	if pending := m.services.AttachmentService.Pending(); len(pending) > 0 {
		names := make([]string, 0, len(pending))
		for _, ref := range pending {
			names = append(names, ref.Name)
		}
		footer += " · вложения: " + fitText(strings.Join(names, ", "), 60)
	}
	b.WriteString(helpStyle.Render(footer))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: отправить · ctrl+j: новая строка · ctrl+a: вложение · ctrl+y: копировать ответ · ctrl+n: новая сессия"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("ctrl+l: сессии · ctrl+t: статистика · ctrl+o: настройки · ctrl+c: выход"))

	return b.String()
}

func (m mainLoopModel) runStateLabel() string {
	switch m.runState {
	case run.StatePreparing:
		return "подготовка запроса..."
	case run.StateSent:
		return "запрос отправлен..."
	case run.StateWaiting:
		if m.elapsed > 0 {
			return fmt.Sprintf("агент работает... (%s)", m.elapsed.Round(time.Second))
		}
		return "агент работает..."
	case run.StateParsing:
		return "обработка результата..."
	default:
		return "выполняется..."
	}
}

func (m mainLoopModel) viewSessions() string {
	var b strings.Builder
	if len(m.sessions) == 0 {
		b.WriteString("Сохранённых сессий нет")
	}
	for i, item := range m.sessions {
		cursor := "  "
		if i == m.sessionIdx {
			cursor = "> "
		}
		marker := " "
		if item.SessionID == m.sessionID {
			marker = "*"
		}
		title := item.Title
		if title == "" {
			title = fitText(item.Preview, 40)
		}
		b.WriteString(fmt.Sprintf("%s%s %s · %d ходов · %s\n",
			cursor, marker, fitText(title, 48), item.TurnCount, item.UpdatedAt))
	}
	return renderPage(
		titleStyle.Render("Сессии"),
		strings.TrimRight(b.String(), "\n"),
		"enter: открыть · n: новая · d: удалить · esc: назад",
	)
}

func (m mainLoopModel) viewStats() string {
	if !m.statsReady {
		return renderPage(titleStyle.Render("Статистика"), "Загрузка...", "esc: назад")
	}

	var b strings.Builder
	totals := m.stats.Totals
	b.WriteString(fmt.Sprintf("Всего запросов: %d\n", totals.Requests))
	b.WriteString(fmt.Sprintf("Токены: %d вход / %d выход / %d всего\n",
		totals.InputTokens, totals.OutputTokens, totals.TotalTokens))
	b.WriteString(fmt.Sprintf("Оценка стоимости: $%.4f\n", totals.EstimatedCostUSD))

	if len(m.stats.Sessions) > 0 {
		b.WriteString("\nПо сессиям:\n")
		for sessionID, t := range m.stats.Sessions {
			b.WriteString(fmt.Sprintf("  %s · %d запросов · %d токенов · $%.4f\n",
				fitText(sessionID, 12), t.Requests, t.TotalTokens, t.EstimatedCostUSD))
		}
	}

	if len(m.stats.Records) > 0 {
		b.WriteString("\nПоследние запросы:\n")
		for _, rec := range m.stats.Records {
			b.WriteString(fmt.Sprintf("  %s · %s · %d токенов · $%.4f\n",
				rec.At, fitText(rec.Model, 24), rec.TotalTokens, rec.CostUSD))
		}
	}

	return renderPage(
		titleStyle.Render("Статистика"),
		strings.TrimRight(b.String(), "\n"),
		"c: сбросить · esc: назад",
	)
}

func (m mainLoopModel) viewSettings() string {
	onOff := func(v bool) string {
		if v {
			return "вкл"
		}
		return "выкл"
	}
	cursor := func(field int) string {
		if m.fieldFocus == field {
			return "> "
		}
		return "  "
	}

	execMode := string(m.formExec)
	if execMode == "" {
		execMode = m.health.ExecutionModeDefault + " (по умолчанию)"
	}
	if !m.health.DockerAvailable {
		execMode += " · docker недоступен"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%sМодель:            %s\n", cursor(settingsFieldModel), m.fields[settingsFieldModel].View()))
	b.WriteString(fmt.Sprintf("%sМакс. токенов:     %s\n", cursor(settingsFieldMaxOutput), m.fields[settingsFieldMaxOutput].View()))
	b.WriteString(fmt.Sprintf("%sМакс. ходов:       %s\n", cursor(settingsFieldMaxTurns), m.fields[settingsFieldMaxTurns].View()))
	b.WriteString(fmt.Sprintf("%sИнструменты:       %s\n", cursor(settingsFieldTools), onOff(m.formTools)))
	b.WriteString(fmt.Sprintf("%sРежим выполнения:  %s\n", cursor(settingsFieldExecMode), execMode))
	b.WriteString(fmt.Sprintf("%sОтладка (raw):     %s\n", cursor(settingsFieldDebugRaw), onOff(m.formDebug)))
	b.WriteString(fmt.Sprintf("%sСтиль ответа:      %s\n", cursor(settingsFieldStyle), string(m.formStyle)))

	return renderPage(
		titleStyle.Render("Настройки"),
		strings.TrimRight(b.String(), "\n"),
		"tab: следующее поле · ←/→: переключить · enter: сохранить · esc: отмена",
	)
}
