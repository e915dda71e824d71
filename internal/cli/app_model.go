package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/alexanderramin/gardenhelper/internal/cli/formatter"
	"github.com/alexanderramin/gardenhelper/internal/domain"
	"github.com/alexanderramin/gardenhelper/internal/garden"
)

// scheduleFunc delivers msg after d. Production uses tea.Tick; tests pass a
// fake clock.
type scheduleFunc func(d time.Duration, msg tea.Msg) tea.Cmd

func tickSchedule(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// intentMsg feeds a fired controller timer back into Update.
type intentMsg struct {
	intent garden.Intent
}

// historyLoadedMsg carries saved results for the progress screen.
type historyLoadedMsg struct {
	results []*domain.SoilTestResult
	err     error
}

// appModel is the root bubbletea Model. It renders controller snapshots and
// turns keys into intents; all session state lives in the controller.
type appModel struct {
	app      *App
	ctx      context.Context
	ctrl     *garden.Controller
	state    garden.State
	schedule scheduleFunc
	theme    formatter.Theme

	initCmd tea.Cmd
	setup   *setupForm
	history []*domain.SoilTestResult
	lesson  string
	cursor  int

	width    int
	height   int
	quitting bool
}

func newAppModel(ctx context.Context, app *App, ctrl *garden.Controller, start domain.Screen, schedule scheduleFunc) appModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if schedule == nil {
		schedule = tickSchedule
	}
	m := appModel{
		app:      app,
		ctx:      ctx,
		ctrl:     ctrl,
		schedule: schedule,
	}
	cmds := []tea.Cmd{m.apply(ctrl.Start(m.ctx))}
	// A returning gardener skips onboarding.
	if start == domain.ScreenWelcome && m.state.Profile.IsSetUp() {
		start = domain.ScreenDashboard
	}
	if start != "" && start != m.state.Screen {
		cmds = append(cmds, m.dispatch(garden.GoToScreen{Screen: start}))
	}
	m.initCmd = tea.Batch(cmds...)
	return m
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.initCmd
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.setup != nil {
			m.setup.form = m.setup.form.WithWidth(min(msg.Width, 72))
		}
		m.renderLesson()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case intentMsg:
		return m, m.dispatch(msg.intent)

	case setupSubmitMsg:
		return m, m.submitSetup(msg)

	case historyLoadedMsg:
		if msg.err != nil {
			m.app.logger().Warn("load history", zap.Error(msg.err))
			return m, nil
		}
		m.history = msg.results
		return m, nil
	}

	if m.setupActive() {
		return m, m.setup.Update(msg)
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.Modal != garden.ModalNone {
		if key.Matches(msg, keys.Back) {
			return m, m.dispatch(garden.CloseModal{})
		}
		return m, m.handleButtons(msg)
	}

	// The setup form owns the keyboard apart from esc.
	if m.setupActive() {
		if key.Matches(msg, keys.Back) {
			return m, m.dispatch(garden.GoToScreen{Screen: domain.ScreenWelcome})
		}
		return m, m.setup.Update(msg)
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		if back, ok := backTarget(m.state.Screen); ok {
			return m, m.dispatch(garden.GoToScreen{Screen: back})
		}
		return m, nil

	case key.Matches(msg, keys.Help):
		return m, m.dispatch(garden.OpenModal{Modal: garden.ModalHelp})

	case key.Matches(msg, keys.Voice):
		return m, m.dispatch(garden.OpenModal{Modal: garden.ModalVoice})

	case key.Matches(msg, keys.Contrast):
		return m, m.dispatch(garden.SetPreference{Pref: domain.PrefHighContrast, On: !m.state.Flags.HighContrast})

	case key.Matches(msg, keys.LargeText):
		return m, m.dispatch(garden.SetPreference{Pref: domain.PrefLargeText, On: !m.state.Flags.LargeText})

	case m.state.Screen == domain.ScreenTesting && key.Matches(msg, keys.StepBack):
		return m, m.dispatch(garden.GoToStep{Step: m.state.Step - 1})

	case m.state.Screen == domain.ScreenTesting && key.Matches(msg, keys.StepAhead):
		return m, m.dispatch(garden.GoToStep{Step: m.state.Step + 1})
	}

	if screen, ok := navKeys[msg.String()]; ok && m.state.Screen != domain.ScreenWelcome {
		return m, m.dispatch(garden.GoToScreen{Screen: screen})
	}
	return m, m.handleButtons(msg)
}

// handleButtons moves focus or activates the focused button.
func (m *appModel) handleButtons(msg tea.KeyMsg) tea.Cmd {
	btns := buttonsFor(m.state)
	if len(btns) == 0 {
		return nil
	}
	switch {
	case key.Matches(msg, keys.Next):
		m.cursor = (m.cursor + 1) % len(btns)
	case key.Matches(msg, keys.Prev):
		m.cursor = (m.cursor - 1 + len(btns)) % len(btns)
	case key.Matches(msg, keys.Activate):
		if in := btns[min(m.cursor, len(btns)-1)].intent; in != nil {
			return m.dispatch(in)
		}
	}
	return nil
}

// backTarget is where esc leads from a screen.
func backTarget(s domain.Screen) (domain.Screen, bool) {
	switch {
	case s == domain.ScreenSetup:
		return domain.ScreenWelcome, true
	case s.InNav() && s != domain.ScreenDashboard:
		return domain.ScreenDashboard, true
	}
	return "", false
}

func (m *appModel) setupActive() bool {
	return m.state.Screen == domain.ScreenSetup && m.setup != nil && m.state.Modal == garden.ModalNone
}

// ── controller plumbing ──────────────────────────────────────────────────────

func (m *appModel) dispatch(in garden.Intent) tea.Cmd {
	return m.apply(m.ctrl.Dispatch(m.ctx, in))
}

// apply adopts a controller result: new snapshot, theme, and one scheduled
// message per timer.
func (m *appModel) apply(res garden.Result) tea.Cmd {
	prev := m.state
	m.state = res.State
	m.theme = formatter.NewTheme(m.state.Flags.HighContrast, m.state.Flags.LargeText)

	cmds := make([]tea.Cmd, 0, len(res.Timers)+1)
	for _, t := range res.Timers {
		cmds = append(cmds, m.schedule(t.After, intentMsg{intent: t.Intent}))
	}

	if prev.Screen != m.state.Screen || prev.Modal != m.state.Modal {
		m.cursor = 0
	}
	if prev.Screen != m.state.Screen {
		cmds = append(cmds, m.enterScreen())
	}
	if prev.Flags != m.state.Flags {
		m.renderLesson()
	}
	if n := len(buttonsFor(m.state)); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
	return tea.Batch(cmds...)
}

// enterScreen prepares screen-local data when a screen becomes visible.
func (m *appModel) enterScreen() tea.Cmd {
	switch m.state.Screen {
	case domain.ScreenSetup:
		m.setup = newSetupForm(m.state.Profile, m.theme)
		if m.width > 0 {
			m.setup.form = m.setup.form.WithWidth(min(m.width, 72))
		}
		return m.setup.Init()
	case domain.ScreenProgress:
		return m.loadHistory()
	case domain.ScreenLearning:
		m.renderLesson()
	}
	m.setup = nil
	return nil
}

func (m *appModel) submitSetup(msg setupSubmitMsg) tea.Cmd {
	res := m.ctrl.Dispatch(m.ctx, garden.CompleteSetup{
		Name:        msg.Name,
		Location:    msg.Location,
		Preferences: msg.Preferences,
	})
	cmd := m.apply(res)
	if res.Err == nil || m.state.Screen != domain.ScreenSetup {
		return cmd
	}
	// Keep what was typed so the gardener only fixes the missing field.
	draft := m.state.Profile
	draft.Name = msg.Name
	draft.Location = msg.Location
	draft.Preferences = msg.Preferences
	m.setup = newSetupForm(draft, m.theme)
	return tea.Batch(cmd, m.setup.Init())
}

func (m *appModel) loadHistory() tea.Cmd {
	results := m.app.Results
	if results == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		list, err := results.ListRecent(ctx, 5)
		return historyLoadedMsg{results: list, err: err}
	}
}

func (m *appModel) renderLesson() {
	if m.state.Screen != domain.ScreenLearning {
		return
	}
	width := m.width - 8
	if width <= 0 {
		width = 72
	}
	m.lesson = formatter.RenderMarkdown(domain.FeaturedLesson, width, m.state.Flags.HighContrast)
}

// ── rendering ────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}

	switch m.state.Modal {
	case garden.ModalHelp, garden.ModalVoice:
		sections = append(sections, m.viewModal())
	default:
		sections = append(sections, m.viewScreen())
	}

	if m.state.HasToast() {
		sections = append(sections, "", m.theme.Toast(m.state.Toast.Message))
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen renderer leaves no stale lines.
	if m.height > 0 {
		if lines := strings.Count(result, "\n") + 1; lines < m.height {
			result += strings.Repeat("\n", m.height-lines)
		}
	}
	return result
}

func (m appModel) viewScreen() string {
	switch m.state.Screen {
	case domain.ScreenWelcome:
		return m.viewWelcome()
	case domain.ScreenSetup:
		return m.viewSetup()
	case domain.ScreenDashboard:
		return m.viewDashboard()
	case domain.ScreenTesting:
		return m.viewTesting()
	case domain.ScreenProgress:
		return m.viewProgress()
	case domain.ScreenLearning:
		return m.viewLearning()
	case domain.ScreenCommunity:
		return m.viewCommunity()
	}
	return ""
}

func (m appModel) renderHeader() string {
	title := m.theme.Title("🌱 Garden Helper")
	if m.state.Profile.IsSetUp() {
		title += "  " + m.theme.Dim("Hi, "+m.state.Profile.DisplayName()+"!")
	}

	var tabs []string
	if m.state.Screen.InNav() {
		for _, s := range domain.NavScreens {
			label := "[" + navKeyFor(s) + "] " + s.Title()
			if m.state.IsActive(s) {
				tabs = append(tabs, m.theme.Button(label, true))
			} else {
				tabs = append(tabs, m.theme.Dim(label))
			}
		}
	}

	sep := m.theme.Dim(strings.Repeat("─", max(m.width, 20)))
	if len(tabs) == 0 {
		return title + "\n" + sep
	}
	return title + "\n" + strings.Join(tabs, "  ") + "\n" + sep
}

func (m appModel) renderStatusBar() string {
	var hints []string
	for _, b := range keys.ShortHelp(m.state.Screen) {
		hints = append(hints, b.Help().Key+": "+b.Help().Desc)
	}
	if m.state.Modal != garden.ModalNone {
		hints = []string{"↑↓: move", "enter: select", "esc: close"}
	}
	sep := m.theme.Dim(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + m.theme.Dim(strings.Join(hints, "  "))
}

// renderButtons draws btns stacked, highlighting the focused one. offset is
// the index of btns[0] among all buttons on the screen.
func (m appModel) renderButtons(btns []button, offset int) string {
	rows := make([]string, len(btns))
	for i, b := range btns {
		rows[i] = m.theme.Button(b.label, offset+i == m.cursor)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderButtonRow draws btns side by side.
func (m appModel) renderButtonRow(btns []button, offset int) string {
	cells := make([]string, len(btns))
	for i, b := range btns {
		cells[i] = m.theme.Button(b.label, offset+i == m.cursor)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m appModel) now() time.Time {
	return m.app.now()
}
