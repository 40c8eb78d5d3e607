package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"stillwave.dev/internal/breath"
	"stillwave.dev/internal/config"
	"stillwave.dev/internal/presence"
	"stillwave.dev/internal/quality"
	"stillwave.dev/internal/scene"
	"stillwave.dev/internal/ui"
)

// historyEvery controls how many ticks pass between fps-history samples.
const historyEvery = 15

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	controller *quality.Controller
	simulator  *presence.Simulator
	fpsHistory *FPSRing
	log        zerolog.Logger
}

// Model is the root Bubble Tea model for Stillwave.
type Model struct {
	width  int
	height int

	cfg           *config.Config
	paused        bool
	showSettings  bool
	reducedMotion bool

	lastFrame     time.Time
	tickCount     int
	presenceCount int

	shared *shared

	// Cached per-frame snapshot
	state breath.State
}

// New creates a new Model around an already-constructed controller.
func New(cfg *config.Config, controller *quality.Controller, reducedMotion bool, log zerolog.Logger) Model {
	return Model{
		cfg:           cfg,
		reducedMotion: reducedMotion,
		presenceCount: cfg.Presence.Baseline,
		shared: &shared{
			controller: controller,
			fpsHistory: NewFPSRing(120),
			log:        log,
		},
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case presence.CountMsg:
		m.presenceCount = msg.Count
		return m, nil
	}

	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// The sample for this frame is recorded before this frame's
	// classification is read, so the effective level never looks ahead.
	if !m.lastFrame.IsZero() && !m.paused {
		deltaMs := float64(now.Sub(m.lastFrame)) / float64(time.Millisecond)
		m.shared.controller.RecordSample(deltaMs, now)
	}
	m.lastFrame = now

	m.tickCount++
	if m.tickCount%historyEvery == 0 {
		if metrics := m.shared.controller.Metrics(); metrics != nil {
			m.shared.fpsHistory.Push(metrics.AvgFPS)
		}
	}

	if !m.paused {
		// Absolute wall-clock seconds: every independent client computes
		// the same state from its own clock, which is the whole
		// synchronization mechanism.
		nowSeconds := float64(now.UnixNano()) / float64(time.Second)
		m.state = breath.ComputePhase(nowSeconds, m.cfg.Breath)
	}

	return m, m.tickCmd()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		m.shared.stop()
		return m, tea.Quit

	case " ":
		m.paused = !m.paused

	case "tab":
		m.showSettings = !m.showSettings

	case "m", "M":
		m.reducedMotion = !m.reducedMotion

	case "a", "A":
		m.setPreset(quality.PresetAuto)
	case "1":
		m.setPreset(quality.PresetLow)
	case "2":
		m.setPreset(quality.PresetMedium)
	case "3":
		m.setPreset(quality.PresetHigh)
	}

	return m, nil
}

func (m Model) setPreset(p quality.Preset) {
	if err := m.shared.controller.SetPreset(p); err != nil {
		m.shared.log.Warn().Err(err).Msg("preset change rejected")
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Settling in..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	controller := m.shared.controller
	level := controller.EffectiveLevel()
	metrics := controller.Metrics()

	menuBar := ui.RenderMenuBar(m.width, string(controller.Preset()), m.paused)

	var body string
	if m.showSettings {
		body = ui.RenderSettingsPanel(m.width, bodyH, controller.Preset(), level,
			metrics, m.shared.fpsHistory.Values(), m.reducedMotion)
	} else {
		innerW := m.width - 4
		innerH := bodyH - 4
		if innerW < 5 {
			innerW = 5
		}
		if innerH < 3 {
			innerH = 3
		}
		nowSeconds := float64(m.lastFrame.UnixNano()) / float64(time.Second)
		if m.lastFrame.IsZero() {
			nowSeconds = 0
		}
		sceneContent := scene.Render(innerW, innerH, nowSeconds, m.state,
			controller.Settings(), m.reducedMotion)
		caption := ui.RenderCaption(innerW, breath.PhaseName(m.state.PhaseIndex))
		body = ui.RenderScenePanel(m.width, bodyH, sceneContent, caption)
	}

	statusBar := ui.RenderStatusBar(m.width, breath.PhaseName(m.state.PhaseIndex),
		m.presenceCount, metrics, level)

	return ui.ComposeLayout(menuBar, body, statusBar)
}

// StartPresence launches the presence simulator. Must be called before
// p.Run().
func (m *Model) StartPresence(p *tea.Program) {
	if !m.cfg.Presence.Enabled {
		return
	}
	m.shared.simulator = presence.NewSimulator(m.cfg.Presence.Baseline, m.cfg.Presence.Jitter)
	m.shared.simulator.Start(p)
}

func (s *shared) stop() {
	if s.simulator != nil {
		s.simulator.Stop()
	}
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
