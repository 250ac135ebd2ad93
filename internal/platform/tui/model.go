package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// axisHold is how long a direction key keeps the paddle moving. Terminals
// report presses and auto-repeat but never releases, so the axis decays
// unless the key keeps repeating.
const axisHold = 120 * time.Millisecond

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState

	lastTick  time.Time
	axis      float64
	axisTicks int // Frames the current axis value is still held for
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	in := m.keys.MapKey(msg)
	if in.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if in.HasAxis {
		m.axis = in.Axis
		m.axisTicks = holdTicks(m.config.TickRate)
	}
	if in.Action != core.ActionNone {
		m.inputFrame.Set(in.Action)
	}
	return m, nil
}

func holdTicks(tickRate int) int {
	return max(1, int(axisHold*time.Duration(tickRate)/time.Second))
}

// handleTick runs one frame covering the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now
	m.inputFrame.Elapsed = m.config.FrameTime(elapsed)

	if m.axisTicks > 0 {
		m.inputFrame.SetAxis(core.AxisPaddle, m.axis)
		m.axisTicks--
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !prev.GameOver {
		m.logger.Info("session over", "game", m.game.ID(), "score", m.gameState.Score)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := m.help.View(m.keys.Keys)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH-lipgloss.Height(helpView))
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpView
}

// GameState returns the state reported by the most recent frame.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
