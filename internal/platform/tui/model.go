package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the contract the terminal loop drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Options configures a Model.
type Options struct {
	Config        core.RuntimeConfig
	Logger        *log.Logger
	ScreenshotDir string
}

// helpHeight is the number of rows reserved below the playfield.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	shotDir    string
	now        func() time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) Model {
	cfg := opts.Config
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		logger:     logger,
		shotDir:    opts.ScreenshotDir,
		now:        time.Now,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game reset", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a := m.keys.Action(msg); a != core.ActionNone {
		m.inputFrame.Set(a)
		m.logger.Debug("input", "key", msg.String(), "action", a)
	}
	return m, nil
}

// handleResize changes the projection target only; the world size is fixed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick consumes the accumulated input and advances the game one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionScreenshot) {
		m.saveScreenshot()
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	m.logTransition(prev, m.gameState)
	m.keys.SetPhase(m.gameState.Phase)

	if m.gameState.Phase == core.PhaseTerminated {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTransition(prev, next core.GameState) {
	if prev.Phase == next.Phase {
		return
	}
	switch next.Phase {
	case core.PhaseRunning:
		if prev.Phase == core.PhaseGameOver {
			m.logger.Info("session restarted", "last_score", prev.Score)
			return
		}
		m.logger.Info("session started", "seed", m.config.Seed)
	case core.PhaseGameOver:
		m.logger.Info("game over", "score", next.Score, "ticks", m.ticks())
	case core.PhaseTerminated:
		m.logger.Info("quit", "phase", prev.Phase, "score", next.Score)
	}
}

// tickCounter is implemented by games that count simulated ticks.
type tickCounter interface {
	Ticks() int
}

func (m Model) ticks() int {
	if tc, ok := m.game.(tickCounter); ok {
		return tc.Ticks()
	}
	return 0
}

// saveScreenshot writes the frame currently on screen. Failures are logged
// and never interrupt the game.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)
	path, err := writeScreenshot(m.shotDir, m.game.ID(), m.now(), m.screen)
	if err != nil {
		m.logger.Error("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
