package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Services are shared by every screen of a session.
type Services struct {
	Deps      registry.Deps  // ledger, config, preset and logger for game factories
	Store     *storage.Store // run history; nil disables it
	Sink      core.CueSink   // audio; nil is silent
	HoldTicks int            // see DefaultHoldTicks
	Record    bool           // save finished runs to Store
}

func (s Services) logger() *log.Logger {
	if s.Deps.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Deps.Logger
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	svc     Services
	config  core.RuntimeConfig
	keys    *HeldKeys
	tracker core.InputTracker

	gameState  core.GameState
	ticks      int
	paused     bool
	restart    bool // start over when the game finishes instead of leaving
	ownProgram bool // leaving the game ends the Bubble Tea program
	quitting   bool
	backToMenu bool
	runSaved   bool
}

// NewModel creates a model for game. With restart set a finished game is
// reset with a fresh seed; otherwise the model reports BackToMenu.
func NewModel(game registry.Game, svc Services, cfg core.RuntimeConfig, restart bool) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		svc:     svc,
		config:  cfg,
		keys:    NewHeldKeys(svc.HoldTicks),
		restart: restart,
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
		// The simulation has its own coordinate space; only the view changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	button, action := MapKey(msg)
	switch action {
	case KeyQuit:
		m.quitting = true
		return m, tea.Quit
	case KeyBack:
		return m.leave()
	case KeyPause:
		m.paused = !m.paused
		m.keys.Release()
		return m, nil
	case KeyScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	if !m.paused {
		m.keys.Press(button)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.tracker.Next(m.keys.Tick())
	result := m.game.Step(frame)
	m.gameState = result.State
	m.ticks++

	if m.svc.Sink != nil {
		for _, c := range result.Cues {
			m.svc.Sink.Play(c)
		}
	}

	if m.gameState.Finished {
		m.saveRun()
		if !m.restart {
			return m.leave()
		}
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.tracker.Reset()
		m.keys.Release()
		m.ticks = 0
		m.runSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) leave() (tea.Model, tea.Cmd) {
	m.backToMenu = true
	if m.ownProgram {
		return m, tea.Quit
	}
	return m, nil
}

// saveRun records the finished run once. Failures are logged and ignored.
// Demo runs are never recorded.
func (m *Model) saveRun() {
	if m.runSaved || !m.svc.Record || m.svc.Store == nil || m.game.ID() == AttractMode {
		return
	}
	m.runSaved = true
	run := storage.Run{
		Mode:     m.game.ID(),
		Initials: m.gameState.Initials,
		Score:    m.gameState.Score,
		Wave:     m.gameState.Wave,
		Ticks:    m.ticks,
	}
	if _, err := m.svc.Store.SaveRun(run); err != nil {
		m.svc.logger().Warn("could not save run", "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.svc.logger().Warn("screenshot failed", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	m.game.Render(m.screen)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorBrightYellow)
	}
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the loop.
func (m Model) State() core.GameState {
	return m.gameState
}

// Paused reports whether the loop is paused.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the game is over or the user left it.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in its own Bubble Tea program until the player leaves.
// quit reports that the player asked to exit the whole program.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig, restart bool) (quit bool, err error) {
	model := NewModel(game, svc, cfg, restart)
	model.ownProgram = true

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	return !ok || m.IsQuitting(), nil
}
