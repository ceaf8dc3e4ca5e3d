package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.invaders/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MenuIdle starts the attract demo after the menu sits untouched this
	// long. Zero disables it.
	MenuIdle time.Duration

	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		MenuIdle:    30 * time.Second,
		TickRate:    60,
	}
}

// SSHServer wraps a Wish SSH server. All sessions share one ledger and
// one run store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	svc    Services
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// The server owns svc.Store and closes it on shutdown.
func NewSSHServer(cfg SSHServerConfig, svc Services) (*SSHServer, error) {
	logger := svc.Deps.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "invaders-ssh",
		})
		svc.Deps.Logger = logger
	}
	svc.Deps = svc.Deps.WithDefaults()
	// Remote players have no speaker on this host.
	svc.Sink = nil

	srv := &SSHServer{
		config: cfg,
		svc:    svc,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".invaders", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}

	svc := s.svc
	svc.Deps.Logger = s.logger.With("user", sshSession.User())
	return NewSessionModel(svc, cfg, s.config.MenuIdle), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.svc.Store != nil {
		//nolint:errcheck // Best-effort close
		s.svc.Store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu, then a game, the demo
// or the scoreboard, then back to the menu.
type SessionModel struct {
	svc      Services
	config   core.RuntimeConfig
	idle     time.Duration
	screen   sessionScreen
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(svc Services, cfg core.RuntimeConfig, idle time.Duration) SessionModel {
	return SessionModel{
		svc:    svc,
		config: cfg,
		idle:   idle,
		menu:   NewMenuModel(svc, cfg, idle),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.svc, m.config, m.idle)
	return m, m.menu.Init()
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	res := menuResult(m.menu)
	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.Selected() == nil:
		return m, cmd

	case res.WantsScoreboard:
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.svc, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	}

	game, err := registry.Create(res.GameID, m.svc.Deps)
	if err != nil {
		m.svc.logger().Error("cannot start game", "mode", res.GameID, "error", err)
		return m.toMenu()
	}
	m.config = res.Config
	m.config.Seed = time.Now().UnixNano()
	m.game = NewModel(game, m.svc, m.config, false)
	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}
