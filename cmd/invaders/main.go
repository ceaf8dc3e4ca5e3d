// invaders is a terminal invaders arcade: a fixed-timestep simulation played
// with Bubble Tea, locally or over SSH, with a persistent high score table.
//
// Usage:
//
//	invaders play [mode]     - Play a mode (default: invaders)
//	invaders menu            - Title menu with the attract demo
//	invaders list            - List available modes
//	invaders scores          - Show the high score table
//	invaders serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--db <path>            - Run history database (default: ~/.invaders/runs.db)
//	--scores-file <path>   - High score table (default: ~/.invaders/highscores.txt)
//	--config <path>        - Custom invaders.yaml
//	--difficulty <preset>  - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/ledger"
	"github.com/vovakirdan/tui-invaders/internal/platform/audio"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresFile string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
	flagSound      bool
	flagVolume     float64
	flagNoHistory  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - defend the planet from your terminal",
	Long: `Invaders is a terminal rendition of the classic fixed shooter.

Available commands:
  play     - Play a mode directly
  menu     - Title menu; the attract demo starts when idle
  list     - Show all available modes
  scores   - View the high score table and run history
  serve    - Start SSH server for remote play

Examples:
  invaders play
  invaders play --difficulty hard
  invaders menu
  invaders serve --ssh :2222
  invaders scores --history`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.invaders/runs.db", "Path to run history database")
	pf.StringVar(&flagScoresFile, "scores-file", ledger.DefaultPath(), "Path to the high score table")
	pf.StringVar(&flagConfig, "config", "", "Path to custom invaders.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Log at debug level")
	pf.BoolVar(&flagNoHistory, "no-history", false, "Do not record finished runs")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// addSoundFlags registers the audio flags on commands that play locally.
func addSoundFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
}

// newLogger builds the process logger. Interactive commands own the
// terminal, so they only log when --log names a file.
func newLogger(interactive bool) (*log.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// session bundles everything a command opens and must close.
type session struct {
	svc    tui.Services
	player *audio.Player
	closer io.Closer
}

// openSession resolves flags into shared services. Only a bad flag or an
// unusable log file is fatal; storage and audio degrade with a warning.
func openSession(interactive, withSound bool) (*session, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	logger, closer, err := newLogger(interactive)
	if err != nil {
		return nil, err
	}

	s := &session{closer: closer}
	s.svc.Deps = registry.Deps{
		ConfigPath: flagConfig,
		Preset:     preset,
		Logger:     logger,
	}

	fileStore, err := ledger.NewFileStore(flagScoresFile)
	if err != nil {
		logger.Warn("high score file unavailable, scores will not persist", "error", err)
		s.svc.Deps.Ledger = ledger.New(ledger.DefaultSeed)
	} else {
		s.svc.Deps.Ledger = ledger.Open(fileStore, ledger.DefaultSeed, ledger.WithLogger(logger))
	}

	if !flagNoHistory {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open run history", "error", err)
		} else {
			s.svc.Store = store
			s.svc.Record = true
		}
	}

	if withSound && flagSound {
		s.player = audio.NewPlayer(flagVolume)
		if err := s.player.Init(); err != nil {
			logger.Warn("audio unavailable", "error", err)
			s.player = nil
		} else {
			s.svc.Sink = s.player
		}
	}

	return s, nil
}

// Close releases the session resources.
func (s *session) Close() {
	if s.player != nil {
		s.player.Close()
	}
	if s.svc.Store != nil {
		//nolint:errcheck // Best-effort close
		s.svc.Store.Close()
	}
	if s.closer != nil {
		//nolint:errcheck // Best-effort close
		s.closer.Close()
	}
}

// runtimeConfig sizes the simulation view to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
