package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var flagIdle time.Duration

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu. Left alone, the menu
starts the attract demo; any key returns from it.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  invaders menu
  invaders menu --idle 10s
  invaders menu --fps 30`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().DurationVar(&flagIdle, "idle", 30*time.Second, "Start the attract demo after this much idle time (0 disables)")
	addSoundFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession(true, true)
	if err != nil {
		return err
	}
	defer s.Close()

	logger := s.svc.Deps.Logger
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(s.svc, cfg, flagIdle)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(s.svc, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID, s.svc.Deps)
		if err != nil {
			logger.Error("cannot start game", "mode", result.GameID, "error", err)
			continue
		}

		cfg.Seed = time.Now().UnixNano()
		quit, err := tui.Run(game, s.svc, cfg, false)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
