package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: invaders).

Controls:
  Left/Right, A/D   - Move
  Space/Z           - Fire
  Enter             - Continue; confirm a letter of your initials
  Up/Down           - Change a letter of your initials
  P                 - Pause
  Ctrl+S            - Screenshot to ~/.invaders/screenshots
  Q/Esc/Ctrl+C      - Quit

Difficulty options:
  easy    - Five lives, fewer enemy bullets in flight
  normal  - Three lives, enemy fire scales with wave and score
  hard    - Two lives, a faster march that speeds up more each wave
  fixed   - Three lives, enemy fire never scales

Examples:
  invaders play
  invaders play attract
  invaders play --difficulty easy --seed 42
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addSoundFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := "invaders"
	if len(args) == 1 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		return fmt.Errorf("unknown mode %q; run 'invaders list' to see available modes", mode)
	}

	s, err := openSession(true, true)
	if err != nil {
		return err
	}
	defer s.Close()

	game, err := registry.Create(mode, s.svc.Deps)
	if err != nil {
		return err
	}
	// The demo loops until a key is pressed; games offer a fresh run.
	_, err = tui.Run(game, s.svc, runtimeConfig(), true)
	return err
}
