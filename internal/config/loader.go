package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const invadersFile = "invaders.yaml"

// LoadInvaders loads the simulation configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml ->
// ./configs/invaders.yaml -> embedded default -> DefaultInvadersConfig.
// Files only need to set the keys they change.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseInvaders(data)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(invadersFile), filepath.Join("configs", invadersFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseInvaders(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseInvaders(defaultInvadersYAML); err == nil {
		return cfg, nil
	}
	return DefaultInvadersConfig(), nil
}

// parseInvaders overlays YAML on top of the built-in defaults and validates the result.
func parseInvaders(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return InvadersConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Difficulty.InitialLevel = 0
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
		cfg.EnemyFire.PoolSize = 2
	case DifficultyHard:
		cfg.Rules.Lives = 2
		cfg.Formation.BaseStepFrames -= 8
		cfg.Formation.WaveSpeedup += 2
	}
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// maxScoreCeiling is the largest score the high score file can hold.
const maxScoreCeiling = 2_000_000_000

// Validate rejects configurations the simulation cannot run with.
func (c InvadersConfig) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}

	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return invalid("screen size %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Formation.EnemyWidth <= 0 || c.Formation.EnemyHeight <= 0:
		return invalid("enemy size %dx%d", c.Formation.EnemyWidth, c.Formation.EnemyHeight)
	case c.Formation.GapX < 0 || c.Formation.GapY < 0:
		return invalid("negative formation gap")
	case c.Formation.StepX <= 0 || c.Formation.StepDown <= 0:
		return invalid("formation steps must be positive")
	case c.Formation.MarginLeft >= c.Screen.Width-c.Formation.MarginRight:
		return invalid("formation margins leave no room")
	case c.Formation.MinStepFrames < 1 || c.Formation.BaseStepFrames < c.Formation.MinStepFrames:
		return invalid("step frames base=%d min=%d", c.Formation.BaseStepFrames, c.Formation.MinStepFrames)
	case c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Speed <= 0:
		return invalid("player size or speed")
	case c.Player.BulletSpeed <= 0 || c.EnemyFire.BulletSpeed <= 0:
		return invalid("bullet speeds must be positive")
	case c.EnemyFire.PoolSize < 1 || c.Attract.PoolSize < 1:
		return invalid("enemy bullet pools need at least one slot")
	case len(c.EnemyFire.Delays) == 0:
		return invalid("enemy_fire.delays is empty")
	case c.Shields.Count < 0 || c.Shields.Cols < 0 || c.Shields.Rows < 0 || c.Shields.TileSize <= 0:
		return invalid("shield layout")
	case c.Bonus.Width <= 0 || c.Bonus.Height <= 0:
		return invalid("bonus size %dx%d", c.Bonus.Width, c.Bonus.Height)
	case c.Bonus.SpawnMin > c.Bonus.SpawnMax || c.Bonus.RespawnMin > c.Bonus.RespawnMax:
		return invalid("bonus timer ranges are inverted")
	case len(c.Bonus.Points) == 0:
		return invalid("bonus.points is empty")
	case c.Rules.Lives < 1 || c.Rules.MaxLives < c.Rules.Lives:
		return invalid("lives=%d max_lives=%d", c.Rules.Lives, c.Rules.MaxLives)
	case c.Rules.ExtraLifeEvery <= 0 || c.Rules.ScoreCeiling <= 0:
		return invalid("scoring thresholds must be positive")
	case c.Rules.ScoreCeiling > maxScoreCeiling:
		return invalid("rules.score_ceiling %d exceeds %d", c.Rules.ScoreCeiling, maxScoreCeiling)
	}
	return nil
}
