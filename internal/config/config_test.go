package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parseInvaders(defaultInvadersYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	def := DefaultInvadersConfig()

	if cfg.Formation != def.Formation {
		t.Errorf("formation = %+v, want %+v", cfg.Formation, def.Formation)
	}
	if cfg.Player != def.Player {
		t.Errorf("player = %+v, want %+v", cfg.Player, def.Player)
	}
	if cfg.Rules != def.Rules {
		t.Errorf("rules = %+v, want %+v", cfg.Rules, def.Rules)
	}
	if cfg.Attract != def.Attract {
		t.Errorf("attract = %+v, want %+v", cfg.Attract, def.Attract)
	}
	if len(cfg.EnemyFire.Delays) != len(def.EnemyFire.Delays) {
		t.Errorf("delay tiers = %d, want %d", len(cfg.EnemyFire.Delays), len(def.EnemyFire.Delays))
	}
	if err := def.Validate(); err != nil {
		t.Errorf("built-in defaults invalid: %v", err)
	}
}

func TestLoadInvadersCustomPathOverlays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("rules:\n  lives: 5\nformation:\n  step_x: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if cfg.Rules.Lives != 5 || cfg.Formation.StepX != 4 {
		t.Errorf("overrides not applied: lives=%d step_x=%d", cfg.Rules.Lives, cfg.Formation.StepX)
	}
	if cfg.Rules.ExtraLifeEvery != 1500 {
		t.Errorf("untouched keys should keep defaults, extra_life_every=%d", cfg.Rules.ExtraLifeEvery)
	}
}

func TestLoadInvadersErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadInvaders(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadInvaders(bad)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
	}{
		{"zero screen", func(c *InvadersConfig) { c.Screen.Width = 0 }},
		{"margins overlap", func(c *InvadersConfig) { c.Formation.MarginLeft = 400; c.Formation.MarginRight = 300 }},
		{"empty pool", func(c *InvadersConfig) { c.EnemyFire.PoolSize = 0 }},
		{"no delays", func(c *InvadersConfig) { c.EnemyFire.Delays = nil }},
		{"inverted bonus timer", func(c *InvadersConfig) { c.Bonus.SpawnMin = 500 }},
		{"no lives", func(c *InvadersConfig) { c.Rules.Lives = 0 }},
		{"floor above base", func(c *InvadersConfig) { c.Formation.MinStepFrames = 50 }},
		{"zero width bonus", func(c *InvadersConfig) { c.Bonus.Width = 0 }},
		{"zero height bonus", func(c *InvadersConfig) { c.Bonus.Height = 0 }},
		{"ceiling past saved range", func(c *InvadersConfig) { c.Rules.ScoreCeiling = maxScoreCeiling + 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		enabled   bool
		baseSteps int
	}{
		{DifficultyEasy, 5, true, 40},
		{DifficultyNormal, 3, true, 40},
		{DifficultyHard, 2, true, 32},
		{DifficultyFixed, 3, false, 40},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			ApplyInvadersPreset(&cfg, tc.preset)
			if cfg.Rules.Lives != tc.lives {
				t.Errorf("lives = %d, want %d", cfg.Rules.Lives, tc.lives)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, want %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Formation.BaseStepFrames != tc.baseSteps {
				t.Errorf("base step frames = %d, want %d", cfg.Formation.BaseStepFrames, tc.baseSteps)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}
