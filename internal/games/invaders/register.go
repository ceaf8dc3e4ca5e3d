package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func init() {
	registry.Register("invaders", "Invaders", func(d registry.Deps) (registry.Game, error) {
		cfg, err := loadConfig(d)
		if err != nil {
			return nil, err
		}
		return New(cfg, d.Ledger, d.Logger), nil
	})
	registry.Register("attract", "Attract Demo", func(d registry.Deps) (registry.Game, error) {
		cfg, err := loadConfig(d)
		if err != nil {
			return nil, err
		}
		return NewAttract(cfg, d.Ledger), nil
	})
}

// loadConfig resolves the configuration file and applies the preset.
func loadConfig(d registry.Deps) (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(d.ConfigPath)
	if err != nil {
		return config.InvadersConfig{}, fmt.Errorf("invaders: %w", err)
	}
	config.ApplyInvadersPreset(&cfg, d.Preset)
	d.Logger.Debug("config loaded", "path", d.ConfigPath, "preset", d.Preset)
	return cfg, nil
}
