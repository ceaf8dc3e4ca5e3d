package config

import "math"

// DifficultyManager derives per-wave parameters from the progression settings.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for a wave and score.
func (d *DifficultyManager) Level(wave, score int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "wave":
		progress = float64(wave-1) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// BulletSpeed returns the enemy bullet speed in pixels per tick. Never below base.
func (d *DifficultyManager) BulletSpeed(base, wave, score int) int {
	level := d.Level(wave, score)
	speed := int(float64(base) * (1.0 + level*d.cfg.Scaling.BulletSpeedMultiplier))
	if speed < base {
		speed = base
	}
	return speed
}

// FireDelay shortens an enemy shot delay. Never below one tick.
func (d *DifficultyManager) FireDelay(base, wave, score int) int {
	level := d.Level(wave, score)
	reduction := int(level * d.cfg.Scaling.FireDelayReduction * float64(base))
	if result := base - reduction; result > 1 {
		return result
	}
	return 1
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
