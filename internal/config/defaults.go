package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration. It mirrors
// defaults/invaders.yaml and is used when the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Screen: ScreenConfig{Width: 640, Height: 480},
		Formation: FormationConfig{
			OriginX:           92,
			OriginY:           80,
			EnemyWidth:        22,
			EnemyHeight:       14,
			GapX:              16,
			GapY:              10,
			StepX:             2,
			StepDown:          12,
			MarginLeft:        22,
			MarginRight:       22,
			InvasionLine:      340,
			BaseStepFrames:    40,
			MinStepFrames:     6,
			WaveSpeedup:       4,
			MinBaseStepFrames: 16,
		},
		Player: PlayerConfig{
			Width:        26,
			Height:       14,
			Y:            438,
			Speed:        3,
			MarginX:      2,
			FireCooldown: 10,
			BulletWidth:  2,
			BulletHeight: 10,
			BulletSpeed:  6,
		},
		EnemyFire: EnemyFireConfig{
			PoolSize:       3,
			BulletWidth:    2,
			BulletHeight:   8,
			BulletSpeed:    4,
			InitialDelay:   90,
			RetryPoolFull:  8,
			RetryNoShooter: 10,
			AimAtPlayer:    true,
			Delays: []FireDelay{
				{Above: 40, Frames: 90},
				{Above: 25, Frames: 70},
				{Above: 12, Frames: 50},
				{Above: 0, Frames: 32},
			},
		},
		Shields: ShieldConfig{
			Count:    4,
			Cols:     6,
			Rows:     3,
			TileSize: 16,
			X:        92,
			Spacing:  138,
			Y:        360,
		},
		Bonus: BonusConfig{
			Y:          40,
			Width:      32,
			Height:     14,
			Speed:      2,
			Margin:     80,
			SpawnMin:   240,
			SpawnMax:   420,
			RespawnMin: 240,
			RespawnMax: 520,
			Points:     []int{50, 100, 150, 200, 250, 300},
		},
		Rules: RulesConfig{
			Lives:              3,
			MaxLives:           9,
			ExtraLifeEvery:     1500,
			ScoreCeiling:       2_000_000_000,
			ReadyFrames:        75,
			RespawnReadyFrames: 60,
			DyingFrames:        90,
		},
		Attract: AttractConfig{
			DurationFrames: 2700,
			TableFrames:    300,
			PoolSize:       8,
			BulletWidth:    3,
			StepFrames:     18,
			FireMin:        40,
			FireJitter:     60,
			KillPoints:     10,
			PatrolMargin:   40,
			Speed:          2,
			DodgeSpeed:     3,
			DodgeFrames:    30,
			DodgeOffset:    80,
			ThreatWindow:   60,
			FireWaitMin:    24,
			FireWaitRange:  28,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.2,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 8,
			},
			Scaling: ScalingConfig{
				BulletSpeedMultiplier: 0.5,
				FireDelayReduction:    0.4,
			},
		},
	}
}
