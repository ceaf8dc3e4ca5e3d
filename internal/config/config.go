// Package config provides YAML-based configuration loading and difficulty
// management for the invaders simulation.
package config

// InvadersConfig contains every tunable of the simulation. Distances are in
// simulation pixels and durations in ticks (60 per second).
type InvadersConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Formation  FormationConfig  `yaml:"formation"`
	Player     PlayerConfig     `yaml:"player"`
	EnemyFire  EnemyFireConfig  `yaml:"enemy_fire"`
	Shields    ShieldConfig     `yaml:"shields"`
	Bonus      BonusConfig      `yaml:"bonus"`
	Rules      RulesConfig      `yaml:"rules"`
	Attract    AttractConfig    `yaml:"attract"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ScreenConfig is the size of the simulated playfield.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FormationConfig defines the enemy grid and its march.
type FormationConfig struct {
	OriginX      int `yaml:"origin_x"`
	OriginY      int `yaml:"origin_y"`
	EnemyWidth   int `yaml:"enemy_width"`
	EnemyHeight  int `yaml:"enemy_height"`
	GapX         int `yaml:"gap_x"`
	GapY         int `yaml:"gap_y"`
	StepX        int `yaml:"step_x"`
	StepDown     int `yaml:"step_down"`
	MarginLeft   int `yaml:"margin_left"`
	MarginRight  int `yaml:"margin_right"`
	InvasionLine int `yaml:"invasion_line"` // y the lowest alive row must not reach

	BaseStepFrames    int `yaml:"base_step_frames"`     // march interval of a full wave-1 grid
	MinStepFrames     int `yaml:"min_step_frames"`      // floor reached as the grid empties
	WaveSpeedup       int `yaml:"wave_speedup"`         // frames removed from the base per wave
	MinBaseStepFrames int `yaml:"min_base_step_frames"` // floor for the per-wave base
}

// PlayerConfig defines the player cannon and its bullet.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Y            int `yaml:"y"`
	Speed        int `yaml:"speed"`
	MarginX      int `yaml:"margin_x"`
	FireCooldown int `yaml:"fire_cooldown"`
	BulletWidth  int `yaml:"bullet_width"`
	BulletHeight int `yaml:"bullet_height"`
	BulletSpeed  int `yaml:"bullet_speed"`
}

// FireDelay is one tier of the enemy shot cadence: while more than Above
// enemies are alive, a shot is attempted every Frames ticks.
type FireDelay struct {
	Above  int `yaml:"above"`
	Frames int `yaml:"frames"`
}

// EnemyFireConfig defines enemy bullets and shot cadence.
type EnemyFireConfig struct {
	PoolSize       int         `yaml:"pool_size"`
	BulletWidth    int         `yaml:"bullet_width"`
	BulletHeight   int         `yaml:"bullet_height"`
	BulletSpeed    int         `yaml:"bullet_speed"`
	InitialDelay   int         `yaml:"initial_delay"`
	RetryPoolFull  int         `yaml:"retry_pool_full"`
	RetryNoShooter int         `yaml:"retry_no_shooter"`
	AimAtPlayer    bool        `yaml:"aim_at_player"`
	Delays         []FireDelay `yaml:"delays"`
}

// ShieldConfig defines the destructible barriers.
type ShieldConfig struct {
	Count    int `yaml:"count"`
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	TileSize int `yaml:"tile_size"`
	X        int `yaml:"x"`
	Spacing  int `yaml:"spacing"`
	Y        int `yaml:"y"`
}

// BonusConfig defines the bonus target crossing the top of the screen.
type BonusConfig struct {
	Y          int   `yaml:"y"`
	Width      int   `yaml:"width"`
	Height     int   `yaml:"height"`
	Speed      int   `yaml:"speed"`
	Margin     int   `yaml:"margin"` // off-screen distance where it enters and leaves
	SpawnMin   int   `yaml:"spawn_min"`
	SpawnMax   int   `yaml:"spawn_max"`
	RespawnMin int   `yaml:"respawn_min"`
	RespawnMax int   `yaml:"respawn_max"`
	Points     []int `yaml:"points"`
}

// RulesConfig defines scoring, lives and state timings.
type RulesConfig struct {
	Lives              int `yaml:"lives"`
	MaxLives           int `yaml:"max_lives"`
	ExtraLifeEvery     int `yaml:"extra_life_every"`
	ScoreCeiling       int `yaml:"score_ceiling"`
	ReadyFrames        int `yaml:"ready_frames"`
	RespawnReadyFrames int `yaml:"respawn_ready_frames"`
	DyingFrames        int `yaml:"dying_frames"`
}

// AttractConfig defines the non-interactive demo.
type AttractConfig struct {
	DurationFrames int `yaml:"duration_frames"`
	TableFrames    int `yaml:"table_frames"` // final frames that show the ledger
	PoolSize       int `yaml:"pool_size"`
	BulletWidth    int `yaml:"bullet_width"`
	StepFrames     int `yaml:"step_frames"`
	FireMin        int `yaml:"fire_min"`
	FireJitter     int `yaml:"fire_jitter"`
	KillPoints     int `yaml:"kill_points"`

	PatrolMargin  int `yaml:"patrol_margin"`
	Speed         int `yaml:"speed"`
	DodgeSpeed    int `yaml:"dodge_speed"`
	DodgeFrames   int `yaml:"dodge_frames"`
	DodgeOffset   int `yaml:"dodge_offset"`
	ThreatWindow  int `yaml:"threat_window"`
	FireWaitMin   int `yaml:"fire_wait_min"`
	FireWaitRange int `yaml:"fire_wait_range"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave", "score", or "none"
	MaxAt int    `yaml:"max_at"` // wave number or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	BulletSpeedMultiplier float64 `yaml:"bullet_speed_multiplier"` // added to enemy bullet speed
	FireDelayReduction    float64 `yaml:"fire_delay_reduction"`    // fraction removed from shot delays
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.2
	case DifficultyHard:
		return 0.6
	default:
		return 0.0
	}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	}
	return "", false
}
