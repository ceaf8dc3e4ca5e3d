package core

// Cue identifies a fire-and-forget audio event raised by the simulation.
type Cue uint8

const (
	CueShot Cue = iota + 1
	CueEnemyKilled
	CuePlayerKilled
	CueExtraLife
	CueHit
	CueBonusAppear
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueEnemyKilled:
		return "enemy-killed"
	case CuePlayerKilled:
		return "player-killed"
	case CueExtraLife:
		return "extra-life"
	case CueHit:
		return "hit"
	case CueBonusAppear:
		return "bonus-appear"
	default:
		return "unknown"
	}
}

// CueSink receives cues from the platform loop.
type CueSink interface {
	Play(c Cue)
}
