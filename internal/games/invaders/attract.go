package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/ledger"
)

// Attract is the non-interactive demo: an autopilot plays against an
// endlessly respawning formation, then the high score table is shown.
// Any button press ends it.
type Attract struct {
	world

	table     *ledger.Ledger
	autopilot *Autopilot

	frame     int
	score     int
	fireTimer int
	finished  bool

	cues []core.Cue
	hits []Hit
}

// NewAttract creates the demo. table may be nil.
func NewAttract(cfg config.InvadersConfig, table *ledger.Ledger) *Attract {
	if table == nil {
		table = ledger.New(ledger.DefaultSeed)
	}
	a := &Attract{table: table}
	a.world.cfg = cfg
	a.Reset(core.DefaultConfig())
	return a
}

// ID returns the unique identifier for this game.
func (a *Attract) ID() string { return "attract" }

// Title returns the display name for this game.
func (a *Attract) Title() string { return "Attract Demo" }

// Reset restarts the demo from its first frame.
func (a *Attract) Reset(rc core.RuntimeConfig) {
	cfg := a.world.cfg
	a.world = newWorld(cfg, seedFrom(rc), cfg.Attract.PoolSize)

	layout := LayoutFromConfig(cfg.Formation, cfg.Screen.Width)
	layout.BaseStepFrames = cfg.Attract.StepFrames
	layout.MinStepFrames = cfg.Attract.StepFrames
	a.formation = NewFormation(layout)

	a.autopilot = NewAutopilot(cfg.Attract, cfg.Screen.Width)
	a.frame = 0
	a.score = 0
	a.fireTimer = cfg.Attract.FireMin
	a.finished = false
	a.cues = nil
}

// ShowingTable reports whether the demo has reached its closing table.
func (a *Attract) ShowingTable() bool {
	at := a.cfg.Attract
	return a.frame >= at.DurationFrames-at.TableFrames
}

// Step advances the demo by one tick.
func (a *Attract) Step(in core.InputFrame) core.StepResult {
	a.cues = nil
	if a.finished {
		return core.StepResult{State: a.State()}
	}
	if in.Pressed.Any() {
		a.finished = true
		return core.StepResult{State: a.State()}
	}

	a.frame++
	if a.frame >= a.cfg.Attract.DurationFrames {
		a.finished = true
		return core.StepResult{State: a.State()}
	}
	if a.ShowingTable() {
		return core.StepResult{State: a.State()}
	}

	if a.formation.Update() == FormationCleared {
		a.formation.Reset()
	}

	at := a.cfg.Attract
	a.fireTimer--
	if a.fireTimer <= 0 {
		if row, col, ok := a.formation.PickShooter(a.rng.Next()); ok {
			a.fireEnemyShot(row, col, at.BulletWidth, a.cfg.EnemyFire.BulletSpeed)
		}
		a.fireTimer = at.FireMin + a.rng.Intn(at.FireJitter)
	}

	if a.autopilot.Update(a.player, a.enemyShots, a.shots.Active() > 0, a.rng) && a.firePlayerShot() {
		a.cues = append(a.cues, core.CueShot)
	}

	a.updatePools()

	// The demo player cannot die; enemy bullets only wear down the shields.
	a.hits = a.resolvePlayerShots(false, a.hits[:0])
	a.hits = a.resolveEnemyShots(false, a.hits)
	for _, h := range a.hits {
		if h.Kind == HitEnemy {
			a.score += at.KillPoints
			a.cues = append(a.cues, core.CueEnemyKilled)
		}
	}

	return core.StepResult{State: a.State(), Cues: a.cues}
}

// State returns the demo state. The score is the demo's own tally.
func (a *Attract) State() core.GameState {
	return core.GameState{
		Score:    a.score,
		Lives:    1,
		Wave:     1,
		GameOver: a.finished,
		Finished: a.finished,
	}
}

// Sprites returns the render list for the current tick.
func (a *Attract) Sprites() []Sprite {
	if a.ShowingTable() {
		return nil
	}
	return a.sprites(true, false)
}
