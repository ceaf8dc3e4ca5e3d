// Package invaders implements the fixed-timestep invaders simulation: the
// marching formation, pooled projectiles, shields, the bonus target, and the
// wave/life/game-over state machine that feeds the high score ledger.
package invaders

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/ledger"
)

// State is the top-level phase of a run.
type State uint8

const (
	StateReady State = iota
	StatePlaying
	StatePlayerDying
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePlayerDying:
		return "player-dying"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// OverPhase is the sub-state of StateGameOver.
type OverPhase uint8

const (
	OverEnteringInitials OverPhase = iota
	OverShowingTable
)

// Game is one run of the invaders game.
type Game struct {
	world

	table      *ledger.Ledger
	logger     *log.Logger
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig

	state      State
	over       OverPhase
	stateTimer int
	tick       uint64

	score        int
	lives        int
	wave         int
	extraLifeAcc int
	shotTimer    int

	initials  [3]byte
	cursor    int
	submitted string
	rank      int
	finished  bool

	cues []core.Cue
	hits []Hit
}

// New creates a game. table may be nil, in which case a memory-only ledger
// is used. logger may be nil.
func New(cfg config.InvadersConfig, table *ledger.Ledger, logger *log.Logger) *Game {
	if table == nil {
		table = ledger.New(ledger.DefaultSeed)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		table:      table,
		logger:     logger,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	g.world.cfg = cfg
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "invaders" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Invaders" }

// Reset starts a new run: score zero, full lives, wave one.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.world = newWorld(g.world.cfg, seedFrom(rc), g.world.cfg.EnemyFire.PoolSize)

	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Rules.Lives
	g.wave = 1
	g.extraLifeAcc = 0
	g.submitted = ""
	g.rank = -1
	g.finished = false
	g.cues = nil
	g.startWave()
}

// seedFrom picks the simulation seed. Zero means the fixed default.
func seedFrom(rc core.RuntimeConfig) uint32 {
	if rc.Seed == 0 {
		return ledger.DefaultSeed
	}
	return uint32(rc.Seed) ^ uint32(rc.Seed>>32) //#nosec G115 -- folding the seed
}

// startWave rebuilds the formation for the current wave and enters READY.
// Score and lives carry over.
func (g *Game) startWave() {
	fc := g.cfg.Formation
	layout := LayoutFromConfig(fc, g.cfg.Screen.Width)
	layout.BaseStepFrames = max(fc.MinBaseStepFrames, fc.BaseStepFrames-(g.wave-1)*fc.WaveSpeedup)
	g.formation = NewFormation(layout)

	g.shields.Reset()
	g.shots.KillAll()
	g.enemyShots.KillAll()
	g.player.Respawn()
	g.bonus.Arm(g.rng)
	g.shotTimer = g.cfg.EnemyFire.InitialDelay
	g.enterReady(g.cfg.Rules.ReadyFrames)

	g.logger.Debug("wave start", "wave", g.wave, "step_frames", layout.BaseStepFrames)
}

func (g *Game) enterReady(frames int) {
	g.state = StateReady
	g.stateTimer = frames
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = nil
	if g.finished {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	switch g.state {
	case StateReady:
		g.stateTimer--
		if g.stateTimer <= 0 {
			g.state = StatePlaying
		}
	case StatePlaying:
		g.stepPlaying(in)
	case StatePlayerDying:
		g.player.Update(core.InputFrame{})
		if !g.player.Dead() {
			if g.lives <= 0 {
				g.enterGameOver()
			} else {
				g.player.Respawn()
				g.enterReady(g.cfg.Rules.RespawnReadyFrames)
			}
		}
	case StateGameOver:
		g.stepGameOver(in)
	}

	return core.StepResult{State: g.State(), Cues: g.cues}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	switch g.formation.Update() {
	case FormationCleared:
		g.wave++
		g.startWave()
		return
	case FormationDropped:
		if g.formation.Bottom() >= g.cfg.Formation.InvasionLine {
			g.logger.Debug("formation reached the invasion line", "wave", g.wave)
			g.loseLife(true)
			return
		}
	}

	g.updateEnemyFire()

	if g.player.Update(in) && g.firePlayerShot() {
		g.cue(core.CueShot)
	}
	if g.bonus.Update(g.rng) {
		g.cue(core.CueBonusAppear)
	}

	g.updatePools()

	g.hits = g.resolvePlayerShots(true, g.hits[:0])
	g.hits = g.resolveEnemyShots(!g.player.Dead(), g.hits)
	for _, h := range g.hits {
		switch h.Kind {
		case HitEnemy:
			g.cue(core.CueEnemyKilled)
			g.addScore(h.Points)
		case HitBonus:
			g.cue(core.CueHit)
			g.addScore(h.Points)
		case HitShield:
			g.cue(core.CueHit)
		case HitPlayer:
			g.loseLife(false)
		}
	}
}

// updateEnemyFire runs the enemy shot timer. A full pool or a missing
// shooter only delays the next attempt.
func (g *Game) updateEnemyFire() {
	if g.shotTimer > 0 {
		g.shotTimer--
		return
	}

	ef := g.cfg.EnemyFire
	if g.enemyShots.Active() >= g.enemyShots.Cap() {
		g.shotTimer = ef.RetryPoolFull
		return
	}

	seed := g.rng.Next()
	var row, col int
	var ok bool
	if ef.AimAtPlayer {
		row, col, ok = g.formation.PickShooterToward(g.formation.ColumnAt(g.player.CenterX()), seed)
	} else {
		row, col, ok = g.formation.PickShooter(seed)
	}
	if !ok {
		g.shotTimer = ef.RetryNoShooter
		return
	}

	speed := g.difficulty.BulletSpeed(ef.BulletSpeed, g.wave, g.score)
	g.fireEnemyShot(row, col, ef.BulletWidth, speed)
	g.shotTimer = g.difficulty.FireDelay(fireDelay(ef.Delays, g.formation.Remaining()), g.wave, g.score)
}

// fireDelay returns the frames of the first tier whose threshold alive exceeds.
func fireDelay(tiers []config.FireDelay, alive int) int {
	for _, t := range tiers {
		if alive > t.Above {
			return t.Frames
		}
	}
	return tiers[len(tiers)-1].Frames
}

// loseLife kills the player. With all set every remaining life is forfeited.
func (g *Game) loseLife(all bool) {
	if all {
		g.lives = 0
	} else if g.lives > 0 {
		g.lives--
	}
	g.player.Kill(g.cfg.Rules.DyingFrames)
	g.shots.KillAll()
	g.enemyShots.KillAll()
	g.state = StatePlayerDying
	g.cue(core.CuePlayerKilled)
}

// addScore adds points up to the ceiling and awards a life every
// ExtraLifeEvery points.
func (g *Game) addScore(points int) {
	if points <= 0 {
		return
	}
	rules := g.cfg.Rules
	if room := rules.ScoreCeiling - g.score; points > room {
		points = room
	}
	g.score += points
	g.extraLifeAcc += points
	for g.extraLifeAcc >= rules.ExtraLifeEvery {
		g.extraLifeAcc -= rules.ExtraLifeEvery
		if g.lives < rules.MaxLives {
			g.lives++
			g.cue(core.CueExtraLife)
		}
	}
}

func (g *Game) cue(c core.Cue) {
	g.cues = append(g.cues, c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Wave:     g.wave,
		Initials: g.submitted,
		GameOver: g.state == StateGameOver,
		Finished: g.finished,
	}
}

// Phase returns the state machine position.
func (g *Game) Phase() (State, OverPhase) {
	return g.state, g.over
}

// Sprites returns the render list for the current tick.
func (g *Game) Sprites() []Sprite {
	showPlayer := g.state != StateGameOver && (!g.player.Dead() || g.player.DeadTimer()/4%2 == 0)
	return g.sprites(showPlayer, g.state == StatePlaying)
}
