package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Autopilot drives a Player for the attract demo. It patrols between two
// bounds and dodges the nearest enemy bullet coming down on it.
type Autopilot struct {
	cfg config.AttractConfig

	minC, maxC int // patrol bounds for the player's center
	dir        int
	dodgeTimer int
	dodgeTo    int
	frame      int
}

// NewAutopilot creates an autopilot for a playfield of width screenW.
func NewAutopilot(cfg config.AttractConfig, screenW int) *Autopilot {
	a := &Autopilot{
		cfg:  cfg,
		minC: cfg.PatrolMargin,
		maxC: screenW - cfg.PatrolMargin,
		dir:  1,
	}
	if a.maxC < a.minC {
		a.maxC = a.minC
	}
	return a
}

// Dodging reports whether a dodge is in progress.
func (a *Autopilot) Dodging() bool {
	return a.dodgeTimer > 0
}

// Update moves p for one tick and reports whether it should fire.
// bulletActive tells whether the player's own bullet is still in flight.
func (a *Autopilot) Update(p *Player, threats *Pool, bulletActive bool, rng *core.LCG) bool {
	a.frame++
	cx := p.CenterX()

	if a.dodgeTimer == 0 {
		if tx, ok := a.threat(p, threats); ok {
			a.dodgeTimer = a.cfg.DodgeFrames
			if tx < cx {
				a.dodgeTo = cx + a.cfg.DodgeOffset
			} else {
				a.dodgeTo = cx - a.cfg.DodgeOffset
			}
			a.dodgeTo = core.Clamp(a.dodgeTo, a.minC, a.maxC)
		}
	}

	if a.dodgeTimer > 0 {
		step := core.Clamp(a.dodgeTo-cx, -a.cfg.DodgeSpeed, a.cfg.DodgeSpeed)
		cx += step
		a.dodgeTimer--
		if cx == a.dodgeTo {
			a.dodgeTimer = 0
		}
		if a.dodgeTimer == 0 {
			// Resume patrol heading away from whichever bound is closer.
			if cx-a.minC <= a.maxC-cx {
				a.dir = 1
			} else {
				a.dir = -1
			}
		}
	} else {
		cx += a.dir * a.cfg.Speed
		if cx <= a.minC {
			cx, a.dir = a.minC, 1
		}
		if cx >= a.maxC {
			cx, a.dir = a.maxC, -1
		}
	}
	p.MoveTo(cx - p.W/2)

	if p.cooldown > 0 {
		p.cooldown--
	}
	if bulletActive || p.cooldown != 0 {
		return false
	}
	wait := a.cfg.FireWaitMin + rng.Intn(a.cfg.FireWaitRange)
	if wait < 1 || a.frame%wait != 0 {
		return false
	}
	p.cooldown = p.cooldownReset
	return true
}

// threat finds the closest enemy bullet above the player within the
// horizontal threat window and returns its center x.
func (a *Autopilot) threat(p *Player, threats *Pool) (int, bool) {
	cx := p.CenterX()
	best, bestX := -1, 0
	for i := 0; i < threats.Cap(); i++ {
		b := threats.At(i)
		if !b.Active || b.Y >= p.Y {
			continue
		}
		bx := b.X + b.W/2
		if core.Abs(bx-cx) >= a.cfg.ThreatWindow {
			continue
		}
		if dist := p.Y - b.Y; best < 0 || dist < best {
			best, bestX = dist, bx
		}
	}
	return bestX, best >= 0
}
