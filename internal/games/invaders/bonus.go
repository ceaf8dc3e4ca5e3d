package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Bonus is the high-value target that crosses the top of the screen.
type Bonus struct {
	cfg     config.BonusConfig
	screenW int

	Active bool
	X      int
	dir    int
	timer  int
}

// NewBonus creates an inactive bonus target.
func NewBonus(cfg config.BonusConfig, screenW int) *Bonus {
	return &Bonus{cfg: cfg, screenW: screenW}
}

// Arm deactivates the target and starts the wave-start idle timer.
func (b *Bonus) Arm(rng *core.LCG) {
	b.Active = false
	b.timer = rng.Range(b.cfg.SpawnMin, b.cfg.SpawnMax)
}

// Update advances the target by one tick and reports whether it appeared.
// Once it has fully left the far edge it re-arms with the respawn range.
func (b *Bonus) Update(rng *core.LCG) bool {
	if !b.Active {
		if b.timer > 0 {
			b.timer--
			return false
		}
		b.Active = true
		if rng.Next()&1 == 0 {
			b.dir = 1
			b.X = -b.cfg.Margin
		} else {
			b.dir = -1
			b.X = b.screenW + b.cfg.Margin
		}
		return true
	}

	b.X += b.dir * b.cfg.Speed
	if (b.dir > 0 && b.X > b.screenW+b.cfg.Margin) || (b.dir < 0 && b.X < -b.cfg.Margin) {
		b.Active = false
		b.timer = rng.Range(b.cfg.RespawnMin, b.cfg.RespawnMax)
	}
	return false
}

// Hit retires the target after being shot and returns the points it is worth.
func (b *Bonus) Hit(rng *core.LCG) int {
	b.Active = false
	b.timer = rng.Range(b.cfg.RespawnMin, b.cfg.RespawnMax)
	return b.cfg.Points[rng.Intn(len(b.cfg.Points))]
}

// Rect returns the target's box.
func (b *Bonus) Rect() core.Rect {
	return core.NewRect(b.X, b.cfg.Y, b.cfg.Width, b.cfg.Height)
}

// Timer returns the ticks left before the target appears.
func (b *Bonus) Timer() int {
	return b.timer
}

// Direction returns the travel direction of an active target.
func (b *Bonus) Direction() int {
	return b.dir
}
