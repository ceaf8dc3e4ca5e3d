package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the cannon at the bottom of the screen. X is the left edge.
type Player struct {
	X, Y int
	W, H int

	minX, maxX    int // allowed range of X
	speed         int
	cooldown      int
	cooldownReset int
	deadTimer     int
}

// NewPlayer creates a player centered on a playfield of width screenW.
func NewPlayer(pc config.PlayerConfig, screenW int) *Player {
	p := &Player{
		Y:             pc.Y,
		W:             pc.Width,
		H:             pc.Height,
		minX:          pc.MarginX,
		maxX:          screenW - pc.MarginX - pc.Width,
		speed:         pc.Speed,
		cooldownReset: pc.FireCooldown,
	}
	p.Respawn()
	return p
}

// Respawn recenters the player and clears its timers.
func (p *Player) Respawn() {
	p.X = core.Clamp((p.minX+p.maxX)/2, p.minX, p.maxX)
	p.cooldown = 0
	p.deadTimer = 0
}

// Update applies one tick of input and reports whether a shot should be
// spawned: only on a fresh press of A or B while the cooldown is zero.
// While dead the player ignores input.
func (p *Player) Update(in core.InputFrame) bool {
	if p.deadTimer > 0 {
		p.deadTimer--
		return false
	}

	p.MoveTo(p.X + in.AxisX()*p.speed)

	if p.cooldown > 0 {
		p.cooldown--
	}
	if p.cooldown != 0 || !(in.JustPressed(core.ButtonA) || in.JustPressed(core.ButtonB)) {
		return false
	}
	p.cooldown = p.cooldownReset
	return true
}

// MoveTo places the left edge at x, clamped to the movement bounds.
func (p *Player) MoveTo(x int) {
	p.X = core.Clamp(x, p.minX, p.maxX)
}

// Kill starts the dead timer.
func (p *Player) Kill(frames int) {
	if frames < 1 {
		frames = 1
	}
	p.deadTimer = frames
}

// Dead reports whether the dead timer is running.
func (p *Player) Dead() bool {
	return p.deadTimer > 0
}

// DeadTimer returns the ticks left before the player may act again.
func (p *Player) DeadTimer() int {
	return p.deadTimer
}

// Cooldown returns the ticks left before the next shot is allowed.
func (p *Player) Cooldown() int {
	return p.cooldown
}

// Rect returns the player's box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// CenterX returns the horizontal center.
func (p *Player) CenterX() int {
	return p.X + p.W/2
}

// Muzzle returns the top-center point a bullet leaves from.
func (p *Player) Muzzle() (int, int) {
	return p.CenterX(), p.Y
}
