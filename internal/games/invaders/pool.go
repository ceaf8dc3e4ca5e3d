package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Owner tags who fired a projectile.
type Owner uint8

const (
	OwnerPlayer Owner = iota + 1
	OwnerEnemy
)

// Projectile is a moving axis-aligned box. Velocity is in pixels per tick.
type Projectile struct {
	Active bool
	X, Y   int
	VX, VY int
	W, H   int
	Owner  Owner
	Style  uint8 // visual variant, picked at spawn
}

// Rect returns the projectile's bounding box.
func (p Projectile) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Pool is a fixed-capacity projectile allocator. It knows nothing about
// what its projectiles represent.
type Pool struct {
	slots []Projectile
}

// NewPool creates a pool with at least one slot.
func NewPool(capacity int) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool{slots: make([]Projectile, capacity)}
}

// Spawn copies proto into the first inactive slot. A full pool is left
// untouched and Spawn returns false; callers treat that as a suppressed shot.
func (p *Pool) Spawn(proto Projectile) bool {
	for i := range p.slots {
		if p.slots[i].Active {
			continue
		}
		if proto.W <= 0 {
			proto.W = 1
		}
		if proto.H <= 0 {
			proto.H = 1
		}
		proto.Active = true
		p.slots[i] = proto
		return true
	}
	return false
}

// Update moves every active projectile and retires the ones whose box lies
// fully outside [0,w) x [0,h).
func (p *Pool) Update(w, h int) {
	for i := range p.slots {
		s := &p.slots[i]
		if !s.Active {
			continue
		}
		s.X += s.VX
		s.Y += s.VY
		if s.Rect().OutsideOf(w, h) {
			s.Active = false
		}
	}
}

// KillAll deactivates every projectile.
func (p *Pool) KillAll() {
	for i := range p.slots {
		p.slots[i].Active = false
	}
}

// Kill deactivates slot i.
func (p *Pool) Kill(i int) {
	if i >= 0 && i < len(p.slots) {
		p.slots[i].Active = false
	}
}

// Active returns the number of live projectiles.
func (p *Pool) Active() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Cap returns the number of slots.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// At returns a copy of slot i.
func (p *Pool) At(i int) Projectile {
	return p.slots[i]
}
