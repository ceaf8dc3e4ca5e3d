package invaders

// Snapshot contains the simulation state that determines future ticks.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick   uint64
	State  int
	Over   int
	Timer  int
	Score  int
	Lives  int
	Wave   int
	ExtraA int // extra-life accumulator
	ShotT  int // enemy shot timer

	OriginX, OriginY int
	Direction        int
	Phase            int
	StepFrames       int
	Alive            []int // 1 per living cell, row-major

	PlayerX        int
	PlayerCooldown int
	PlayerDead     int

	BonusActive int
	BonusX      int
	BonusTimer  int

	Shields []int
	Shots   []int // each projectile is 5 ints: Active, X, Y, VY, Style

	RNGState uint32
}

func flattenPool(p *Pool, dst []int) []int {
	for i := 0; i < p.Cap(); i++ {
		s := p.At(i)
		active := 0
		if s.Active {
			active = 1
		}
		dst = append(dst, active, s.X, s.Y, s.VY, int(s.Style))
	}
	return dst
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	alive := make([]int, 0, Rows*Cols)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			v := 0
			if g.formation.Alive(r, c) {
				v = 1
			}
			alive = append(alive, v)
		}
	}

	shields := make([]int, 0, len(g.shields.tiles))
	for _, t := range g.shields.tiles {
		v := 0
		if t {
			v = 1
		}
		shields = append(shields, v)
	}

	shots := flattenPool(g.shots, nil)
	shots = flattenPool(g.enemyShots, shots)

	ox, oy := g.formation.Origin()
	bonus := 0
	if g.bonus.Active {
		bonus = 1
	}

	return Snapshot{
		Tick:   g.tick,
		State:  int(g.state),
		Over:   int(g.over),
		Timer:  g.stateTimer,
		Score:  g.score,
		Lives:  g.lives,
		Wave:   g.wave,
		ExtraA: g.extraLifeAcc,
		ShotT:  g.shotTimer,

		OriginX:    ox,
		OriginY:    oy,
		Direction:  g.formation.Direction(),
		Phase:      int(g.formation.Phase()),
		StepFrames: g.formation.StepFrames(),
		Alive:      alive,

		PlayerX:        g.player.X,
		PlayerCooldown: g.player.Cooldown(),
		PlayerDead:     g.player.DeadTimer(),

		BonusActive: bonus,
		BonusX:      g.bonus.X,
		BonusTimer:  g.bonus.Timer(),

		Shields: shields,
		Shots:   shots,

		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.State, snap.Over, snap.Timer, snap.Score, snap.Lives, snap.Wave, snap.ExtraA, snap.ShotT,
		snap.OriginX, snap.OriginY, snap.Direction, snap.Phase, snap.StepFrames,
		snap.PlayerX, snap.PlayerCooldown, snap.PlayerDead,
		snap.BonusActive, snap.BonusX, snap.BonusTimer,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Alive {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Shields {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Shots {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.RNGState)
	return h
}
