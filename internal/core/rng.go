package core

// LCG is a small deterministic generator (Numerical Recipes constants).
// Simulations own their generator so replays with the same seed match exactly.
type LCG struct {
	state uint32
}

// NewLCG seeds a generator.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next advances the generator and returns the new state.
func (g *LCG) Next() uint32 {
	g.state = g.state*1664525 + 1013904223
	return g.state
}

// Range returns a value in [lo, hi]. When hi <= lo it returns lo without
// advancing the generator.
func (g *LCG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	span := uint32(hi-lo) + 1
	return lo + int(g.Next()%span)
}

// Intn returns a value in [0, n). n <= 0 yields 0.
func (g *LCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.Next() % uint32(n))
}

// State returns the current state, for snapshots.
func (g *LCG) State() uint32 {
	return g.state
}
