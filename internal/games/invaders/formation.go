package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Formation grid size.
const (
	Rows = 5
	Cols = 11
)

// Phase is the march state of the formation.
type Phase uint8

const (
	// Marching moves the formation sideways on every step.
	Marching Phase = iota
	// Dropping moves it down once on the next step, then back to Marching.
	Dropping
)

// FormationEvent reports what Update did.
type FormationEvent uint8

const (
	FormationIdle     FormationEvent = iota // step timer still running
	FormationMarched                        // moved one horizontal step
	FormationReversed                       // hit a margin: direction flipped, drop queued
	FormationDropped                        // applied the queued drop
	FormationCleared                        // no enemy is alive
)

// Layout is the geometry and timing a formation is built from. Sprite
// metrics come from configuration, never from renderer assets.
type Layout struct {
	OriginX, OriginY int
	CellW, CellH     int // enemy sprite size
	PitchX, PitchY   int // distance between neighbouring cell origins
	StepX, StepDown  int
	BoundLeft        int // leftmost allowed x
	BoundRight       int // exclusive right limit
	BaseStepFrames   int
	MinStepFrames    int
}

// LayoutFromConfig builds a Layout for a playfield of the given width.
func LayoutFromConfig(fc config.FormationConfig, screenW int) Layout {
	return Layout{
		OriginX:        fc.OriginX,
		OriginY:        fc.OriginY,
		CellW:          fc.EnemyWidth,
		CellH:          fc.EnemyHeight,
		PitchX:         fc.EnemyWidth + fc.GapX,
		PitchY:         fc.EnemyHeight + fc.GapY,
		StepX:          fc.StepX,
		StepDown:       fc.StepDown,
		BoundLeft:      fc.MarginLeft,
		BoundRight:     screenW - fc.MarginRight,
		BaseStepFrames: fc.BaseStepFrames,
		MinStepFrames:  fc.MinStepFrames,
	}
}

// Formation is the 5x11 enemy grid. Cell positions are always derived from
// the grid origin, so alive cells only move when the grid steps.
type Formation struct {
	layout Layout

	originX, originY int
	dir              int
	phase            Phase
	stepFrames       int
	timer            int
	animFrame        int

	alive     [Rows * Cols]bool
	remaining int
	minCol    int
	maxCol    int
}

// NewFormation creates a formation and resets it.
func NewFormation(layout Layout) *Formation {
	if layout.MinStepFrames < 1 {
		layout.MinStepFrames = 1
	}
	if layout.BaseStepFrames < layout.MinStepFrames {
		layout.BaseStepFrames = layout.MinStepFrames
	}
	f := &Formation{layout: layout}
	f.Reset()
	return f
}

// Reset revives every cell, returns the grid to its origin and restores the
// baseline march interval.
func (f *Formation) Reset() {
	for i := range f.alive {
		f.alive[i] = true
	}
	f.remaining = Rows * Cols
	f.originX = f.layout.OriginX
	f.originY = f.layout.OriginY
	f.dir = 1
	f.phase = Marching
	f.stepFrames = f.layout.BaseStepFrames
	f.timer = f.stepFrames
	f.animFrame = 0
	f.recomputeAliveCols()
}

// Update advances the step timer and, when it elapses, performs one step.
// Clearing the grid is reported, never acted upon.
func (f *Formation) Update() FormationEvent {
	if f.remaining <= 0 {
		return FormationCleared
	}

	f.timer--
	if f.timer > 0 {
		return FormationIdle
	}
	f.timer = f.stepFrames
	f.animFrame ^= 1

	if f.phase == Dropping {
		f.originY += f.layout.StepDown
		f.phase = Marching
		return FormationDropped
	}

	left, right := f.Extents()
	next := f.dir * f.layout.StepX
	if (f.dir < 0 && left+next < f.layout.BoundLeft) || (f.dir > 0 && right+next > f.layout.BoundRight) {
		f.dir = -f.dir
		f.phase = Dropping
		return FormationReversed
	}

	f.originX += next
	return FormationMarched
}

// Kill destroys the cell at (row, col). Killing a dead or out-of-range cell
// changes nothing and awards zero points.
func (f *Formation) Kill(row, col int) (bool, int) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return false, 0
	}
	i := row*Cols + col
	if !f.alive[i] {
		return false, 0
	}

	f.alive[i] = false
	f.remaining--
	f.recomputeAliveCols()
	f.speedup()
	return true, enemyKinds[kindOfRow(row)].Points
}

// speedup moves the step interval toward the floor in proportion to the
// number of enemies already destroyed.
func (f *Formation) speedup() {
	lo, hi := f.layout.MinStepFrames, f.layout.BaseStepFrames
	f.stepFrames = lo + (hi-lo)*f.remaining/(Rows*Cols)
	if f.timer > f.stepFrames {
		f.timer = f.stepFrames
	}
}

func (f *Formation) recomputeAliveCols() {
	f.minCol, f.maxCol = Cols, -1
	for c := 0; c < Cols; c++ {
		if f.lowestAlive(c) < 0 {
			continue
		}
		if c < f.minCol {
			f.minCol = c
		}
		if c > f.maxCol {
			f.maxCol = c
		}
	}
	if f.maxCol < 0 {
		f.minCol, f.maxCol = 0, 0
	}
}

// lowestAlive returns the bottom-most living row of column c, or -1.
func (f *Formation) lowestAlive(c int) int {
	for r := Rows - 1; r >= 0; r-- {
		if f.alive[r*Cols+c] {
			return r
		}
	}
	return -1
}

// PickShooter chooses a column from seed, probes rightward with wraparound
// for one that has a living cell, and returns that column's bottom-most
// living cell. It fails when nothing is alive.
func (f *Formation) PickShooter(seed uint32) (row, col int, ok bool) {
	if f.remaining <= 0 {
		return 0, 0, false
	}
	start := int(seed % Cols)
	for i := 0; i < Cols; i++ {
		c := (start + i) % Cols
		if r := f.lowestAlive(c); r >= 0 {
			return r, c, true
		}
	}
	return 0, 0, false
}

// aimOffsets are the column offsets probed around an aimed shot.
var aimOffsets = [...]int{0, 1, -1, 2, -2, 3, -3, 4, -4}

// PickShooterToward biases the shot toward column target: it probes the
// columns around target (with wraparound), starting at an offset chosen by
// seed, and falls back to PickShooter when none of them has a living cell.
func (f *Formation) PickShooterToward(target int, seed uint32) (row, col int, ok bool) {
	if f.remaining <= 0 {
		return 0, 0, false
	}
	start := int(seed % uint32(len(aimOffsets)))
	for t := range aimOffsets {
		c := ((target+aimOffsets[(start+t)%len(aimOffsets)])%Cols + Cols) % Cols
		if r := f.lowestAlive(c); r >= 0 {
			return r, c, true
		}
	}
	return f.PickShooter(seed)
}

// HitTest returns the first living cell overlapping r, scanning rows top to
// bottom and columns left to right.
func (f *Formation) HitTest(r core.Rect) (row, col int, ok bool) {
	if f.remaining <= 0 {
		return 0, 0, false
	}
	left, right := f.Extents()
	box := core.NewRect(left, f.originY, right-left, f.Bottom()-f.originY)
	if !box.Intersects(r) {
		return 0, 0, false
	}
	for row = 0; row < Rows; row++ {
		for col = 0; col < Cols; col++ {
			if f.alive[row*Cols+col] && f.CellRect(row, col).Intersects(r) {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// ColumnAt returns the grid column under pixel x, clamped to the grid.
func (f *Formation) ColumnAt(x int) int {
	if f.layout.PitchX <= 0 {
		return 0
	}
	d := x - f.originX
	if d < 0 {
		return 0
	}
	return core.Clamp(d/f.layout.PitchX, 0, Cols-1)
}

// Alive reports whether the cell at (row, col) is alive.
func (f *Formation) Alive(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return false
	}
	return f.alive[row*Cols+col]
}

// CellRect returns the box of the cell at (row, col), alive or not.
func (f *Formation) CellRect(row, col int) core.Rect {
	return core.NewRect(
		f.originX+col*f.layout.PitchX,
		f.originY+row*f.layout.PitchY,
		f.layout.CellW,
		f.layout.CellH,
	)
}

// Muzzle returns where a shot fired by the cell leaves it: bottom center.
func (f *Formation) Muzzle(row, col int) (int, int) {
	r := f.CellRect(row, col)
	return r.X + r.W/2, r.Bottom()
}

// Extents returns the left edge of the leftmost alive column and the right
// edge of the rightmost alive column. Dead outer columns do not count.
func (f *Formation) Extents() (left, right int) {
	left = f.originX + f.minCol*f.layout.PitchX
	right = f.originX + f.maxCol*f.layout.PitchX + f.layout.CellW
	return left, right
}

// Bottom returns the bottom edge of the lowest alive row, or the origin
// when nothing is alive.
func (f *Formation) Bottom() int {
	for r := Rows - 1; r >= 0; r-- {
		for c := 0; c < Cols; c++ {
			if f.alive[r*Cols+c] {
				return f.originY + r*f.layout.PitchY + f.layout.CellH
			}
		}
	}
	return f.originY
}

// AliveCols returns the cached leftmost and rightmost living columns.
func (f *Formation) AliveCols() (int, int) {
	return f.minCol, f.maxCol
}

// Remaining returns the number of living cells.
func (f *Formation) Remaining() int { return f.remaining }

// Direction returns +1 when marching right and -1 when marching left.
func (f *Formation) Direction() int { return f.dir }

// Phase returns the march phase.
func (f *Formation) Phase() Phase { return f.phase }

// StepFrames returns the current march interval in ticks.
func (f *Formation) StepFrames() int { return f.stepFrames }

// Origin returns the top-left of cell (0, 0).
func (f *Formation) Origin() (int, int) { return f.originX, f.originY }

// Kind returns what a row is made of.
func (f *Formation) Kind(row int) EnemyKind {
	return enemyKinds[kindOfRow(row)]
}

// sprites appends the alive cells to the render list.
func (f *Formation) sprites(dst []Sprite) []Sprite {
	for r := 0; r < Rows; r++ {
		anim := f.Kind(r).Anim
		for c := 0; c < Cols; c++ {
			if !f.alive[r*Cols+c] {
				continue
			}
			rect := f.CellRect(r, c)
			dst = append(dst, Sprite{
				ID: anim.Frame(f.animFrame), X: rect.X, Y: rect.Y, W: rect.W, H: rect.H, Scale: 1,
			})
		}
	}
	return dst
}
