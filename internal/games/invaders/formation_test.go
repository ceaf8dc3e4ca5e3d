package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// stepEveryTick is the default layout with a march interval of one tick.
func stepEveryTick() Layout {
	l := LayoutFromConfig(config.DefaultInvadersConfig().Formation, 640)
	l.BaseStepFrames = 1
	l.MinStepFrames = 1
	return l
}

func TestFormationReverseAndDropAtLeftMargin(t *testing.T) {
	f := NewFormation(stepEveryTick())
	f.dir = -1

	for i := 0; i < 35; i++ {
		if ev := f.Update(); ev != FormationMarched {
			t.Fatalf("step %d: event = %v, want Marched", i, ev)
		}
	}
	if left, _ := f.Extents(); left != 22 {
		t.Fatalf("left edge = %d, want 22", left)
	}

	if ev := f.Update(); ev != FormationReversed {
		t.Fatalf("event = %v, want Reversed", ev)
	}
	if x, y := f.Origin(); x != 22 || y != 80 {
		t.Fatalf("origin moved on reverse: (%d,%d)", x, y)
	}
	if f.Direction() != 1 || f.Phase() != Dropping {
		t.Fatalf("dir=%d phase=%v, want 1 Dropping", f.Direction(), f.Phase())
	}

	if ev := f.Update(); ev != FormationDropped {
		t.Fatalf("event = %v, want Dropped", ev)
	}
	if x, y := f.Origin(); x != 22 || y != 92 {
		t.Fatalf("origin after drop = (%d,%d), want (22,92)", x, y)
	}

	if ev := f.Update(); ev != FormationMarched {
		t.Fatalf("event = %v, want Marched", ev)
	}
	if x, _ := f.Origin(); x != 24 {
		t.Fatalf("x after resume = %d, want 24", x)
	}
}

func TestFormationRightBoundIsExclusive(t *testing.T) {
	f := NewFormation(stepEveryTick())
	marched := 0
	for f.Update() == FormationMarched {
		marched++
	}
	if _, right := f.Extents(); right != 618 {
		t.Errorf("right edge = %d, want 618", right)
	}
	if marched != 62 {
		t.Errorf("marched %d steps, want 62", marched)
	}
}

func TestFormationDeadOuterColumnsExtendMarch(t *testing.T) {
	f := NewFormation(stepEveryTick())
	f.dir = -1
	for r := 0; r < Rows; r++ {
		f.Kill(r, 0)
	}
	if c0, _ := f.AliveCols(); c0 != 1 {
		t.Fatalf("leftmost alive column = %d, want 1", c0)
	}
	marched := 0
	for f.Update() == FormationMarched {
		marched++
	}
	// Column 1 starts at 130, so it can travel 54 steps to reach 22.
	if marched != 54 {
		t.Errorf("marched %d steps, want 54", marched)
	}
}

func TestFormationCellsOnlyMoveWithOrigin(t *testing.T) {
	f := NewFormation(stepEveryTick())
	before := f.CellRect(2, 5)
	f.Kill(2, 4)
	f.Kill(0, 0)
	f.Kill(4, 10)
	if got := f.CellRect(2, 5); got != before {
		t.Errorf("cell moved on kill: %+v -> %+v", before, got)
	}
	f.Update()
	want := before
	want.X += 2
	if got := f.CellRect(2, 5); got != want {
		t.Errorf("cell after step = %+v, want %+v", got, want)
	}
}

func TestFormationKill(t *testing.T) {
	f := NewFormation(stepEveryTick())
	tests := []struct {
		row, col int
		killed   bool
		points   int
	}{
		{0, 0, true, 30},
		{1, 0, true, 20},
		{2, 0, true, 20},
		{3, 0, true, 10},
		{4, 0, true, 10},
		{4, 0, false, 0},
		{-1, 0, false, 0},
		{0, Cols, false, 0},
	}
	for _, tt := range tests {
		killed, pts := f.Kill(tt.row, tt.col)
		if killed != tt.killed || pts != tt.points {
			t.Errorf("Kill(%d,%d) = %v,%d want %v,%d", tt.row, tt.col, killed, pts, tt.killed, tt.points)
		}
	}
	if f.Remaining() != Rows*Cols-5 {
		t.Errorf("Remaining() = %d, want %d", f.Remaining(), Rows*Cols-5)
	}
}

func TestFormationSpeedsUpAsItEmpties(t *testing.T) {
	l := LayoutFromConfig(config.DefaultInvadersConfig().Formation, 640)
	f := NewFormation(l)
	if f.StepFrames() != 40 {
		t.Fatalf("initial step frames = %d, want 40", f.StepFrames())
	}
	f.Kill(0, 0)
	if f.StepFrames() != 39 {
		t.Errorf("after one kill = %d, want 39", f.StepFrames())
	}
	prev := f.StepFrames()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			f.Kill(r, c)
			if f.StepFrames() > prev {
				t.Fatalf("interval grew to %d", f.StepFrames())
			}
			prev = f.StepFrames()
		}
	}
	if f.StepFrames() != 6 {
		t.Errorf("empty grid interval = %d, want 6", f.StepFrames())
	}
}

func TestFormationClearedAndReset(t *testing.T) {
	f := NewFormation(stepEveryTick())
	f.Update()
	f.Update()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			f.Kill(r, c)
		}
	}
	if ev := f.Update(); ev != FormationCleared {
		t.Fatalf("event = %v, want Cleared", ev)
	}
	if _, _, ok := f.PickShooter(7); ok {
		t.Error("PickShooter succeeded on an empty grid")
	}
	if _, _, ok := f.PickShooterToward(3, 7); ok {
		t.Error("PickShooterToward succeeded on an empty grid")
	}
	if _, _, ok := f.HitTest(f.CellRect(0, 0)); ok {
		t.Error("HitTest hit a dead cell")
	}

	f.Reset()
	if f.Remaining() != Rows*Cols {
		t.Errorf("Remaining() = %d after Reset", f.Remaining())
	}
	if x, y := f.Origin(); x != 92 || y != 80 {
		t.Errorf("origin after Reset = (%d,%d)", x, y)
	}
}

func TestPickShooterUsesLowestAliveCell(t *testing.T) {
	f := NewFormation(stepEveryTick())
	if row, col, ok := f.PickShooter(3); !ok || row != Rows-1 || col != 3 {
		t.Fatalf("PickShooter(3) = %d,%d,%v", row, col, ok)
	}
	f.Kill(4, 3)
	if row, col, _ := f.PickShooter(3); row != 3 || col != 3 {
		t.Errorf("after kill = %d,%d want 3,3", row, col)
	}
	for r := 0; r < Rows; r++ {
		f.Kill(r, 3)
	}
	if row, col, _ := f.PickShooter(3 + Cols); row != 4 || col != 4 {
		t.Errorf("empty column should probe right: got %d,%d", row, col)
	}
	for r := 0; r < Rows; r++ {
		f.Kill(r, 10)
	}
	if _, col, _ := f.PickShooter(10); col != 0 {
		t.Errorf("probe should wrap to column 0, got %d", col)
	}
}

func TestPickShooterTowardTarget(t *testing.T) {
	f := NewFormation(stepEveryTick())
	if _, col, _ := f.PickShooterToward(5, 0); col != 5 {
		t.Errorf("offset 0 picked column %d, want 5", col)
	}
	if _, col, _ := f.PickShooterToward(5, 2); col != 4 {
		t.Errorf("offset -1 picked column %d, want 4", col)
	}
	for r := 0; r < Rows; r++ {
		f.Kill(r, 5)
	}
	if _, col, _ := f.PickShooterToward(5, 0); col != 6 {
		t.Errorf("dead target should move to column 6, got %d", col)
	}
}

func TestHitTestRowMajorOrder(t *testing.T) {
	f := NewFormation(stepEveryTick())
	a, b := f.CellRect(1, 3), f.CellRect(2, 3)
	span := core.NewRect(a.X, a.Bottom()-2, 2, b.Y-a.Bottom()+4)
	row, col, ok := f.HitTest(span)
	if !ok || row != 1 || col != 3 {
		t.Fatalf("HitTest = %d,%d,%v want 1,3", row, col, ok)
	}
	f.Kill(1, 3)
	if row, _, _ := f.HitTest(span); row != 2 {
		t.Errorf("after kill hit row %d, want 2", row)
	}
	if _, _, ok := f.HitTest(core.NewRect(0, 0, 4, 4)); ok {
		t.Error("hit outside the grid")
	}
}

func TestColumnAt(t *testing.T) {
	f := NewFormation(stepEveryTick())
	tests := []struct{ x, want int }{
		{0, 0}, {92, 0}, {129, 0}, {130, 1}, {92 + 38*10, 10}, {639, 10},
	}
	for _, tt := range tests {
		if got := f.ColumnAt(tt.x); got != tt.want {
			t.Errorf("ColumnAt(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}
