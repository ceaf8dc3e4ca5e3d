package core

import "testing"

func TestLCGSequence(t *testing.T) {
	g := NewLCG(0)
	// 0*1664525 + 1013904223, then one more step with uint32 wraparound.
	if got := g.Next(); got != 1013904223 {
		t.Fatalf("first value = %d", got)
	}
	if got := g.Next(); got != 1196435762 {
		t.Fatalf("second value = %d", got)
	}
}

func TestLCGDeterministic(t *testing.T) {
	a, b := NewLCG(0xC0FFEE01), NewLCG(0xC0FFEE01)
	for i := 0; i < 1000; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestLCGRange(t *testing.T) {
	g := NewLCG(42)
	for i := 0; i < 5000; i++ {
		v := g.Range(240, 420)
		if v < 240 || v > 420 {
			t.Fatalf("Range(240, 420) = %d", v)
		}
	}

	before := g.State()
	if v := g.Range(7, 7); v != 7 {
		t.Errorf("Range(7, 7) = %d", v)
	}
	if g.State() != before {
		t.Error("degenerate Range must not advance the generator")
	}
	if v := g.Intn(0); v != 0 {
		t.Errorf("Intn(0) = %d", v)
	}
}
