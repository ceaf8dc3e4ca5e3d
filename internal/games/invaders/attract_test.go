package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func TestAttractRunsToTableAndFinishes(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	a := NewAttract(cfg, nil)
	at := cfg.Attract

	for i := 0; i < at.DurationFrames-at.TableFrames-1; i++ {
		a.Step(core.InputFrame{})
		if a.player.Dead() {
			t.Fatal("demo player died")
		}
	}
	if a.ShowingTable() {
		t.Fatal("table shown too early")
	}
	a.Step(core.InputFrame{})
	if !a.ShowingTable() || len(a.Sprites()) != 0 {
		t.Fatal("expected the closing table")
	}

	for i := 0; i < at.TableFrames-1; i++ {
		a.Step(core.InputFrame{})
	}
	if a.State().Finished {
		t.Fatal("finished one tick early")
	}
	a.Step(core.InputFrame{})
	if !a.State().Finished {
		t.Fatal("demo did not finish")
	}
}

func TestAttractAnyPressExits(t *testing.T) {
	for _, b := range core.AllButtons {
		a := NewAttract(config.DefaultInvadersConfig(), nil)
		a.Step(core.InputFrame{})
		a.Step(press(b))
		if !a.State().Finished {
			t.Errorf("%v did not end the demo", b)
		}
	}
}

func TestAttractUsesConstantMarch(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	a := NewAttract(cfg, nil)
	a.formation.Kill(0, 0)
	if a.formation.StepFrames() != cfg.Attract.StepFrames {
		t.Errorf("step frames = %d, want %d", a.formation.StepFrames(), cfg.Attract.StepFrames)
	}
	if a.enemyShots.Cap() != cfg.Attract.PoolSize {
		t.Errorf("pool = %d, want %d", a.enemyShots.Cap(), cfg.Attract.PoolSize)
	}
}

func TestAttractRefillsClearedFormation(t *testing.T) {
	a := NewAttract(config.DefaultInvadersConfig(), nil)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			a.formation.Kill(r, c)
		}
	}
	a.Step(core.InputFrame{})
	if a.formation.Remaining() != Rows*Cols {
		t.Errorf("Remaining() = %d, want a fresh grid", a.formation.Remaining())
	}
}

func TestRegisteredModes(t *testing.T) {
	for _, id := range []string{"invaders", "attract"} {
		g, err := registry.Create(id, registry.Deps{Preset: config.DifficultyEasy})
		if err != nil {
			t.Fatalf("Create(%s): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
	g, _ := registry.Create("invaders", registry.Deps{Preset: config.DifficultyEasy})
	if g.State().Lives != 5 {
		t.Errorf("easy preset lives = %d, want 5", g.State().Lives)
	}
}
