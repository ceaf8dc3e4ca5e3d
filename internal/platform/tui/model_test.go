package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// fakeGame finishes after finishAt steps and raises cues on every step.
type fakeGame struct {
	finishAt int
	cues     []core.Cue
	resets   int
	steps    int
	lastIn   core.InputFrame
	state    core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{Lives: 3, Wave: 1}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = in
	g.state.Score = g.steps * 10
	if g.steps >= g.finishAt {
		g.state.GameOver = true
		g.state.Finished = true
		g.state.Initials = "ABC"
	}
	return core.StepResult{State: g.state, Cues: g.cues}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState { return g.state }

type cueLog []core.Cue

func (c *cueLog) Play(cue core.Cue) { *c = append(*c, cue) }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	st, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestModelPlaysCuesAndRecordsRunOnce(t *testing.T) {
	g := &fakeGame{finishAt: 4, cues: []core.Cue{core.CueShot}}
	sink := &cueLog{}
	st := openStore(t)

	m := NewModel(g, Services{Store: st, Sink: sink, Record: true}, testConfig(), false)
	m.Init()
	for range 10 {
		m = tick(t, m)
	}

	if !m.BackToMenu() {
		t.Fatal("finished game did not return to the menu")
	}
	if g.steps != 4 {
		t.Errorf("steps = %d, want 4 (no steps after finishing)", g.steps)
	}
	if len(*sink) != 4 {
		t.Errorf("cues played = %d, want 4", len(*sink))
	}

	runs, err := st.TopRuns("fake", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	if runs[0].Initials != "ABC" || runs[0].Score != 40 || runs[0].Ticks != 4 || runs[0].Wave != 1 {
		t.Errorf("run = %+v", runs[0])
	}
}

func TestModelRestartsWithoutRecording(t *testing.T) {
	g := &fakeGame{finishAt: 3}
	st := openStore(t)

	m := NewModel(g, Services{Store: st}, testConfig(), true)
	m.Init()
	for range 7 {
		m = tick(t, m)
	}

	if m.BackToMenu() || m.IsQuitting() {
		t.Fatal("restarting model left the game")
	}
	if g.resets != 3 {
		t.Errorf("resets = %d, want 3", g.resets)
	}
	if runs, _ := st.TopRuns("fake", 10); len(runs) != 0 {
		t.Errorf("runs = %d with recording off", len(runs))
	}
}

func TestModelInputReachesGame(t *testing.T) {
	g := &fakeGame{finishAt: 100}
	m := NewModel(g, Services{}, testConfig(), false)
	m.Init()

	m = pressKey(t, m, runeKey('a'))
	m = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	if !g.lastIn.IsHeld(core.ButtonLeft) || !g.lastIn.JustPressed(core.ButtonStart) {
		t.Errorf("first frame = %+v, want Left held and Start pressed", g.lastIn)
	}

	m = tick(t, m)
	if g.lastIn.IsHeld(core.ButtonStart) || !g.lastIn.IsHeld(core.ButtonLeft) {
		t.Errorf("second frame = %+v, want only Left held", g.lastIn)
	}
}

func TestModelPause(t *testing.T) {
	g := &fakeGame{finishAt: 100}
	m := NewModel(g, Services{}, testConfig(), false)
	m.Init()

	m = pressKey(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("p did not pause")
	}
	m = tick(t, m)
	m = tick(t, m)
	if g.steps != 0 {
		t.Errorf("steps = %d while paused", g.steps)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view has no PAUSED banner")
	}

	m = pressKey(t, m, runeKey('p'))
	m = tick(t, m)
	if g.steps != 1 {
		t.Errorf("steps = %d after resume, want 1", g.steps)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := NewModel(&fakeGame{finishAt: 100}, Services{}, testConfig(), false)
	m.Init()

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if back := next.(Model); !back.BackToMenu() || back.IsQuitting() || cmd != nil {
		t.Error("esc should go back to the menu without ending the program")
	}

	m.ownProgram = true
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if !next.(Model).BackToMenu() || cmd == nil {
		t.Error("esc should end a program the game owns")
	}

	if quit := pressKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}); !quit.IsQuitting() {
		t.Error("ctrl+c should quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{finishAt: 100}
	m := NewModel(g, Services{}, testConfig(), false)
	m.Init()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	if g.resets != 1 {
		t.Errorf("resets = %d after resize, want 1", g.resets)
	}
	if !strings.HasPrefix(m.View(), "FAKE") {
		t.Error("view does not start with the game output")
	}
}
