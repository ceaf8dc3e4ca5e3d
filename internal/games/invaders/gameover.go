package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// enterGameOver ends the run. A qualifying score goes to initials entry,
// anything else straight to the table.
func (g *Game) enterGameOver() {
	g.state = StateGameOver
	g.shots.KillAll()
	g.enemyShots.KillAll()
	g.bonus.Active = false

	if g.table.Qualifies(g.score) {
		g.over = OverEnteringInitials
		g.initials = [3]byte{'A', 'A', 'A'}
		g.cursor = 0
	} else {
		g.over = OverShowingTable
	}
	g.logger.Info("game over", "score", g.score, "wave", g.wave, "qualifies", g.over == OverEnteringInitials)
}

func (g *Game) stepGameOver(in core.InputFrame) {
	if g.over == OverShowingTable {
		if in.JustPressed(core.ButtonStart) {
			g.finished = true
		}
		return
	}

	switch {
	case in.JustPressed(core.ButtonStart):
		g.submitInitials()
		return
	case in.JustPressed(core.ButtonA) || in.JustPressed(core.ButtonB):
		if g.cursor < len(g.initials)-1 {
			g.cursor++
		} else {
			g.submitInitials()
		}
		return
	}

	if in.JustPressed(core.ButtonLeft) {
		g.cursor = max(0, g.cursor-1)
	}
	if in.JustPressed(core.ButtonRight) {
		g.cursor = min(len(g.initials)-1, g.cursor+1)
	}
	if in.JustPressed(core.ButtonUp) {
		g.initials[g.cursor] = 'A' + (g.initials[g.cursor]-'A'+1)%26
	}
	if in.JustPressed(core.ButtonDown) {
		g.initials[g.cursor] = 'A' + (g.initials[g.cursor]-'A'+25)%26
	}
}

// submitInitials records the score and shows the table. The whole change
// happens within one tick.
func (g *Game) submitInitials() {
	name := string(g.initials[:])
	rank, ok := g.table.Submit(name, g.score)
	g.submitted = name
	if ok {
		g.rank = rank
	}
	g.over = OverShowingTable
}

// EntryCursor returns the initials being entered and the selected slot.
func (g *Game) EntryCursor() (string, int) {
	return string(g.initials[:]), g.cursor
}

// Rank returns the zero-based ledger rank of this run, or -1.
func (g *Game) Rank() int {
	return g.rank
}
