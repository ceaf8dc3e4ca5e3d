package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/ledger"
)

// Minimum terminal size the playfield can be drawn in.
const (
	minScreenW = 40
	minScreenH = 16
)

// glyph is how a sprite is drawn in the terminal.
type glyph struct {
	r rune
	c core.Color
}

var glyphs = map[SpriteID]glyph{
	SpritePlayer:        {'▲', core.ColorPlayer},
	SpritePlayerBullet:  {'│', core.ColorBrightWhite},
	SpriteInvaderA:      {'▼', core.ColorBrightMagenta},
	SpriteInvaderA2:     {'▽', core.ColorBrightMagenta},
	SpriteInvaderB:      {'◆', core.ColorBrightCyan},
	SpriteInvaderB2:     {'◇', core.ColorBrightCyan},
	SpriteInvaderC:      {'●', core.ColorBrightYellow},
	SpriteInvaderC2:     {'○', core.ColorBrightYellow},
	SpriteBulletZigzag:  {'ϟ', core.ColorEnemyFx},
	SpriteBulletPlunger: {'┃', core.ColorEnemyFx},
	SpriteBulletRolling: {'¦', core.ColorEnemyFx},
	SpriteBonus:         {'◉', core.ColorBonus},
	SpriteShieldTile:    {'█', core.ColorShield},
}

// viewport maps simulation pixels onto the playfield rows of a screen. Row 0
// holds the HUD and the last row the lives line.
type viewport struct {
	simW, simH int
	cols, rows int
}

func newViewport(simW, simH int, dst *core.Screen) viewport {
	return viewport{simW: max(simW, 1), simH: max(simH, 1), cols: dst.Width(), rows: dst.Height() - 2}
}

// cell converts a simulation rect to the cell rect covering it. Anything
// visible occupies at least one cell.
func (v viewport) cell(x, y, w, h int) core.Rect {
	cx := x * v.cols / v.simW
	cy := y * v.rows / v.simH
	cr := (x + w) * v.cols / v.simW
	cb := (y + h) * v.rows / v.simH
	return core.NewRect(cx, cy+1, max(cr-cx, 1), max(cb-cy, 1))
}

func (v viewport) y(simY int) int {
	return simY*v.rows/v.simH + 1
}

// drawSprites rasterizes the render list.
func drawSprites(dst *core.Screen, v viewport, list []Sprite) {
	for _, s := range list {
		g, ok := glyphs[s.ID]
		if !ok {
			continue
		}
		dst.DrawRect(v.cell(s.X, s.Y, s.W, s.H), g.r, g.c)
	}
}

// drawTooSmall reports whether the screen cannot fit the playfield and, if
// so, draws a hint instead.
func drawTooSmall(dst *core.Screen) bool {
	if dst.Width() >= minScreenW && dst.Height() >= minScreenH {
		return false
	}
	dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorHUD)
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDim)
	return true
}

// drawTable draws the high score table centered on the screen. Row
// highlight is marked, or -1 for none.
func drawTable(dst *core.Screen, entries []ledger.Entry, highlight int) {
	top := max(1, (dst.Height()-ledger.Size-4)/2)
	dst.DrawTextCentered(top, "HIGH SCORES", core.ColorBrightYellow)
	for i, e := range entries {
		c := core.ColorHUD
		if i == highlight {
			c = core.ColorBrightGreen
		}
		dst.DrawTextCentered(top+2+i, fmt.Sprintf("%2d. %s %10d", i+1, e.Initials, e.Score), c)
	}
}

// Render draws the current tick into dst. It only reads game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if drawTooSmall(dst) {
		return
	}

	if g.state == StateGameOver && g.over == OverShowingTable {
		drawTable(dst, g.table.Entries(), g.rank)
		dst.DrawTextCentered(dst.Height()-1, "Press Enter to continue", core.ColorDim)
		return
	}

	v := newViewport(g.cfg.Screen.Width, g.cfg.Screen.Height, dst)
	drawSprites(dst, v, g.Sprites())

	// Invasion line.
	ly := v.y(g.cfg.Formation.InvasionLine)
	for x := 0; x < dst.Width(); x++ {
		if dst.Get(x, ly) == ' ' {
			dst.SetColored(x, ly, '·', core.ColorDim)
		}
	}

	g.renderHUD(dst)

	mid := dst.Height() / 2
	switch g.state {
	case StateReady:
		dst.DrawTextCentered(mid, fmt.Sprintf("WAVE %d", g.wave), core.ColorBrightYellow)
		dst.DrawTextCentered(mid+1, "READY", core.ColorHUD)
	case StateGameOver:
		name, cursor := g.EntryCursor()
		dst.DrawTextCentered(mid-2, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(mid, "NEW HIGH SCORE! ENTER YOUR INITIALS", core.ColorHUD)
		dst.DrawTextCentered(mid+2, strings.Join(strings.Split(name, ""), " "), core.ColorBrightYellow)
		marker := []rune("     ")
		marker[cursor*2] = '^'
		dst.DrawTextCentered(mid+3, string(marker), core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %06d", g.score), core.ColorHUD)
	dst.DrawTextCentered(0, fmt.Sprintf("HI %06d", max(g.score, g.table.Entries()[0].Score)), core.ColorHUD)
	wave := fmt.Sprintf("WAVE %d", g.wave)
	dst.DrawTextColored(dst.Width()-len(wave)-1, 0, wave, core.ColorHUD)

	lives := fmt.Sprintf("LIVES %d ", g.lives) + strings.Repeat("▲", max(0, min(g.lives-1, g.cfg.Rules.MaxLives)))
	dst.DrawTextColored(1, dst.Height()-1, lives, core.ColorPlayer)
}

// Render draws the current demo frame into dst.
func (a *Attract) Render(dst *core.Screen) {
	dst.Clear()
	if drawTooSmall(dst) {
		return
	}

	if a.ShowingTable() {
		drawTable(dst, a.table.Entries(), -1)
		dst.DrawTextCentered(dst.Height()-1, "Press any key", core.ColorDim)
		return
	}

	v := newViewport(a.cfg.Screen.Width, a.cfg.Screen.Height, dst)
	drawSprites(dst, v, a.Sprites())

	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %06d", a.score), core.ColorHUD)
	dst.DrawTextCentered(0, "DEMO", core.ColorBrightYellow)
	if a.frame/30%2 == 0 {
		dst.DrawTextCentered(dst.Height()-1, "PRESS ANY KEY", core.ColorDim)
	}
}
