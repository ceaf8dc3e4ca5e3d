package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// world is the simulation context shared by the game and the attract demo.
// Each instance owns all of its state, so several can run side by side.
type world struct {
	cfg config.InvadersConfig
	rng *core.LCG

	formation  *Formation
	shields    *Shields
	player     *Player
	bonus      *Bonus
	shots      *Pool // player bullets, at most one in flight
	enemyShots *Pool
}

func newWorld(cfg config.InvadersConfig, seed uint32, enemyPool int) world {
	w := cfg.Screen.Width
	return world{
		cfg:        cfg,
		rng:        core.NewLCG(seed),
		formation:  NewFormation(LayoutFromConfig(cfg.Formation, w)),
		shields:    NewShields(cfg.Shields),
		player:     NewPlayer(cfg.Player, w),
		bonus:      NewBonus(cfg.Bonus, w),
		shots:      NewPool(1),
		enemyShots: NewPool(enemyPool),
	}
}

// firePlayerShot spawns a bullet at the player's muzzle. It reports false
// when a bullet is already in flight.
func (w *world) firePlayerShot() bool {
	pc := w.cfg.Player
	mx, my := w.player.Muzzle()
	return w.shots.Spawn(Projectile{
		X:     mx - pc.BulletWidth/2,
		Y:     my - pc.BulletHeight,
		VY:    -pc.BulletSpeed,
		W:     pc.BulletWidth,
		H:     pc.BulletHeight,
		Owner: OwnerPlayer,
	})
}

// fireEnemyShot spawns a bullet from the bottom of cell (row, col).
func (w *world) fireEnemyShot(row, col, width, speed int) bool {
	mx, my := w.formation.Muzzle(row, col)
	return w.enemyShots.Spawn(Projectile{
		X:     mx - width/2,
		Y:     my,
		VY:    speed,
		W:     width,
		H:     w.cfg.EnemyFire.BulletHeight,
		Owner: OwnerEnemy,
		Style: uint8(w.rng.Intn(len(enemyBulletSprites))),
	})
}

func (w *world) updatePools() {
	w.shots.Update(w.cfg.Screen.Width, w.cfg.Screen.Height)
	w.enemyShots.Update(w.cfg.Screen.Width, w.cfg.Screen.Height)
}

// sprites builds the render list. It only reads state.
func (w *world) sprites(showPlayer, showBonus bool) []Sprite {
	out := make([]Sprite, 0, Rows*Cols+w.shields.Standing()+16)
	out = w.formation.sprites(out)
	out = w.shields.sprites(out)

	if showBonus && w.bonus.Active {
		r := w.bonus.Rect()
		out = append(out, Sprite{ID: SpriteBonus, X: r.X, Y: r.Y, W: r.W, H: r.H, Scale: 1})
	}
	if showPlayer {
		r := w.player.Rect()
		out = append(out, Sprite{ID: SpritePlayer, X: r.X, Y: r.Y, W: r.W, H: r.H, Scale: 1})
	}
	for i := 0; i < w.shots.Cap(); i++ {
		if p := w.shots.At(i); p.Active {
			out = append(out, Sprite{ID: SpritePlayerBullet, X: p.X, Y: p.Y, W: p.W, H: p.H, Scale: 1})
		}
	}
	for i := 0; i < w.enemyShots.Cap(); i++ {
		if p := w.enemyShots.At(i); p.Active {
			id := enemyBulletSprites[int(p.Style)%len(enemyBulletSprites)]
			out = append(out, Sprite{ID: id, X: p.X, Y: p.Y, W: p.W, H: p.H, Scale: 1})
		}
	}
	return out
}
