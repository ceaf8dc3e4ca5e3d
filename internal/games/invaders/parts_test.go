package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func press(b core.Button) core.InputFrame {
	return core.InputFrame{Held: core.Buttons(b), Pressed: core.Buttons(b)}
}

func hold(b core.Button) core.InputFrame {
	return core.InputFrame{Held: core.Buttons(b)}
}

func TestShieldsHitDestroysOneTile(t *testing.T) {
	s := NewShields(config.DefaultInvadersConfig().Shields)
	total := s.Standing()
	if total != 4*6*3 {
		t.Fatalf("Standing() = %d, want 72", total)
	}

	// Straddles tiles (0,0) and (0,1) of the first barrier.
	r := core.NewRect(92+14, 362, 4, 4)
	if !s.Hit(r) {
		t.Fatal("expected a hit")
	}
	if s.Alive(0, 0, 0) || !s.Alive(0, 0, 1) {
		t.Error("expected only tile (0,0) destroyed")
	}
	if !s.Hit(r) || s.Alive(0, 0, 1) {
		t.Error("second hit should take tile (0,1)")
	}
	if s.Standing() != total-2 {
		t.Errorf("Standing() = %d, want %d", s.Standing(), total-2)
	}

	if s.Hit(core.NewRect(0, 0, 4, 4)) {
		t.Error("hit far from any barrier")
	}

	s.Reset()
	if s.Standing() != total {
		t.Error("Reset did not restore tiles")
	}
}

func TestPlayerMovesAndClamps(t *testing.T) {
	p := NewPlayer(config.DefaultInvadersConfig().Player, 640)
	if p.X != 307 {
		t.Fatalf("spawn X = %d, want 307", p.X)
	}
	p.Update(hold(core.ButtonLeft))
	if p.X != 304 {
		t.Errorf("after left X = %d, want 304", p.X)
	}
	p.Update(core.InputFrame{Held: core.Buttons(core.ButtonLeft).With(core.ButtonRight)})
	if p.X != 304 {
		t.Errorf("opposing buttons moved the player to %d", p.X)
	}
	p.MoveTo(-50)
	if p.X != 2 {
		t.Errorf("left clamp = %d, want 2", p.X)
	}
	p.MoveTo(1000)
	if p.X != 612 {
		t.Errorf("right clamp = %d, want 612", p.X)
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	p := NewPlayer(config.DefaultInvadersConfig().Player, 640)
	if !p.Update(press(core.ButtonA)) {
		t.Fatal("first press should fire")
	}
	if p.Cooldown() != 10 {
		t.Fatalf("Cooldown() = %d, want 10", p.Cooldown())
	}
	if p.Update(hold(core.ButtonA)) {
		t.Error("holding the button must not fire")
	}
	for i := 0; i < 7; i++ {
		p.Update(core.InputFrame{})
	}
	if p.Cooldown() != 2 {
		t.Fatalf("Cooldown() = %d, want 2", p.Cooldown())
	}
	if p.Update(press(core.ButtonB)) {
		t.Error("fired during cooldown")
	}
	if !p.Update(press(core.ButtonB)) {
		t.Error("B should fire once the cooldown is over")
	}
}

func TestPlayerIgnoresInputWhileDead(t *testing.T) {
	p := NewPlayer(config.DefaultInvadersConfig().Player, 640)
	p.Kill(2)
	x := p.X
	if p.Update(press(core.ButtonA)) || p.X != x {
		t.Error("dead player acted")
	}
	p.Update(hold(core.ButtonLeft))
	if p.Dead() {
		t.Error("dead timer should have run out")
	}
	if p.X != x {
		t.Error("moved on the last dead tick")
	}
}

func TestBonusLifecycle(t *testing.T) {
	cfg := config.DefaultInvadersConfig().Bonus
	rng := core.NewLCG(1)
	b := NewBonus(cfg, 640)
	b.Arm(rng)
	if b.Timer() < cfg.SpawnMin || b.Timer() > cfg.SpawnMax {
		t.Fatalf("Timer() = %d outside spawn range", b.Timer())
	}

	appeared := 0
	for i := 0; i <= cfg.SpawnMax; i++ {
		if b.Update(rng) {
			appeared++
		}
	}
	if appeared != 1 || !b.Active {
		t.Fatalf("appeared %d times, active=%v", appeared, b.Active)
	}
	if b.Direction() == 1 && b.X < -cfg.Margin || b.Direction() == -1 && b.X > 640+cfg.Margin {
		t.Errorf("X = %d outside the entry margin", b.X)
	}

	b.X, b.dir = 640+cfg.Margin-1, 1
	b.Update(rng)
	if b.Active {
		t.Error("expected despawn past the far margin")
	}
	if b.Timer() < cfg.RespawnMin || b.Timer() > cfg.RespawnMax {
		t.Errorf("Timer() = %d outside respawn range", b.Timer())
	}
}

func TestBonusHitAwardsConfiguredPoints(t *testing.T) {
	cfg := config.DefaultInvadersConfig().Bonus
	rng := core.NewLCG(9)
	b := NewBonus(cfg, 640)
	for i := 0; i < 50; i++ {
		b.Active = true
		pts := b.Hit(rng)
		if b.Active {
			t.Fatal("target still active after hit")
		}
		found := false
		for _, p := range cfg.Points {
			found = found || p == pts
		}
		if !found {
			t.Fatalf("points %d not in %v", pts, cfg.Points)
		}
	}
}

func TestAutopilotDodgesIncomingBullet(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	p := NewPlayer(cfg.Player, 640)
	a := NewAutopilot(cfg.Attract, 640)
	threats := NewPool(2)
	threats.Spawn(Projectile{X: 330, Y: 300, W: 3, H: 8, VY: 4, Owner: OwnerEnemy})

	a.Update(p, threats, true, core.NewLCG(1))
	if !a.Dodging() {
		t.Fatal("expected a dodge")
	}
	if p.CenterX() != 317 {
		t.Errorf("center = %d, want 317 (moving away)", p.CenterX())
	}
}

func TestAutopilotPatrolsWithoutThreats(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	p := NewPlayer(cfg.Player, 640)
	a := NewAutopilot(cfg.Attract, 640)
	empty := NewPool(1)
	rng := core.NewLCG(1)

	a.Update(p, empty, true, rng)
	if p.CenterX() != 322 {
		t.Errorf("center = %d, want 322", p.CenterX())
	}
	for i := 0; i < 1000; i++ {
		if a.Update(p, empty, true, rng) {
			t.Fatal("fired while its bullet was in flight")
		}
		if c := p.CenterX(); c < cfg.Attract.PatrolMargin || c > 640-cfg.Attract.PatrolMargin {
			t.Fatalf("center %d left the patrol range", c)
		}
	}

	fired := false
	for i := 0; i < 1000 && !fired; i++ {
		fired = a.Update(p, empty, false, rng)
	}
	if !fired {
		t.Error("autopilot never fired")
	}
}

// collisionWorld puts the bonus row, the first formation row and the first
// shield row on top of each other.
func collisionWorld() world {
	cfg := config.DefaultInvadersConfig()
	cfg.Bonus.Y = cfg.Formation.OriginY
	cfg.Shields.Y = cfg.Formation.OriginY
	cfg.Shields.X = cfg.Formation.OriginX
	w := newWorld(cfg, 1, 3)
	w.bonus.Active = true
	w.bonus.X = cfg.Formation.OriginX
	return w
}

func TestPlayerShotPrefersBonusThenFormation(t *testing.T) {
	w := collisionWorld()
	shot := Projectile{X: 95, Y: 82, W: 2, H: 10, VY: -6, Owner: OwnerPlayer}

	w.shots.Spawn(shot)
	hits := w.resolvePlayerShots(true, nil)
	if len(hits) != 1 || hits[0].Kind != HitBonus {
		t.Fatalf("hits = %+v, want one bonus hit", hits)
	}
	if w.bonus.Active || !w.formation.Alive(0, 0) || w.shots.Active() != 0 {
		t.Fatal("bonus hit should consume the bullet and nothing else")
	}

	w.bonus.Active = true
	w.shots.Spawn(shot)
	hits = w.resolvePlayerShots(false, nil)
	if len(hits) != 1 || hits[0].Kind != HitEnemy || hits[0].Points != 30 {
		t.Fatalf("hits = %+v, want enemy hit worth 30", hits)
	}
	if w.formation.Alive(0, 0) || w.shields.Standing() != 72 {
		t.Fatal("enemy hit should not touch the shields")
	}

	w.shots.Spawn(shot)
	hits = w.resolvePlayerShots(false, nil)
	if len(hits) != 1 || hits[0].Kind != HitShield || w.shields.Alive(0, 0, 0) {
		t.Fatalf("hits = %+v, want shield hit", hits)
	}
}

func TestEnemyShotsHitPlayerOnce(t *testing.T) {
	w := newWorld(config.DefaultInvadersConfig(), 1, 3)
	pr := w.player.Rect()
	w.enemyShots.Spawn(Projectile{X: pr.X + 2, Y: pr.Y, W: 2, H: 8, Owner: OwnerEnemy})
	w.enemyShots.Spawn(Projectile{X: pr.X + 10, Y: pr.Y, W: 2, H: 8, Owner: OwnerEnemy})

	hits := w.resolveEnemyShots(true, nil)
	if len(hits) != 1 || hits[0].Kind != HitPlayer {
		t.Fatalf("hits = %+v, want a single player hit", hits)
	}
	if w.enemyShots.Active() != 1 {
		t.Errorf("Active() = %d, want the second bullet to survive", w.enemyShots.Active())
	}

	if hits := w.resolveEnemyShots(false, nil); len(hits) != 0 {
		t.Errorf("invulnerable player was hit: %+v", hits)
	}
}
