package invaders

// HitKind is what a projectile struck.
type HitKind uint8

const (
	HitBonus HitKind = iota + 1
	HitEnemy
	HitShield
	HitPlayer
)

// Hit is one resolved collision. Points is set for bonus and enemy hits.
type Hit struct {
	Kind     HitKind
	Points   int
	Row, Col int
}

// resolvePlayerShots tests each player bullet against the bonus target, the
// formation and the shields, in that order. The first match consumes the
// bullet, so a bullet overlapping two targets resolves to the earlier one.
func (w *world) resolvePlayerShots(checkBonus bool, hits []Hit) []Hit {
	for i := range w.shots.slots {
		s := &w.shots.slots[i]
		if !s.Active {
			continue
		}
		r := s.Rect()

		if checkBonus && w.bonus.Active && r.Intersects(w.bonus.Rect()) {
			s.Active = false
			hits = append(hits, Hit{Kind: HitBonus, Points: w.bonus.Hit(w.rng)})
			continue
		}
		if row, col, ok := w.formation.HitTest(r); ok {
			s.Active = false
			if killed, pts := w.formation.Kill(row, col); killed {
				hits = append(hits, Hit{Kind: HitEnemy, Points: pts, Row: row, Col: col})
			}
			continue
		}
		if w.shields.Hit(r) {
			s.Active = false
			hits = append(hits, Hit{Kind: HitShield})
		}
	}
	return hits
}

// resolveEnemyShots tests each enemy bullet against the player, then the
// shields. The player can be hit at most once per call and only while
// playerVulnerable is true.
func (w *world) resolveEnemyShots(playerVulnerable bool, hits []Hit) []Hit {
	pr := w.player.Rect()
	for i := range w.enemyShots.slots {
		s := &w.enemyShots.slots[i]
		if !s.Active {
			continue
		}
		r := s.Rect()

		if playerVulnerable && r.Intersects(pr) {
			s.Active = false
			playerVulnerable = false
			hits = append(hits, Hit{Kind: HitPlayer})
			continue
		}
		if w.shields.Hit(r) {
			s.Active = false
			hits = append(hits, Hit{Kind: HitShield})
		}
	}
	return hits
}
