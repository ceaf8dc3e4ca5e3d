package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Shields are the destructible barriers above the player. Each barrier is
// a grid of tiles that are destroyed one at a time and only come back on Reset.
type Shields struct {
	cfg   config.ShieldConfig
	tiles []bool // barrier-major, then row-major
}

// NewShields builds fully intact barriers.
func NewShields(cfg config.ShieldConfig) *Shields {
	s := &Shields{cfg: cfg}
	s.tiles = make([]bool, cfg.Count*cfg.Rows*cfg.Cols)
	s.Reset()
	return s
}

// Reset restores every tile.
func (s *Shields) Reset() {
	for i := range s.tiles {
		s.tiles[i] = true
	}
}

// TileRect returns the box of tile (row, col) of barrier b.
func (s *Shields) TileRect(b, row, col int) core.Rect {
	ts := s.cfg.TileSize
	return core.NewRect(s.cfg.X+b*s.cfg.Spacing+col*ts, s.cfg.Y+row*ts, ts, ts)
}

// bounds returns the outer box of barrier b.
func (s *Shields) bounds(b int) core.Rect {
	ts := s.cfg.TileSize
	return core.NewRect(s.cfg.X+b*s.cfg.Spacing, s.cfg.Y, s.cfg.Cols*ts, s.cfg.Rows*ts)
}

// Hit destroys the first living tile overlapping r, scanning barriers left to
// right and tiles row by row. It reports whether a tile was destroyed.
func (s *Shields) Hit(r core.Rect) bool {
	for b := 0; b < s.cfg.Count; b++ {
		if !s.bounds(b).Intersects(r) {
			continue
		}
		for row := 0; row < s.cfg.Rows; row++ {
			for col := 0; col < s.cfg.Cols; col++ {
				i := s.index(b, row, col)
				if s.tiles[i] && s.TileRect(b, row, col).Intersects(r) {
					s.tiles[i] = false
					return true
				}
			}
		}
	}
	return false
}

// Alive reports whether tile (row, col) of barrier b stands.
func (s *Shields) Alive(b, row, col int) bool {
	if b < 0 || b >= s.cfg.Count || row < 0 || row >= s.cfg.Rows || col < 0 || col >= s.cfg.Cols {
		return false
	}
	return s.tiles[s.index(b, row, col)]
}

// Standing returns the number of living tiles.
func (s *Shields) Standing() int {
	n := 0
	for _, t := range s.tiles {
		if t {
			n++
		}
	}
	return n
}

func (s *Shields) index(b, row, col int) int {
	return (b*s.cfg.Rows+row)*s.cfg.Cols + col
}

func (s *Shields) sprites(dst []Sprite) []Sprite {
	for b := 0; b < s.cfg.Count; b++ {
		for row := 0; row < s.cfg.Rows; row++ {
			for col := 0; col < s.cfg.Cols; col++ {
				if !s.tiles[s.index(b, row, col)] {
					continue
				}
				r := s.TileRect(b, row, col)
				dst = append(dst, Sprite{ID: SpriteShieldTile, X: r.X, Y: r.Y, W: r.W, H: r.H, Scale: 1})
			}
		}
	}
	return dst
}
