package invaders

import "testing"

func TestPoolSpawnNeverOverwrites(t *testing.T) {
	p := NewPool(2)
	if !p.Spawn(Projectile{X: 1, W: 2, H: 2}) || !p.Spawn(Projectile{X: 2, W: 2, H: 2}) {
		t.Fatal("spawn into free slots failed")
	}
	if p.Spawn(Projectile{X: 3, W: 2, H: 2}) {
		t.Fatal("spawn into full pool succeeded")
	}
	if p.At(0).X != 1 || p.At(1).X != 2 {
		t.Errorf("slots overwritten: %+v %+v", p.At(0), p.At(1))
	}
	if p.Active() != 2 {
		t.Errorf("Active() = %d, want 2", p.Active())
	}
}

func TestPoolSpawnReusesFirstFreeSlot(t *testing.T) {
	p := NewPool(3)
	for i := 0; i < 3; i++ {
		p.Spawn(Projectile{X: i, W: 1, H: 1})
	}
	p.Kill(1)
	p.Spawn(Projectile{X: 9, W: 1, H: 1})
	if got := p.At(1); !got.Active || got.X != 9 {
		t.Errorf("slot 1 = %+v, want reused with X=9", got)
	}
}

func TestPoolSpawnNormalizesSize(t *testing.T) {
	p := NewPool(1)
	p.Spawn(Projectile{})
	if s := p.At(0); s.W != 1 || s.H != 1 {
		t.Errorf("size = %dx%d, want 1x1", s.W, s.H)
	}
}

func TestPoolMinimumCapacity(t *testing.T) {
	if NewPool(0).Cap() != 1 {
		t.Error("zero capacity should become one slot")
	}
}

func TestPoolUpdateRetiresOffscreen(t *testing.T) {
	tests := []struct {
		name   string
		proto  Projectile
		active bool
	}{
		{"moving up still visible", Projectile{Y: 10, VY: -6, W: 2, H: 10}, true},
		{"partly above top", Projectile{Y: 0, VY: -6, W: 2, H: 10}, true},
		{"fully above top", Projectile{Y: -2, VY: -6, W: 2, H: 8}, false},
		{"past bottom", Projectile{Y: 476, VY: 4, W: 2, H: 8}, false},
		{"past right", Projectile{X: 639, VX: 2, W: 1, H: 1, Y: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPool(1)
			p.Spawn(tt.proto)
			p.Update(640, 480)
			if got := p.At(0).Active; got != tt.active {
				t.Errorf("active = %v, want %v (%+v)", got, tt.active, p.At(0))
			}
		})
	}
}

func TestPoolKillAll(t *testing.T) {
	p := NewPool(4)
	for i := 0; i < 4; i++ {
		p.Spawn(Projectile{W: 1, H: 1})
	}
	p.KillAll()
	if p.Active() != 0 {
		t.Errorf("Active() = %d after KillAll", p.Active())
	}
}
