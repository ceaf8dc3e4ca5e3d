package invaders

// SpriteID names an image the renderer knows how to draw.
type SpriteID uint8

const (
	SpritePlayer SpriteID = iota + 1
	SpritePlayerBullet
	SpriteInvaderA
	SpriteInvaderA2
	SpriteInvaderB
	SpriteInvaderB2
	SpriteInvaderC
	SpriteInvaderC2
	SpriteBulletZigzag
	SpriteBulletPlunger
	SpriteBulletRolling
	SpriteBonus
	SpriteShieldTile
)

// AnimID names a looping sequence of sprites.
type AnimID uint8

const (
	AnimInvaderA AnimID = iota
	AnimInvaderB
	AnimInvaderC
)

// animFrames maps an animation to its frames.
var animFrames = [...][2]SpriteID{
	AnimInvaderA: {SpriteInvaderA, SpriteInvaderA2},
	AnimInvaderB: {SpriteInvaderB, SpriteInvaderB2},
	AnimInvaderC: {SpriteInvaderC, SpriteInvaderC2},
}

// Frame returns the sprite shown at animation frame n.
func (a AnimID) Frame(n int) SpriteID {
	return animFrames[a][n&1]
}

// enemyBulletSprites are the enemy bullet variants, indexed by Projectile.Style.
var enemyBulletSprites = [...]SpriteID{SpriteBulletZigzag, SpriteBulletPlunger, SpriteBulletRolling}

// EnemyKind is what a formation row is made of.
type EnemyKind struct {
	Points int
	Anim   AnimID
}

// enemyKinds is indexed by enemy type: 0 is the bottom rows, 2 the top row.
var enemyKinds = [...]EnemyKind{
	{Points: 10, Anim: AnimInvaderC},
	{Points: 20, Anim: AnimInvaderB},
	{Points: 30, Anim: AnimInvaderA},
}

// kindOfRow returns the enemy type of a formation row.
func kindOfRow(row int) int {
	switch {
	case row == 0:
		return 2
	case row <= 2:
		return 1
	default:
		return 0
	}
}

// Sprite is one entry of the render list: what to draw and where.
// X and Y are the top-left corner in simulation pixels.
type Sprite struct {
	ID    SpriteID
	X, Y  int
	W, H  int
	Scale int
}
