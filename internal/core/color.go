package core

// Color is a logical foreground color of a screen cell.
// The platform maps it onto ANSI palette entries.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Palette roles used by the invaders renderer and HUD.
const (
	ColorPlayer  = ColorBrightGreen
	ColorShield  = ColorGreen
	ColorBonus   = ColorBrightRed
	ColorEnemyFx = ColorOrange
	ColorHUD     = ColorBrightWhite
	ColorDim     = ColorGray
)
