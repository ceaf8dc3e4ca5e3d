package core

// RuntimeConfig contains configuration passed to games at reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 lets the game pick its fixed default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the externally visible status of a running game.
type GameState struct {
	Score    int
	Lives    int
	Wave     int
	Initials string // set once initials have been submitted
	GameOver bool   // the run has ended (initials entry or table may still be showing)
	Finished bool   // the game handed control back to the caller
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // audio cues raised during the tick, in order
}
