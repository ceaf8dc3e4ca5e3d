// Package audio turns simulation cues into sound. Sounds are synthesized
// on the fly with beep and mixed onto the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SampleRate is the output rate used for every sound.
const SampleRate = beep.SampleRate(48000)

// Nop discards every cue.
type Nop struct{}

// Play implements core.CueSink.
func (Nop) Play(core.Cue) {}

// Player plays cues on the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player. Nothing is audible until Init succeeds.
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: min(max(volume, 0), 1)}
}

// Init opens the speaker. A failure leaves the player silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play implements core.CueSink. It never blocks on the audio device.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Sound(c, p.volume, SampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

var (
	_ core.CueSink = Nop{}
	_ core.CueSink = (*Player)(nil)
)
