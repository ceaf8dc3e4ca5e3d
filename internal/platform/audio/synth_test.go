package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if v < 0 {
					v = -v
				}
				peak = max(peak, v)
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never ended")
	return 0, 0
}

func TestSoundForEveryCue(t *testing.T) {
	rate := beep.SampleRate(44100)
	limit := rate.N(time.Second)
	for c := core.CueShot; c <= core.CueBonusAppear; c++ {
		t.Run(c.String(), func(t *testing.T) {
			s := Sound(c, 1, rate)
			if s == nil {
				t.Fatal("no sound")
			}
			n, peak := drain(t, s)
			if n == 0 || n > limit {
				t.Errorf("length = %d samples, want (0, %d]", n, limit)
			}
			if peak > 1.0001 {
				t.Errorf("peak = %f, want <= 1", peak)
			}
		})
	}
}

func TestSoundUnknownCue(t *testing.T) {
	if Sound(core.Cue(0), 1, SampleRate) != nil {
		t.Error("expected nil for an unknown cue")
	}
}

func TestSoundVolumeScales(t *testing.T) {
	rate := beep.SampleRate(44100)
	_, loud := drain(t, Sound(core.CueShot, 1, rate))
	_, quiet := drain(t, Sound(core.CueShot, 0.25, rate))
	_, silent := drain(t, Sound(core.CueShot, 0, rate))
	if quiet >= loud || quiet > 0.26 {
		t.Errorf("quiet peak %f, loud peak %f", quiet, loud)
	}
	if silent != 0 {
		t.Errorf("silent peak = %f", silent)
	}
}

func TestOscillatorSquareLevels(t *testing.T) {
	osc := newOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	buf := make([][2]float64, 64)
	n, ok := osc.Stream(buf)
	if !ok || n != 64 {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i, smp := range buf[:n] {
		if smp[0] != 1 && smp[0] != -1 {
			t.Fatalf("sample %d = %f, want +-1", i, smp[0])
		}
	}
}

func TestPlayerSilentUntilInit(t *testing.T) {
	p := NewPlayer(2)
	if p.volume != 1 {
		t.Errorf("volume = %f, want clamped to 1", p.volume)
	}
	p.Play(core.CueShot)
	p.Close()
	Nop{}.Play(core.CueHit)
}
