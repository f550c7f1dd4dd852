// Package audio plays a short tone whenever the modeled element changes.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"golang.org/x/time/rate"
)

const (
	SampleRate beep.SampleRate = 44100

	chimeLength = 90 * time.Millisecond
	baseFreq    = 220.0 // hydrogen; each element is a semitone higher
)

// Chime is safe to call from the game loop; playback happens on the speaker
// goroutine.
type Chime struct {
	mu      sync.Mutex
	volume  float64
	limiter *rate.Limiter
	ready   bool
	muted   bool

	play func(...beep.Streamer)
	now  func() time.Time
}

// NewChime returns a chime that stays silent until Open succeeds.
func NewChime(volume float64) *Chime {
	return &Chime{
		volume:  volume,
		limiter: rate.NewLimiter(rate.Limit(8), 2),
		play:    speaker.Play,
		now:     time.Now,
	}
}

// Open initializes the speaker.
func (c *Chime) Open() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	c.mu.Lock()
	c.ready = true
	c.mu.Unlock()
	return nil
}

// ToggleMute flips muting and reports whether the chime is now muted.
func (c *Chime) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return c.muted
}

// Muted reports whether the chime is muted.
func (c *Chime) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Play sounds the tone for atomic number z. Calls faster than the limiter
// allows, e.g. from key repeat, are dropped. It reports whether a tone started.
func (c *Chime) Play(z int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ready || c.muted || !c.limiter.AllowN(c.now(), 1) {
		return false
	}
	c.play(newTone(Freq(z), c.volume, SampleRate, SampleRate.N(chimeLength)))
	return true
}

// Freq is the chime pitch in Hz for atomic number z.
func Freq(z int) float64 {
	return baseFreq * math.Pow(2, float64(z-1)/12)
}

// tone is a sine wave that fades out linearly over length samples.
type tone struct {
	freq   float64
	volume float64
	sr     beep.SampleRate
	pos    int
	length int
}

func newTone(freq, volume float64, sr beep.SampleRate, length int) *tone {
	return &tone{freq: freq, volume: volume, sr: sr, length: length}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}
		env := 1 - float64(t.pos)/float64(t.length)
		v := t.volume * env * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.sr))
		samples[i] = [2]float64{v, v}
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
