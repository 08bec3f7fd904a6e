package tui

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	hitToneHz     = 880
	hitToneLength = 60 * time.Millisecond
)

// Chime is played whenever the score goes up.
type Chime interface {
	Hit()
}

// SilentChime does nothing.
type SilentChime struct{}

func (SilentChime) Hit() {}

// Beeper plays a short sine tone through the system speaker.
type Beeper struct {
	mu          sync.Mutex
	initialized bool
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
}

// NewBeeper returns a beeper; call Init before the first Hit.
func NewBeeper() *Beeper {
	return &Beeper{
		sampleRate: beep.SampleRate(44100),
		mixer:      &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer.
func (b *Beeper) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		return nil
	}
	if err := speaker.Init(b.sampleRate, b.sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Hit queues one hit tone. It is a no-op before Init succeeds.
func (b *Beeper) Hit() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}
	tone, err := generators.SineTone(b.sampleRate, hitToneHz)
	if err != nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(beep.Take(b.sampleRate.N(hitToneLength), tone))
	speaker.Unlock()
}

// Close shuts the speaker down.
func (b *Beeper) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		speaker.Close()
		b.initialized = false
	}
}
