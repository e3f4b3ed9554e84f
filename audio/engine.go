package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine plays short synthesized effects through the system speaker.
// Construction failure is non-fatal; a nil Engine is a silent no-op so
// callers never branch on audio availability.
type Engine struct {
	mu      sync.Mutex
	enabled bool
}

// NewEngine initializes the speaker. Returns an error when no audio
// device is available; the caller logs it and continues without sound.
func NewEngine() (*Engine, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return &Engine{enabled: true}, nil
}

func (e *Engine) play(s beep.Streamer) {
	if e == nil || !e.enabled {
		return
	}
	e.mu.Lock()
	speaker.Play(s)
	e.mu.Unlock()
}

// Fire is the primary weapon blip
func (e *Engine) Fire() {
	osc := newOscillator(880, 60*time.Millisecond, WaveSquare, sampleRate)
	env := newEnvelope(osc, 60*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, sampleRate)
	e.play(newVolume(env, 0.25))
}

// Explosion is the asteroid/alien destruction rumble
func (e *Engine) Explosion() {
	osc := newOscillator(0, 300*time.Millisecond, WaveNoise, sampleRate)
	env := newEnvelope(osc, 300*time.Millisecond, 5*time.Millisecond, 220*time.Millisecond, sampleRate)
	e.play(newVolume(env, 0.4))
}

// Thruster is a short low rasp looped by repeated triggering while the
// thrust key is held
func (e *Engine) Thruster() {
	osc := newOscillator(70, 90*time.Millisecond, WaveSaw, sampleRate)
	env := newEnvelope(osc, 90*time.Millisecond, 10*time.Millisecond, 40*time.Millisecond, sampleRate)
	e.play(newVolume(env, 0.15))
}

// ExtraLife is the bonus chime
func (e *Engine) ExtraLife() {
	osc := newOscillator(1320, 400*time.Millisecond, WaveSine, sampleRate)
	env := newEnvelope(osc, 400*time.Millisecond, 5*time.Millisecond, 300*time.Millisecond, sampleRate)
	e.play(newVolume(env, 0.3))
}

// ShipHit is the life-lost drop
func (e *Engine) ShipHit() {
	osc := newOscillator(120, 500*time.Millisecond, WaveSaw, sampleRate)
	env := newEnvelope(osc, 500*time.Millisecond, 5*time.Millisecond, 350*time.Millisecond, sampleRate)
	e.play(newVolume(env, 0.45))
}
