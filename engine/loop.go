package engine

import (
	"time"

	"github.com/lixenwraith/vector-rocks/constants"
)

// Loop drives the world at a fixed 60 Hz timestep with an accumulator.
// Render stalls are absorbed by capped catch-up; anything beyond the cap
// is dropped so the simulation slows instead of spiraling.
type Loop struct {
	world      *World
	controller Controller
	snapshot   WorldSnapshot

	// sensorRadius and attentionCap bound what the controller perceives
	sensorRadius float64
	attentionCap int

	accumulator time.Duration
	lastAdvance time.Time
}

// NewLoop wires a world to its controller. The perception bounds apply to
// every controller uniformly; a human controller simply ignores the
// snapshot contents it does not need.
func NewLoop(w *World, c Controller, sensorRadius float64, attentionCap int) *Loop {
	return &Loop{
		world:        w,
		controller:   c,
		sensorRadius: sensorRadius,
		attentionCap: attentionCap,
	}
}

// World returns the simulation state the loop advances
func (l *Loop) World() *World {
	return l.world
}

// Snapshot returns the most recent controller perception, for HUD overlays
func (l *Loop) Snapshot() *WorldSnapshot {
	return &l.snapshot
}

// Halt discards accumulated time so the next Advance re-primes instead of
// fast-forwarding through a pause.
func (l *Loop) Halt() {
	l.lastAdvance = time.Time{}
	l.accumulator = 0
}

// Advance consumes wall-clock time since the previous call and steps the
// simulation zero or more fixed ticks. Returns the number of ticks run.
// After a stall longer than MaxTicksPerFrame timesteps the remainder of
// the accumulator is discarded.
func (l *Loop) Advance(now time.Time) int {
	if l.lastAdvance.IsZero() {
		l.lastAdvance = now
		return 0
	}
	elapsed := now.Sub(l.lastAdvance)
	l.lastAdvance = now
	if elapsed < 0 {
		elapsed = 0
	}
	l.accumulator += elapsed

	ticks := 0
	for l.accumulator >= constants.SimTickInterval && ticks < constants.MaxTicksPerFrame {
		l.accumulator -= constants.SimTickInterval
		l.Tick()
		ticks++
	}
	if l.accumulator >= constants.SimTickInterval {
		l.accumulator = 0
	}
	return ticks
}

// Tick runs exactly one fixed timestep: refresh perception, collect the
// intent, step the world. Deterministic given the same controller and seed.
func (l *Loop) Tick() {
	if l.world.State.GameOver {
		return
	}
	l.snapshot.Refresh(l.world, l.sensorRadius, l.attentionCap, constants.SimTickInterval)
	intent := l.controller.Tick(&l.snapshot, constants.SimTickInterval)
	l.world.Step(intent, constants.SimTickInterval)
}
