package controller

import (
	"sync"
	"time"

	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// KeyState is the raw pressed-key view fed by the input layer. Fire flags
// are edge-consumed; movement keys are level-sampled.
type KeyState struct {
	Left, Right, Thrust bool
	FirePrimary         bool
	FireSecondary       bool
}

// Human forwards device input as intents. Turn input is smoothed toward
// the held direction so keyboard steering does not look binary, and tiny
// residual deflection is squelched by a dead zone.
type Human struct {
	mu    sync.Mutex
	keys  KeyState
	turn  float64 // smoothed -1..1
	prime bool    // latched fire flags, cleared when consumed
	sec   bool
}

const (
	turnSmoothing = 12.0 // approach rate toward full deflection, 1/s
	turnDeadZone  = 0.02
)

// NewHuman creates the human controller
func NewHuman() *Human {
	return &Human{}
}

// SetKeys replaces the level-sampled key state. Called from the input
// event loop, which may run on another goroutine.
func (h *Human) SetKeys(keys KeyState) {
	h.mu.Lock()
	h.keys.Left = keys.Left
	h.keys.Right = keys.Right
	h.keys.Thrust = keys.Thrust
	if keys.FirePrimary {
		h.prime = true
	}
	if keys.FireSecondary {
		h.sec = true
	}
	h.mu.Unlock()
}

// Tick implements engine.Controller
func (h *Human) Tick(snap *engine.WorldSnapshot, dt time.Duration) engine.ControlIntent {
	h.mu.Lock()
	keys := h.keys
	firePrimary, fireSecondary := h.prime, h.sec
	h.prime, h.sec = false, false
	h.mu.Unlock()

	goal := 0.0
	if keys.Left {
		goal -= 1
	}
	if keys.Right {
		goal += 1
	}

	step := vmath.Clamp01(turnSmoothing * dt.Seconds())
	h.turn = vmath.Lerp(h.turn, goal, step)
	if goal == 0 && vmath.Clamp(h.turn, -turnDeadZone, turnDeadZone) == h.turn {
		h.turn = 0
	}

	intent := engine.ControlIntent{
		Turn:          h.turn,
		FirePrimary:   firePrimary,
		FireSecondary: fireSecondary,
	}
	if keys.Thrust {
		intent.Thrust = 1
	}
	return intent
}
