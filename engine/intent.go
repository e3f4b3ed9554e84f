package engine

import (
	"time"

	"github.com/lixenwraith/vector-rocks/vmath"
)

// ControlIntent is the normalized control signal produced by a controller
// each tick. It is an immutable value carrying no world references.
type ControlIntent struct {
	Thrust        float64 // 0..1
	Turn          float64 // -1..1
	FirePrimary   bool
	FireSecondary bool
}

// Sanitized returns the intent clamped into its documented ranges, with
// non-finite inputs zeroed
func (i ControlIntent) Sanitized() ControlIntent {
	out := i
	if !vmath.IsFinite(out.Thrust) {
		out.Thrust = 0
	}
	if !vmath.IsFinite(out.Turn) {
		out.Turn = 0
	}
	out.Thrust = vmath.Clamp01(out.Thrust)
	out.Turn = vmath.Clamp(out.Turn, -1, 1)
	return out
}

// Controller produces one intent per tick. The core holds only this
// capability and cannot distinguish a human from an autopilot behind it.
type Controller interface {
	Tick(snap *WorldSnapshot, dt time.Duration) ControlIntent
}
