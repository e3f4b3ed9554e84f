package systems

import (
	"time"

	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// ShipControlSystem applies the tick's ControlIntent to the ship body.
// Runs first so every later system sees post-input kinematics.
type ShipControlSystem struct{}

// NewShipControlSystem creates the intent application system
func NewShipControlSystem() engine.System {
	return &ShipControlSystem{}
}

// Priority returns the system's priority (lowest value = runs first)
func (s *ShipControlSystem) Priority() int {
	return constants.PriorityShipControl
}

// Update turns the sanitized intent into ship acceleration and rotation.
// Drag and the speed cap apply here so the ship never leaves this phase
// faster than ShipMaxSpeed.
func (s *ShipControlSystem) Update(w *engine.World, dt time.Duration) {
	body, ok := w.Bodies.Get(w.Player)
	if !ok {
		return
	}
	ship, _ := w.Ships.Get(w.Player)
	step := dt.Seconds()
	intent := w.Intent

	body.Angle = vmath.NormalizeAngle(body.Angle + intent.Turn*constants.ShipRotationSpeed*step)

	if intent.Thrust > 0 {
		forward := vmath.FromAngle(body.Angle)
		body.Vel = body.Vel.Add(forward.Scale(intent.Thrust * constants.ShipThrust * step))
	}
	body.Vel = body.Vel.Scale(1 - constants.ShipDrag*step)
	body.Vel = body.Vel.ClampLength(constants.ShipMaxSpeed)

	if ship.InvulnTimer > 0 {
		ship.InvulnTimer -= step
		if ship.InvulnTimer < 0 {
			ship.InvulnTimer = 0
		}
		w.Ships.Set(w.Player, ship)
	}

	w.Bodies.Set(w.Player, body)
}
