package systems

import (
	"time"

	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// MovementSystem integrates every body by one fixed timestep, wraps
// positions onto the torus arena, expires time-limited bodies, and
// sanitizes numeric anomalies before anything downstream reads them.
type MovementSystem struct{}

// NewMovementSystem creates the integration system
func NewMovementSystem() engine.System {
	return &MovementSystem{}
}

func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

func (s *MovementSystem) Update(w *engine.World, dt time.Duration) {
	step := dt.Seconds()
	debrisTTLCap := float64(w.Budgets.DebrisTTLMs) / 1000

	for _, e := range w.Bodies.Entities() {
		body, ok := w.Bodies.Get(e)
		if !ok {
			continue
		}
		w.SanitizeBody(e, &body)

		body.Pos = body.Pos.Add(body.Vel.Scale(step)).Wrap(w.Arena.X, w.Arena.Y)
		if body.AngVel != 0 {
			body.Angle = vmath.NormalizeAngle(body.Angle + body.AngVel*step)
		}

		if body.Class == engine.ClassDebris && body.TTL > debrisTTLCap {
			// the guard may have lowered the debris budget after spawn
			body.TTL = debrisTTLCap
		}
		if body.TTL > 0 {
			body.TTL -= step
			if body.TTL <= 0 {
				w.Despawn(e)
				continue
			}
		}

		w.Bodies.Set(e, body)
	}
}
