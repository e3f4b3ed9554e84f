package systems

import (
	"github.com/lixenwraith/vector-rocks/engine"
)

// Register attaches the full fixed-order system set to a world. The order
// is determined by priorities, not registration sequence.
func Register(w *engine.World) {
	w.AddSystem(NewShipControlSystem())
	w.AddSystem(NewMovementSystem())
	w.AddSystem(NewSpawnSystem())
	w.AddSystem(NewCombatSystem())
	w.AddSystem(NewCollisionSystem())
	w.AddSystem(NewScoreSystem())
	w.AddSystem(NewGuardSystem(w))
}
