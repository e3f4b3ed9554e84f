package systems

import (
	"time"

	"github.com/lixenwraith/vector-rocks/config"
	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/engine"
)

// GuardSystem keeps tick cost bounded by walking a fixed degradation
// ladder one severity step at a time. Severity rises after the entry
// condition holds for a full observation window and falls, in LIFO order,
// after the exit condition holds for the longer recovery window. The
// guard is the only writer of the live Budgets after run start and never
// raises fidelity above the user's original selection.
type GuardSystem struct {
	original       config.Budgets
	originalPolicy config.CollisionPolicy

	severity   int
	overTicks  int
	underTicks int

	// rolling tick-cost window, microseconds
	window []int64
	sum    int64
	next   int
	filled bool
}

// NewGuardSystem creates the performance guard. Disabled guards stay
// registered as a documented no-op so the system order never changes.
func NewGuardSystem(w *engine.World) engine.System {
	return &GuardSystem{
		original:       w.Config.Budgets,
		originalPolicy: w.Config.Collision,
		window:         make([]int64, constants.GuardWindowTicks),
	}
}

func (s *GuardSystem) Priority() int {
	return constants.PriorityGuard
}

func (s *GuardSystem) Update(w *engine.World, dt time.Duration) {
	if !w.Config.GuardEnabled {
		return
	}

	// last completed tick's cost; this tick's own cost is not known yet
	s.observe(w.Metrics.TickCostMicros.Load())
	if !s.filled {
		return
	}

	mean := time.Duration(s.sum/int64(len(s.window))) * time.Microsecond
	bodies := float64(w.Bodies.Count())
	limit := float64(s.original.MaxBodies)

	hot := mean > constants.GuardEnterBudget || bodies > constants.GuardBodyEnterFraction*limit
	cool := mean < constants.GuardExitBudget && bodies < constants.GuardBodyExitFraction*limit

	if hot {
		s.overTicks++
		s.underTicks = 0
	} else if cool {
		s.underTicks++
		s.overTicks = 0
	} else {
		s.overTicks = 0
		s.underTicks = 0
	}

	if s.overTicks >= constants.GuardWindowTicks && s.severity < constants.GuardMaxSeverity {
		s.severity++
		s.apply(w, s.severity)
		s.overTicks = 0
		w.Log.Warn().
			Int("severity", s.severity).
			Dur("mean_tick_cost", mean).
			Int("bodies", int(bodies)).
			Msg("guard degraded fidelity")
	}
	if s.underTicks >= constants.GuardRecoverTicks && s.severity > 0 {
		s.revert(w, s.severity)
		s.severity--
		s.underTicks = 0
		w.Log.Info().
			Int("severity", s.severity).
			Dur("mean_tick_cost", mean).
			Msg("guard recovered one step")
	}

	w.Metrics.GuardSeverity.Store(int64(s.severity))
}

func (s *GuardSystem) observe(costMicros int64) {
	s.sum += costMicros - s.window[s.next]
	s.window[s.next] = costMicros
	s.next++
	if s.next == len(s.window) {
		s.next = 0
		s.filled = true
	}
}

// apply executes one ladder step. Steps are strictly ordered; step n runs
// only after steps 1..n-1 proved insufficient.
func (s *GuardSystem) apply(w *engine.World, step int) {
	switch step {
	case 1:
		ttl := w.Budgets.DebrisTTLMs / 2
		if ttl < constants.GuardDebrisTTLFloorMs {
			ttl = constants.GuardDebrisTTLFloorMs
		}
		w.Budgets.DebrisTTLMs = ttl
	case 2:
		if w.Budgets.FragEventCap > constants.GuardFragCapFloor {
			w.Budgets.FragEventCap--
		}
	case 3:
		grown := w.Budgets.BigCollisionRadius * constants.GuardBigRadiusGrowth
		ceiling := s.original.BigCollisionRadius * constants.GuardBigRadiusMaxScale
		if grown > ceiling {
			grown = ceiling
		}
		w.Budgets.BigCollisionRadius = grown
	case 4:
		if w.Config.AllowAutoDowngrade {
			w.Collision = w.Collision.Downgraded()
		}
	case 5:
		w.State.SpawnClamped = true
	}
}

// revert undoes one ladder step, restoring toward (never beyond) the
// original run configuration
func (s *GuardSystem) revert(w *engine.World, step int) {
	switch step {
	case 1:
		w.Budgets.DebrisTTLMs = s.original.DebrisTTLMs
	case 2:
		w.Budgets.FragEventCap = s.original.FragEventCap
	case 3:
		w.Budgets.BigCollisionRadius = s.original.BigCollisionRadius
	case 4:
		w.Collision = s.originalPolicy
	case 5:
		w.State.SpawnClamped = false
	}
}
