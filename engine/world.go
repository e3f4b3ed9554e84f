package engine

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vector-rocks/config"
	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/status"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// System advances one simulation concern by one fixed timestep.
// Lower priority values run first; the order is fixed per run.
type System interface {
	Update(w *World, dt time.Duration)
	Priority() int
}

// Metrics holds cached telemetry pointers so per-tick writes never touch
// the registry map
type Metrics struct {
	Bodies           *atomic.Int64
	PairsTested      *atomic.Int64
	FragEvents       *atomic.Int64
	Ticks            *atomic.Int64
	TickCostMicros   *atomic.Int64
	GuardSeverity    *atomic.Int64
	ShotsFired       *atomic.Int64
	ShotsHit         *atomic.Int64
	AnomaliesClamped *atomic.Int64
	BudgetRejected   *atomic.Int64
	AiCadenceHz      *status.AtomicFloat
	AiTargetScore    *status.AtomicFloat
	AiThreatScore    *status.AtomicFloat
	GodMode          *atomic.Bool
	SpawnClamped     *atomic.Bool
}

func newMetrics(reg *status.Registry) Metrics {
	return Metrics{
		Bodies:           reg.Ints.Get(status.MetricBodies),
		PairsTested:      reg.Ints.Get(status.MetricPairsTested),
		FragEvents:       reg.Ints.Get(status.MetricFragEvents),
		Ticks:            reg.Ints.Get(status.MetricTicks),
		TickCostMicros:   reg.Ints.Get(status.MetricTickCostMicros),
		GuardSeverity:    reg.Ints.Get(status.MetricGuardSeverity),
		ShotsFired:       reg.Ints.Get(status.MetricShotsFired),
		ShotsHit:         reg.Ints.Get(status.MetricShotsHit),
		AnomaliesClamped: reg.Ints.Get(status.MetricAnomalyClamped),
		BudgetRejected:   reg.Ints.Get(status.MetricBudgetRejected),
		AiCadenceHz:      reg.Floats.Get(status.MetricAiCadenceHz),
		AiTargetScore:    reg.Floats.Get(status.MetricAiTargetScore),
		AiThreatScore:    reg.Floats.Get(status.MetricAiThreatScore),
		GodMode:          reg.Bools.Get(status.MetricGodMode),
		SpawnClamped:     reg.Bools.Get(status.MetricSpawnClamped),
	}
}

// World owns all simulated bodies and is the single mutation point of the
// simulation. Systems mutate it only while Step runs; the controller and
// guard receive value views (WorldSnapshot, budget knobs) and never touch
// the stores directly.
type World struct {
	Config    config.GameConfig
	Budgets   config.Budgets         // live copy; the guard is the only post-start writer
	Collision config.CollisionPolicy // live copy; the guard may downgrade it
	Arena     vmath.Vec2
	Rng       *vmath.FastRand
	Log       zerolog.Logger
	Status    *status.Registry
	Metrics   Metrics

	Bodies    *Store[Body]
	Asteroids *Store[AsteroidData]
	Aliens    *Store[AlienData]
	Bullets   *Store[BulletData]
	Ships     *Store[ShipData]
	allStores []AnyStore

	// Player is the ship entity, respawned in place across lives
	Player Entity

	State  RunState
	Intent ControlIntent

	nextEntityID Entity
	pending      []Entity
	pendingSet   map[Entity]struct{}
	systems      []System

	anomalyLogged bool
}

// NewWorld creates a run-scoped world from an immutable configuration
func NewWorld(cfg config.GameConfig, log zerolog.Logger, reg *status.Registry) *World {
	w := &World{
		Config:       cfg,
		Budgets:      cfg.Budgets,
		Collision:    cfg.Collision,
		Arena:        vmath.Vec2{X: constants.ArenaWidth, Y: constants.ArenaHeight},
		Rng:          vmath.NewFastRand(cfg.Seed),
		Log:          log,
		Status:       reg,
		Metrics:      newMetrics(reg),
		Bodies:       NewStore[Body](),
		Asteroids:    NewStore[AsteroidData](),
		Aliens:       NewStore[AlienData](),
		Bullets:      NewStore[BulletData](),
		Ships:        NewStore[ShipData](),
		nextEntityID: 1,
		pendingSet:   make(map[Entity]struct{}),
		State: RunState{
			Lives:         constants.MaxLives,
			NextExtraLife: constants.ExtraLifeScoreStep,
		},
	}
	w.allStores = []AnyStore{w.Bodies, w.Asteroids, w.Aliens, w.Bullets, w.Ships}

	w.Player = w.spawnShip()
	return w
}

func (w *World) spawnShip() Entity {
	e := w.allocate()
	w.Bodies.Set(e, Body{
		Class:  ClassShip,
		Pos:    w.Arena.Scale(0.5),
		Angle:  -1.5707963267948966, // facing up
		Radius: constants.ShipHitRadius,
	})
	w.Ships.Set(e, ShipData{InvulnTimer: constants.RespawnInvulnerabilitySec})
	return e
}

func (w *World) allocate() Entity {
	e := w.nextEntityID
	w.nextEntityID++
	return e
}

// Spawn inserts a new body, enforcing the MaxBodies ceiling. A rejected
// spawn is a policy violation resolved by discarding, never by halting.
func (w *World) Spawn(body Body) (Entity, bool) {
	if w.Bodies.Count() >= w.Budgets.MaxBodies {
		w.Metrics.BudgetRejected.Add(1)
		return 0, false
	}
	e := w.allocate()
	w.Bodies.Set(e, body)
	return e, true
}

// Despawn queues an entity for removal at the next Flush. Safe to call
// while iterating store entity lists.
func (w *World) Despawn(e Entity) {
	if _, dup := w.pendingSet[e]; dup {
		return
	}
	w.pendingSet[e] = struct{}{}
	w.pending = append(w.pending, e)
}

// Flush compacts all queued removals out of every store
func (w *World) Flush() {
	if len(w.pending) == 0 {
		return
	}
	for _, e := range w.pending {
		for _, s := range w.allStores {
			s.Remove(e)
		}
		delete(w.pendingSet, e)
	}
	w.pending = w.pending[:0]
}

// AddSystem registers a system, keeping the list sorted by priority
func (w *World) AddSystem(sys System) {
	w.systems = append(w.systems, sys)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i-1].Priority() <= w.systems[i].Priority() {
			break
		}
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Step advances the world by exactly one fixed timestep. Systems run in
// priority order with a compaction flush between phases. The tick loop
// never fails; recoverable conditions degrade inside the systems.
func (w *World) Step(intent ControlIntent, dt time.Duration) {
	w.State.Tick++
	w.Intent = intent.Sanitized()

	start := time.Now()
	for _, sys := range w.systems {
		sys.Update(w, dt)
		w.Flush()
	}
	cost := time.Since(start)

	w.Metrics.Ticks.Store(int64(w.State.Tick))
	w.Metrics.TickCostMicros.Store(cost.Microseconds())
	w.Metrics.Bodies.Store(int64(w.Bodies.Count()))
	w.Metrics.ShotsFired.Store(int64(w.State.Stats.ShotsFired))
	w.Metrics.ShotsHit.Store(int64(w.State.Stats.ShotsHit))
	w.Metrics.GodMode.Store(w.State.GodMode)
	w.Metrics.SpawnClamped.Store(w.State.SpawnClamped)
}

// SanitizeBody clamps non-finite kinematics to safe defaults. A programmer
// error, logged once per run, corrected instead of propagated.
func (w *World) SanitizeBody(e Entity, b *Body) bool {
	if b.Pos.IsFinite() && b.Vel.IsFinite() && vmath.IsFinite(b.Angle) && vmath.IsFinite(b.AngVel) {
		return false
	}
	if !b.Pos.IsFinite() {
		b.Pos = w.Arena.Scale(0.5)
	}
	if !b.Vel.IsFinite() {
		b.Vel = vmath.Vec2{}
	}
	if !vmath.IsFinite(b.Angle) {
		b.Angle = 0
	}
	if !vmath.IsFinite(b.AngVel) {
		b.AngVel = 0
	}
	w.Metrics.AnomaliesClamped.Add(1)
	if !w.anomalyLogged {
		w.anomalyLogged = true
		w.Log.Error().
			Uint64("entity", uint64(e)).
			Str("class", b.Class.String()).
			Msg("non-finite body state clamped")
	}
	return true
}
