package systems

import (
	"time"

	"github.com/lixenwraith/vector-rocks/config"
	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// pairRole classifies a body for collision-policy filtering. Player-side
// bodies are the ship and its bullets; hazard-side bodies are asteroids,
// aliens, and alien bullets.
type pairRole uint8

const (
	rolePlayer pairRole = iota
	roleHazard
	roleRock // asteroid, additionally eligible for rock-rock pairs
)

// CollisionSystem detects contacts under the live collision policy,
// resolves gameplay outcomes and impulses, and triggers fragmentation.
// Debris never enters the broad phase.
type CollisionSystem struct {
	grid *engine.SpatialGrid
	dead map[engine.Entity]bool
}

// NewCollisionSystem creates the collision and fragmentation system
func NewCollisionSystem() engine.System {
	return &CollisionSystem{
		grid: engine.NewSpatialGrid(constants.ArenaWidth, constants.ArenaHeight, constants.SpatialCellSize),
		dead: make(map[engine.Entity]bool),
	}
}

func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

func (s *CollisionSystem) Update(w *engine.World, dt time.Duration) {
	for e := range s.dead {
		delete(s.dead, e)
	}
	s.grid.Clear()
	w.Metrics.FragEvents.Store(0)

	maxRadius := 0.0
	for _, e := range w.Bodies.Entities() {
		body, ok := w.Bodies.Get(e)
		if !ok || body.Class == engine.ClassDebris {
			continue
		}
		s.grid.Insert(e, body.Pos)
		if body.Radius > maxRadius {
			maxRadius = body.Radius
		}
	}

	var pairsTested int64
	policy := w.Collision

	for _, e1 := range w.Bodies.Entities() {
		if s.dead[e1] {
			continue
		}
		b1, ok := w.Bodies.Get(e1)
		if !ok || b1.Class == engine.ClassDebris {
			continue
		}
		s.grid.ForEachNear(b1.Pos, b1.Radius+maxRadius, func(e2 engine.Entity) {
			if e2 <= e1 || s.dead[e1] || s.dead[e2] {
				return
			}
			b2, ok := w.Bodies.Get(e2)
			if !ok {
				return
			}
			if !pairAllowed(w, policy, e1, b1, e2, b2) {
				return
			}
			pairsTested++
			sum := b1.Radius + b2.Radius
			if b1.Pos.DistanceSqTo(b2.Pos) > sum*sum {
				return
			}
			s.resolve(w, e1, e2)
		})
	}

	w.Metrics.PairsTested.Store(pairsTested)
}

func roleOf(w *engine.World, e engine.Entity, b engine.Body) pairRole {
	switch b.Class {
	case engine.ClassShip:
		return rolePlayer
	case engine.ClassBullet:
		if data, ok := w.Bullets.Get(e); ok && data.Source == engine.SourceAlien {
			return roleHazard
		}
		return rolePlayer
	case engine.ClassAsteroid:
		return roleRock
	default:
		return roleHazard
	}
}

// pairAllowed is the policy gate. Pairs it rejects are never tested, not
// merely resolved as no-ops.
func pairAllowed(w *engine.World, policy config.CollisionPolicy, e1 engine.Entity, b1 engine.Body, e2 engine.Entity, b2 engine.Body) bool {
	if policy == config.CollisionFull {
		return true
	}
	r1, r2 := roleOf(w, e1, b1), roleOf(w, e2, b2)
	onePlayer := (r1 == rolePlayer) != (r2 == rolePlayer)
	if onePlayer {
		return true
	}
	if policy == config.CollisionBigOnly && r1 == roleRock && r2 == roleRock {
		return b1.Radius >= w.Budgets.BigCollisionRadius && b2.Radius >= w.Budgets.BigCollisionRadius
	}
	return false
}

// resolve applies the gameplay outcome for one overlapping pair. Bodies are
// re-read because earlier resolutions this tick may have mutated them.
func (s *CollisionSystem) resolve(w *engine.World, e1, e2 engine.Entity) {
	b1, _ := w.Bodies.Get(e1)
	b2, _ := w.Bodies.Get(e2)

	// normalize so the switch below only sees one ordering per class pair
	if b1.Class > b2.Class {
		e1, e2 = e2, e1
		b1, b2 = b2, b1
	}

	switch {
	case b1.Class == engine.ClassShip && b2.Class == engine.ClassBullet:
		if data, ok := w.Bullets.Get(e2); ok && data.Source == engine.SourceAlien {
			s.kill(w, e2)
			s.shipHit(w)
		}

	case b1.Class == engine.ClassShip && b2.Class == engine.ClassAsteroid:
		s.shipHit(w)

	case b1.Class == engine.ClassShip && b2.Class == engine.ClassAlien:
		s.destroyAlien(w, e2, b2, false)
		s.shipHit(w)

	case b1.Class == engine.ClassAsteroid && b2.Class == engine.ClassBullet:
		data, _ := w.Bullets.Get(e2)
		fromPlayer := data.Source == engine.SourcePlayer
		impact := b2.Vel.Normalized()
		s.kill(w, e2)
		s.destroyAsteroid(w, e1, b1, impact, hitBullet, fromPlayer)

	case b1.Class == engine.ClassBullet && b2.Class == engine.ClassAlien:
		if data, ok := w.Bullets.Get(e1); ok && data.Source == engine.SourcePlayer {
			s.kill(w, e1)
			s.destroyAlien(w, e2, b2, true)
		}

	case b1.Class == engine.ClassAsteroid && b2.Class == engine.ClassAsteroid:
		s.rockImpulse(w, e1, e2)
	}
}

// rockImpulse separates two overlapping asteroids per the physics mode.
// Off leaves them untouched, Lite only de-penetrates, Arcade exchanges
// momentum along the contact normal using area as the mass proxy.
func (s *CollisionSystem) rockImpulse(w *engine.World, e1, e2 engine.Entity) {
	if w.Config.Physics == config.PhysicsOff {
		return
	}
	b1, _ := w.Bodies.Get(e1)
	b2, _ := w.Bodies.Get(e2)

	normal := b2.Pos.Sub(b1.Pos).Normalized()
	if normal == (vmath.Vec2{}) {
		normal = vmath.Vec2{X: 1}
	}
	overlap := b1.Radius + b2.Radius - b1.Pos.DistanceTo(b2.Pos)
	if overlap > 0 {
		shift := normal.Scale(overlap / 2)
		b1.Pos = b1.Pos.Sub(shift).Wrap(w.Arena.X, w.Arena.Y)
		b2.Pos = b2.Pos.Add(shift).Wrap(w.Arena.X, w.Arena.Y)
	}

	if w.Config.Physics == config.PhysicsArcade {
		m1, m2 := b1.Area, b2.Area
		if m1 <= 0 {
			m1 = 1
		}
		if m2 <= 0 {
			m2 = 1
		}
		relative := b1.Vel.Sub(b2.Vel).Dot(normal)
		if relative > 0 {
			impulse := 2 * relative / (m1 + m2)
			b1.Vel = b1.Vel.Sub(normal.Scale(impulse * m2))
			b2.Vel = b2.Vel.Add(normal.Scale(impulse * m1))
		}
	}

	w.Bodies.Set(e1, b1)
	w.Bodies.Set(e2, b2)
}

func (s *CollisionSystem) kill(w *engine.World, e engine.Entity) {
	s.dead[e] = true
	w.Despawn(e)
}

func (s *CollisionSystem) destroyAlien(w *engine.World, e engine.Entity, body engine.Body, scored bool) {
	data, _ := w.Aliens.Get(e)
	s.kill(w, e)
	spawnDebrisBurst(w, body.Pos, body.Radius*body.Radius)
	if scored {
		w.State.Score += data.Size.Score()
		w.State.Stats.RecordHit(engine.ClassAlien, 0, data.Size)
	}
}

// shipHit costs a life. The ship respawns in place at the arena center
// with a fresh invulnerability window; the run ends when lives run out.
func (s *CollisionSystem) shipHit(w *engine.World) {
	ship, ok := w.Ships.Get(w.Player)
	if !ok || ship.InvulnTimer > 0 || w.State.GodMode {
		return
	}
	body, _ := w.Bodies.Get(w.Player)
	spawnDebrisBurst(w, body.Pos, body.Radius*body.Radius)

	w.State.Lives--
	if w.State.Lives <= 0 {
		w.State.GameOver = true
		s.kill(w, w.Player)
		w.Log.Info().Int("score", w.State.Score).Uint64("tick", w.State.Tick).Msg("game over")
		return
	}

	body.Pos = w.Arena.Scale(0.5)
	body.Vel = vmath.Vec2{}
	body.Angle = -1.5707963267948966
	body.AngVel = 0
	ship.InvulnTimer = constants.RespawnInvulnerabilitySec
	ship.PrimaryCooldown = 0
	ship.SecondaryCooldown = 0
	w.Bodies.Set(w.Player, body)
	w.Ships.Set(w.Player, ship)
}
