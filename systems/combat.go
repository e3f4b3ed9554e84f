package systems

import (
	"time"

	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// CombatSystem handles weapon cooldowns, player fire intents, and alien
// saucer behavior (patrol movement, aim, fire cadence). Bullet lifetimes
// themselves expire in the movement phase via TTL.
type CombatSystem struct{}

// NewCombatSystem creates the combat system
func NewCombatSystem() engine.System {
	return &CombatSystem{}
}

func (s *CombatSystem) Priority() int {
	return constants.PriorityCombat
}

func (s *CombatSystem) Update(w *engine.World, dt time.Duration) {
	step := dt.Seconds()
	s.updatePlayer(w, step)
	s.updateAliens(w, step)
}

func (s *CombatSystem) updatePlayer(w *engine.World, step float64) {
	body, ok := w.Bodies.Get(w.Player)
	if !ok {
		return
	}
	ship, _ := w.Ships.Get(w.Player)

	if ship.PrimaryCooldown > 0 {
		ship.PrimaryCooldown -= step
	}
	if ship.SecondaryCooldown > 0 {
		ship.SecondaryCooldown -= step
	}

	forward := vmath.FromAngle(body.Angle)
	muzzle := body.Pos.Add(forward.Scale(constants.ShipSize))

	if w.Intent.FirePrimary && ship.PrimaryCooldown <= 0 {
		// accumulate so fractional-tick residue keeps the long-run rate exact
		ship.PrimaryCooldown += 1 / constants.PrimaryFireRate
		// primary shots inherit ship velocity
		vel := forward.Scale(constants.BulletSpeed).Add(body.Vel)
		s.fireBullet(w, muzzle, vel, engine.SourcePlayer)
	}

	if w.Intent.FireSecondary && ship.SecondaryCooldown <= 0 {
		ship.SecondaryCooldown += 1 / constants.SecondaryFireRate
		half := constants.SecondaryCount / 2
		for i := -half; i <= half; i++ {
			dir := vmath.FromAngle(body.Angle + float64(i)*constants.SecondarySpread)
			s.fireBullet(w, muzzle, dir.Scale(constants.BulletSpeed), engine.SourcePlayer)
		}
	}

	w.Ships.Set(w.Player, ship)
}

func (s *CombatSystem) updateAliens(w *engine.World, step float64) {
	shipBody, shipAlive := w.Bodies.Get(w.Player)

	for _, e := range w.Aliens.Entities() {
		data, _ := w.Aliens.Get(e)
		body, ok := w.Bodies.Get(e)
		if !ok {
			continue
		}

		// horizontal patrol with edge bounce; altitude is fixed per size
		body.Pos.Y = data.Size.PatrolY()
		if body.Pos.X < constants.AlienPatrolMargin && body.Vel.X < 0 {
			body.Vel.X = -body.Vel.X
		}
		if body.Pos.X > w.Arena.X-constants.AlienPatrolMargin && body.Vel.X > 0 {
			body.Vel.X = -body.Vel.X
		}

		data.FireTimer -= step
		if data.FireTimer <= 0 {
			data.FireTimer += data.Size.FireInterval()
			if shipAlive {
				s.alienFire(w, body.Pos, data.Size, shipBody.Pos)
			}
		}

		w.Bodies.Set(e, body)
		w.Aliens.Set(e, data)
	}
}

// alienFire shoots toward the ship with aim scattered uniformly inside the
// saucer's cone, which tightens as the player's score grows
func (s *CombatSystem) alienFire(w *engine.World, from vmath.Vec2, size engine.AlienSize, shipPos vmath.Vec2) {
	ideal := shipPos.Sub(from).Angle()
	cone := size.ConeHalfAngle(w.State.Score)
	angle := ideal + w.Rng.Range(-cone, cone)
	vel := vmath.FromAngle(angle).Scale(constants.BulletSpeed)
	muzzle := from.Add(vmath.FromAngle(angle).Scale(size.HitRadius() + constants.BulletRadius))

	e, ok := w.Spawn(engine.NewBulletBody(muzzle, vel))
	if ok {
		w.Bullets.Set(e, engine.BulletData{Source: engine.SourceAlien})
	}
}

func (s *CombatSystem) fireBullet(w *engine.World, pos, vel vmath.Vec2, src engine.BulletSource) {
	e, ok := w.Spawn(engine.NewBulletBody(pos, vel))
	if !ok {
		return
	}
	w.Bullets.Set(e, engine.BulletData{Source: src})
	if src == engine.SourcePlayer {
		w.State.Stats.ShotsFired++
	}
}
