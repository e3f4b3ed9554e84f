package systems

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vector-rocks/config"
	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/status"
	"github.com/lixenwraith/vector-rocks/vmath"
)

const tick = constants.SimTickInterval

func newWorld(t *testing.T, mutate func(*config.GameConfig)) *engine.World {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 99
	if mutate != nil {
		mutate(&cfg)
	}
	return engine.NewWorld(cfg, zerolog.Nop(), status.NewRegistry())
}

// addAsteroid spawns a tiered asteroid directly, bypassing the spawn system
func addAsteroid(t *testing.T, w *engine.World, tier engine.AsteroidTier, pos, vel vmath.Vec2) engine.Entity {
	t.Helper()
	body := engine.NewAsteroidBody(tier, pos, vel, w.Budgets.VMax, w.Rng)
	e, ok := w.Spawn(body)
	if !ok {
		t.Fatal("asteroid spawn rejected")
	}
	w.Asteroids.Set(e, engine.AsteroidData{Tier: tier})
	return e
}

// addBullet spawns a projectile directly
func addBullet(t *testing.T, w *engine.World, pos, vel vmath.Vec2, src engine.BulletSource) engine.Entity {
	t.Helper()
	e, ok := w.Spawn(engine.NewBulletBody(pos, vel))
	if !ok {
		t.Fatal("bullet spawn rejected")
	}
	w.Bullets.Set(e, engine.BulletData{Source: src})
	return e
}

// disarmShipInvuln clears the respawn grace window so hits register
func disarmShipInvuln(w *engine.World) {
	ship, _ := w.Ships.Get(w.Player)
	ship.InvulnTimer = 0
	w.Ships.Set(w.Player, ship)
}

// runSystem drives one system for n ticks with flushes between ticks
func runSystem(w *engine.World, sys engine.System, n int) {
	for i := 0; i < n; i++ {
		sys.Update(w, tick)
		w.Flush()
	}
}

func countClass(w *engine.World, class engine.BodyClass) int {
	n := 0
	for _, e := range w.Bodies.Entities() {
		if b, ok := w.Bodies.Get(e); ok && b.Class == class {
			n++
		}
	}
	return n
}

func totalClassArea(w *engine.World, class engine.BodyClass) float64 {
	sum := 0.0
	for _, e := range w.Bodies.Entities() {
		if b, ok := w.Bodies.Get(e); ok && b.Class == class {
			sum += b.Area
		}
	}
	return sum
}
