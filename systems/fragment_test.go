package systems

import (
	"testing"

	"github.com/lixenwraith/vector-rocks/config"
	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// shoot destroys the given asteroid with a player bullet and flushes
func shoot(t *testing.T, w *engine.World, target engine.Entity) {
	t.Helper()
	body, ok := w.Bodies.Get(target)
	if !ok {
		t.Fatal("shoot target missing")
	}
	addBullet(t, w, body.Pos, vmath.Vec2{X: constants.BulletSpeed}, engine.SourcePlayer)
	runSystem(w, NewCollisionSystem(), 1)
	if w.Bodies.Has(target) {
		t.Fatal("target survived the shot")
	}
}

func TestClassicSplitSpawnsTwoChildren(t *testing.T) {
	w := newWorld(t, nil)
	parent := addAsteroid(t, w, engine.TierLarge, vmath.Vec2{X: 150, Y: 150}, vmath.Vec2{X: 60})

	shoot(t, w, parent)

	if got := w.Asteroids.Count(); got != 2 {
		t.Fatalf("children = %d, want 2", got)
	}
	for _, e := range w.Asteroids.Entities() {
		data, _ := w.Asteroids.Get(e)
		if data.Tier != engine.TierMedium {
			t.Errorf("child tier = %v, want medium", data.Tier)
		}
		body, _ := w.Bodies.Get(e)
		if speed := body.Vel.Length(); speed < constants.AsteroidMinSpeed {
			t.Errorf("child speed %v below floor %v", speed, constants.AsteroidMinSpeed)
		}
	}
}

func TestSmallestTierShattersToDebris(t *testing.T) {
	w := newWorld(t, nil)
	parent := addAsteroid(t, w, engine.TierSmall, vmath.Vec2{X: 150, Y: 150}, vmath.Vec2{X: 60})

	shoot(t, w, parent)

	if got := w.Asteroids.Count(); got != 0 {
		t.Errorf("smallest tier left %d asteroid children, want 0", got)
	}
	if got := countClass(w, engine.ClassDebris); got == 0 {
		t.Error("no debris from the smallest tier")
	}
}

func TestClassicSplitConservesArea(t *testing.T) {
	// child outlines are re-jittered, so sweep seeds to catch jitter tails
	for seed := uint64(1); seed <= 200; seed++ {
		w := newWorld(t, func(c *config.GameConfig) { c.Seed = seed })
		parent := addAsteroid(t, w, engine.TierLarge, vmath.Vec2{X: 200, Y: 200}, vmath.Vec2{X: 60})
		parentBody, _ := w.Bodies.Get(parent)

		shoot(t, w, parent)

		total := totalClassArea(w, engine.ClassAsteroid) + totalClassArea(w, engine.ClassDebris)
		if total > parentBody.Area*1.01 {
			t.Fatalf("seed %d: post-split area %v exceeds parent %v", seed, total, parentBody.Area)
		}
	}
}

func TestSliceConservesArea(t *testing.T) {
	w := newWorld(t, func(c *config.GameConfig) {
		c.Fragmentation = config.FragmentationSliceOnly
	})
	parent := addAsteroid(t, w, engine.TierLarge, vmath.Vec2{X: 200, Y: 200}, vmath.Vec2{})
	parentBody, _ := w.Bodies.Get(parent)

	shoot(t, w, parent)

	total := totalClassArea(w, engine.ClassAsteroid) + totalClassArea(w, engine.ClassDebris)
	if total > parentBody.Area*1.01 {
		t.Errorf("post-split area %v exceeds parent %v", total, parentBody.Area)
	}
	if w.Asteroids.Count() == 0 {
		t.Error("slice produced no solid fragments")
	}
}

func TestSliceFragmentsAreConvexWithinBudget(t *testing.T) {
	w := newWorld(t, func(c *config.GameConfig) {
		c.Fragmentation = config.FragmentationSliceOnly
	})
	parent := addAsteroid(t, w, engine.TierLarge, vmath.Vec2{X: 200, Y: 200}, vmath.Vec2{})

	shoot(t, w, parent)

	for _, e := range w.Asteroids.Entities() {
		body, _ := w.Bodies.Get(e)
		if len(body.Outline) > w.Budgets.VMax {
			t.Errorf("fragment outline has %d vertices, budget %d", len(body.Outline), w.Budgets.VMax)
		}
		if !vmath.IsConvex(body.Outline, vmath.Epsilon) {
			t.Errorf("fragment outline not convex: %v", body.Outline)
		}
		if vmath.PolygonArea(body.Outline) <= 0 {
			t.Error("fragment with non-positive area")
		}
	}
}

func TestExplodeRespectsFragmentCap(t *testing.T) {
	w := newWorld(t, func(c *config.GameConfig) {
		c.Fragmentation = config.FragmentationExplode
	})
	w.Budgets.FragEventCap = 2
	parent := addAsteroid(t, w, engine.TierLarge, vmath.Vec2{X: 200, Y: 200}, vmath.Vec2{})

	shoot(t, w, parent)

	if got := w.Asteroids.Count(); got > 2 {
		t.Errorf("fragments = %d over a cap of 2", got)
	}
	// excess pieces must survive as debris area, not vanish
	if countClass(w, engine.ClassDebris) == 0 && w.Asteroids.Count() < 2 {
		t.Error("capped pieces were dropped silently")
	}
}

func TestExplodeConservesArea(t *testing.T) {
	w := newWorld(t, func(c *config.GameConfig) {
		c.Fragmentation = config.FragmentationExplode
	})
	parent := addAsteroid(t, w, engine.TierLarge, vmath.Vec2{X: 200, Y: 200}, vmath.Vec2{})
	parentBody, _ := w.Bodies.Get(parent)

	shoot(t, w, parent)

	total := totalClassArea(w, engine.ClassAsteroid) + totalClassArea(w, engine.ClassDebris)
	if total > parentBody.Area*1.01 {
		t.Errorf("post-explode area %v exceeds parent %v", total, parentBody.Area)
	}
}

func TestFragmentationOffLeavesOnlyDebris(t *testing.T) {
	w := newWorld(t, func(c *config.GameConfig) {
		c.Fragmentation = config.FragmentationOff
	})
	parent := addAsteroid(t, w, engine.TierLarge, vmath.Vec2{X: 200, Y: 200}, vmath.Vec2{})

	shoot(t, w, parent)

	if got := w.Asteroids.Count(); got != 0 {
		t.Errorf("fragmentation off left %d asteroid children, want 0", got)
	}
	if countClass(w, engine.ClassDebris) == 0 {
		t.Error("no cosmetic debris with fragmentation off")
	}
}

func TestSliceFallsBackToClassicSplit(t *testing.T) {
	w := newWorld(t, func(c *config.GameConfig) {
		c.Fragmentation = config.FragmentationSliceOnly
	})
	// an asteroid stripped of its outline can never slice
	parent := addAsteroid(t, w, engine.TierLarge, vmath.Vec2{X: 200, Y: 200}, vmath.Vec2{X: 60})
	body, _ := w.Bodies.Get(parent)
	body.Outline = nil
	w.Bodies.Set(parent, body)

	shoot(t, w, parent)

	if got := w.Asteroids.Count(); got != 2 {
		t.Errorf("fallback children = %d, want 2 from classic split", got)
	}
}

func TestFragEventMetricCountsPerTick(t *testing.T) {
	w := newWorld(t, nil)
	parent := addAsteroid(t, w, engine.TierLarge, vmath.Vec2{X: 150, Y: 150}, vmath.Vec2{X: 60})
	sys := NewCollisionSystem()
	pb, _ := w.Bodies.Get(parent)
	addBullet(t, w, pb.Pos, vmath.Vec2{X: constants.BulletSpeed}, engine.SourcePlayer)

	runSystem(w, sys, 1)
	if got := w.Metrics.FragEvents.Load(); got != 1 {
		t.Errorf("frag events this tick = %d, want 1", got)
	}

	// next tick has no fragmentation; the per-tick counter resets
	runSystem(w, sys, 1)
	if got := w.Metrics.FragEvents.Load(); got != 0 {
		t.Errorf("frag events after quiet tick = %d, want 0", got)
	}
}
