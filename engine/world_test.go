package engine

import (
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vector-rocks/config"
	"github.com/lixenwraith/vector-rocks/status"
	"github.com/lixenwraith/vector-rocks/vmath"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 42
	return NewWorld(cfg, zerolog.Nop(), status.NewRegistry())
}

func TestNewWorldSpawnsShip(t *testing.T) {
	w := newTestWorld(t)

	body, ok := w.Bodies.Get(w.Player)
	if !ok {
		t.Fatal("player ship not spawned")
	}
	if body.Class != ClassShip {
		t.Errorf("player class = %v, want ship", body.Class)
	}
	if body.Pos != w.Arena.Scale(0.5) {
		t.Errorf("ship pos = %v, want arena center %v", body.Pos, w.Arena.Scale(0.5))
	}
	ship, ok := w.Ships.Get(w.Player)
	if !ok {
		t.Fatal("ship component missing")
	}
	if ship.InvulnTimer <= 0 {
		t.Error("ship should start invulnerable")
	}
	if w.State.Lives != 3 {
		t.Errorf("lives = %d, want 3", w.State.Lives)
	}
}

func TestSpawnEnforcesMaxBodies(t *testing.T) {
	w := newTestWorld(t)
	w.Budgets.MaxBodies = 5

	spawned := 0
	for i := 0; i < 10; i++ {
		if _, ok := w.Spawn(Body{Class: ClassDebris, Radius: 1}); ok {
			spawned++
		}
	}
	// The ship occupies one slot
	if spawned != 4 {
		t.Errorf("spawned %d bodies over a cap of 5 (ship included), want 4", spawned)
	}
	if w.Bodies.Count() != 5 {
		t.Errorf("body count = %d, want 5", w.Bodies.Count())
	}
	if got := w.Metrics.BudgetRejected.Load(); got != 6 {
		t.Errorf("budget rejections = %d, want 6", got)
	}
}

func TestDespawnIsDeferredAndDeduplicated(t *testing.T) {
	w := newTestWorld(t)
	e, _ := w.Spawn(Body{Class: ClassBullet, Radius: 2})
	w.Bullets.Set(e, BulletData{Source: SourcePlayer})

	w.Despawn(e)
	w.Despawn(e)

	if !w.Bodies.Has(e) {
		t.Fatal("entity removed before Flush")
	}
	w.Flush()
	if w.Bodies.Has(e) || w.Bullets.Has(e) {
		t.Error("entity still present after Flush")
	}
	if len(w.pending) != 0 || len(w.pendingSet) != 0 {
		t.Error("pending queue not drained")
	}
}

func TestStoreRemovalPreservesIterationOrder(t *testing.T) {
	s := NewStore[int]()
	for i := Entity(1); i <= 5; i++ {
		s.Set(i, int(i))
	}
	s.Remove(3)

	want := []Entity{1, 2, 4, 5}
	got := s.Entities()
	if len(got) != len(want) {
		t.Fatalf("entity count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entities[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

type priorityProbe struct {
	priority int
	order    *[]int
}

func (p *priorityProbe) Update(w *World, dt time.Duration) {
	*p.order = append(*p.order, p.priority)
}

func (p *priorityProbe) Priority() int { return p.priority }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := newTestWorld(t)
	var order []int
	for _, p := range []int{30, 5, 20, 10} {
		w.AddSystem(&priorityProbe{priority: p, order: &order})
	}
	w.Step(ControlIntent{}, time.Second/60)

	want := []int{5, 10, 20, 30}
	if len(order) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("execution order %v, want %v", order, want)
		}
	}
}

func TestStepSanitizesIntent(t *testing.T) {
	w := newTestWorld(t)
	w.Step(ControlIntent{Thrust: math.Inf(1), Turn: -7}, time.Second/60)

	if w.Intent.Thrust != 0 {
		t.Errorf("non-finite thrust = %v, want 0", w.Intent.Thrust)
	}
	if w.Intent.Turn != -1 {
		t.Errorf("turn = %v, want clamped to -1", w.Intent.Turn)
	}
}

func TestSanitizeBodyClampsNonFinite(t *testing.T) {
	w := newTestWorld(t)
	b := Body{
		Class: ClassAsteroid,
		Pos:   vmath.Vec2{X: math.NaN(), Y: 10},
		Vel:   vmath.Vec2{X: math.Inf(1)},
		Angle: math.NaN(),
	}
	if !w.SanitizeBody(99, &b) {
		t.Fatal("sanitize did not report a clamp")
	}
	if !b.Pos.IsFinite() || !b.Vel.IsFinite() || !vmath.IsFinite(b.Angle) {
		t.Error("body still non-finite after sanitize")
	}
	if b.Pos != w.Arena.Scale(0.5) {
		t.Errorf("clamped pos = %v, want arena center", b.Pos)
	}
	if got := w.Metrics.AnomaliesClamped.Load(); got != 1 {
		t.Errorf("anomaly count = %d, want 1", got)
	}

	healthy := Body{Class: ClassAsteroid, Pos: vmath.Vec2{X: 1, Y: 2}}
	if w.SanitizeBody(100, &healthy) {
		t.Error("finite body reported as clamped")
	}
}

func TestWorldDeterminismAcrossRuns(t *testing.T) {
	run := func() []vmath.Vec2 {
		cfg := config.Default()
		cfg.Seed = 777
		w := NewWorld(cfg, zerolog.Nop(), status.NewRegistry())
		for i := 0; i < 20; i++ {
			pos := vmath.Vec2{X: w.Rng.Range(0, 800), Y: w.Rng.Range(0, 600)}
			vel := vmath.Vec2{X: w.Rng.Range(-90, 90), Y: w.Rng.Range(-90, 90)}
			body := NewAsteroidBody(TierLarge, pos, vel, w.Budgets.VMax, w.Rng)
			w.Spawn(body)
		}
		var out []vmath.Vec2
		for _, e := range w.Bodies.Entities() {
			b, _ := w.Bodies.Get(e)
			out = append(out, b.Pos)
		}
		return out
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("run lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("body %d diverged: %v vs %v", i, a[i], b[i])
		}
	}
}
