package controller

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/status"
	"github.com/lixenwraith/vector-rocks/vmath"
)

const tick = time.Second / 60

// testSnapshot builds a minimal perception window around a ship at the
// arena center facing +X
func testSnapshot(nearby ...engine.BodySnapshot) *engine.WorldSnapshot {
	return &engine.WorldSnapshot{
		ShipPos:   vmath.Vec2{X: 400, Y: 300},
		ShipAngle: 0,
		Arena:     vmath.Vec2{X: 800, Y: 600},
		Wrap:      true,
		TickDelta: tick,
		Nearby:    nearby,
	}
}

// tickUntilRefresh advances the pilot past one reaction interval
func tickUntilRefresh(a *Autopilot, snap *engine.WorldSnapshot) engine.ControlIntent {
	interval := time.Duration(float64(time.Second) / a.profile.CadenceHz)
	var intent engine.ControlIntent
	for elapsed := time.Duration(0); elapsed <= interval; elapsed += tick {
		intent = a.Tick(snap, tick)
	}
	return intent
}

func TestDivergingBodyScoresZeroThreat(t *testing.T) {
	a := NewAutopilot(BalancedProfile(), 7, status.NewRegistry())

	// to the right and moving further right: diverging
	diverging := engine.BodySnapshot{
		ID: 2, Class: engine.ClassAsteroid,
		Pos: vmath.Vec2{X: 500, Y: 300}, Vel: vmath.Vec2{X: 80}, Radius: 20,
	}
	threats, total := a.scoreThreats(testSnapshot(diverging))

	if len(threats) != 0 || total != 0 {
		t.Errorf("diverging body produced threat %v (total %v), want none", threats, total)
	}
}

func TestConvergingBodyRepelsAwayFromIt(t *testing.T) {
	a := NewAutopilot(BalancedProfile(), 7, status.NewRegistry())

	// approaching from the right at ttc = 100/50 = 2s
	converging := engine.BodySnapshot{
		ID: 2, Class: engine.ClassAsteroid,
		Pos: vmath.Vec2{X: 500, Y: 300}, Vel: vmath.Vec2{X: -50}, Radius: 20,
	}
	threats, total := a.scoreThreats(testSnapshot(converging))

	if total <= 0 || len(threats) != 1 {
		t.Fatalf("converging body at ttc=2s scored %v with %d threats, want positive and 1", total, len(threats))
	}
	// repulsion points away from the body: -X
	if threats[0].dir.X >= 0 {
		t.Errorf("avoidance direction %v does not point away from the threat", threats[0].dir)
	}
}

func TestFireWithheldBelowAlignment(t *testing.T) {
	a := NewAutopilot(BalancedProfile(), 7, status.NewRegistry())
	a.fireCooldown = 0 // weapon ready

	// target behind the ship: alignment is far below any threshold
	behind := engine.BodySnapshot{
		ID: 2, Class: engine.ClassAsteroid,
		Pos: vmath.Vec2{X: 200, Y: 300}, Radius: 20,
	}
	snap := testSnapshot(behind)

	for i := 0; i < 120; i++ {
		intent := a.Tick(snap, tick)
		if intent.FirePrimary {
			t.Fatal("fired at a target below the alignment threshold")
		}
		// hold the scenario still: the ship never actually turns
	}
}

func TestFiresAtAlignedTarget(t *testing.T) {
	p := BalancedProfile()
	a := NewAutopilot(p, 7, status.NewRegistry())

	// dead ahead, close, stationary
	ahead := engine.BodySnapshot{
		ID: 2, Class: engine.ClassAsteroid,
		Pos: vmath.Vec2{X: 480, Y: 300}, Radius: 20,
	}
	snap := testSnapshot(ahead)

	fired := false
	for i := 0; i < 300 && !fired; i++ {
		fired = a.Tick(snap, tick).FirePrimary
	}
	if !fired {
		t.Error("never fired at an aligned, close, calm target")
	}
}

func TestFireWithheldWhileAvoiding(t *testing.T) {
	p := BalancedProfile()
	p.AvoidThreshold = 0.01 // any threat forces evasion
	a := NewAutopilot(p, 7, status.NewRegistry())

	incoming := engine.BodySnapshot{
		ID: 2, Class: engine.ClassAsteroid,
		Pos: vmath.Vec2{X: 480, Y: 300}, Vel: vmath.Vec2{X: -200}, Radius: 20,
	}
	snap := testSnapshot(incoming)

	for i := 0; i < 300; i++ {
		if a.Tick(snap, tick).FirePrimary {
			t.Fatal("fired mid-avoidance-maneuver")
		}
	}
}

func TestIntentSequenceDeterministic(t *testing.T) {
	run := func() []engine.ControlIntent {
		a := NewAutopilot(VeteranProfile(), 1234, status.NewRegistry())
		var out []engine.ControlIntent
		for i := 0; i < 240; i++ {
			snap := testSnapshot(engine.BodySnapshot{
				ID: 2, Class: engine.ClassAsteroid,
				Pos: vmath.Vec2{X: 500 - float64(i), Y: 300}, Vel: vmath.Vec2{X: -60}, Radius: 18,
			})
			out = append(out, a.Tick(snap, tick))
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("intent %d diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestCommitmentHoldsTarget(t *testing.T) {
	a := NewAutopilot(VeteranProfile(), 7, status.NewRegistry())

	first := engine.BodySnapshot{
		ID: 2, Class: engine.ClassAsteroid,
		Pos: vmath.Vec2{X: 480, Y: 300}, Radius: 18,
	}
	// a second, slightly better-aligned candidate appears later
	second := engine.BodySnapshot{
		ID: 3, Class: engine.ClassAsteroid,
		Pos: vmath.Vec2{X: 470, Y: 300}, Radius: 18,
	}

	tickUntilRefresh(a, testSnapshot(first))
	if !a.hasTarget || a.target != 2 {
		t.Fatalf("no commitment to the first target, target=%d", a.target)
	}

	tickUntilRefresh(a, testSnapshot(second, first))
	if a.target != 2 {
		t.Errorf("target switched to %d mid-commitment, want 2 held", a.target)
	}
}

func TestThreatSpikeBreaksCommitment(t *testing.T) {
	p := VeteranProfile()
	p.AvoidThreshold = math.MaxFloat64 // keep it in attack mode for the test
	a := NewAutopilot(p, 7, status.NewRegistry())

	calm := testSnapshot(
		engine.BodySnapshot{
			ID: 2, Class: engine.ClassAsteroid,
			Pos: vmath.Vec2{X: 480, Y: 300}, Vel: vmath.Vec2{X: -5}, Radius: 18,
		},
	)
	tickUntilRefresh(a, calm)
	if !a.hasTarget {
		t.Fatal("no initial commitment")
	}
	if a.threatBase != 0 {
		t.Fatalf("calm scene scored threat %v, want 0", a.threatBase)
	}

	// a fast inbound threat appears; commitment must be released
	spike := testSnapshot(
		engine.BodySnapshot{
			ID: 2, Class: engine.ClassAsteroid,
			Pos: vmath.Vec2{X: 480, Y: 300}, Vel: vmath.Vec2{X: -5}, Radius: 18,
		},
		engine.BodySnapshot{
			ID: 9, Class: engine.ClassAsteroid,
			Pos: vmath.Vec2{X: 420, Y: 300}, Vel: vmath.Vec2{X: -400}, Radius: 28,
		},
	)
	tickUntilRefresh(a, spike)

	// a broken commitment forces reselection, which rebases the threat level
	if a.threatBase == 0 {
		t.Error("threat spike did not break the commitment window")
	}
}

func TestInsertThreatKeepsDescendingTopK(t *testing.T) {
	var list []threat
	for _, s := range []float64{1, 5, 3, 4, 2} {
		list = insertThreat(list, threat{score: s}, 3)
	}
	if len(list) != 3 {
		t.Fatalf("kept %d threats, want 3", len(list))
	}
	want := []float64{5, 4, 3}
	for i, w := range want {
		if list[i].score != w {
			t.Errorf("threats[%d].score = %v, want %v", i, list[i].score, w)
		}
	}
}

func TestRefreshCadenceMatchesProfile(t *testing.T) {
	reg := status.NewRegistry()
	p := CasualProfile() // 5 Hz
	a := NewAutopilot(p, 7, reg)

	if got := reg.Floats.Get(status.MetricAiCadenceHz).Get(); got != 5 {
		t.Errorf("published cadence = %v, want 5", got)
	}

	snap := testSnapshot()
	refreshes := 0
	last := a.desiredHeading
	for i := 0; i < 60; i++ { // one second
		a.Tick(snap, tick)
		if a.desiredHeading != last {
			refreshes++
			last = a.desiredHeading
		}
	}
	if refreshes > 6 {
		t.Errorf("%d plan changes in 1s at 5 Hz cadence", refreshes)
	}
}
