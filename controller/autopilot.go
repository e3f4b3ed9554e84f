package controller

import (
	"math"
	"time"

	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/status"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// Autopilot produces player-like intents from bounded perception. Heavy
// work happens only at the profile's reaction cadence; ticks between
// refreshes replay the committed plan in O(1).
type Autopilot struct {
	profile Profile
	rng     *vmath.FastRand

	cadence  *status.AtomicFloat
	targetSc *status.AtomicFloat
	threatSc *status.AtomicFloat

	sinceRefresh time.Duration

	// committed plan, valid between refreshes
	desiredHeading float64
	thrust         float64
	avoiding       bool

	target       engine.Entity
	hasTarget    bool
	aimError     float64 // expected aim noise sigma, radians
	commitLeft   float64 // seconds
	threatBase   float64 // threat total when the plan was committed
	fireCooldown float64
}

// threat is one scored hazard considered for avoidance
type threat struct {
	dir   vmath.Vec2 // repulsion direction, away from the body
	score float64
}

// NewAutopilot builds an autopilot with its own deterministic noise
// stream. The registry receives the ai.* telemetry.
func NewAutopilot(profile Profile, seed uint64, reg *status.Registry) *Autopilot {
	a := &Autopilot{
		profile:  profile,
		rng:      vmath.NewFastRand(seed),
		cadence:  reg.Floats.Get(status.MetricAiCadenceHz),
		targetSc: reg.Floats.Get(status.MetricAiTargetScore),
		threatSc: reg.Floats.Get(status.MetricAiThreatScore),
	}
	a.cadence.Set(profile.CadenceHz)
	return a
}

// SensorRadius exposes the perception bound for loop wiring
func (a *Autopilot) SensorRadius() float64 { return a.profile.SensorRadius }

// AttentionCap exposes the perception bound for loop wiring
func (a *Autopilot) AttentionCap() int { return a.profile.AttentionCap }

// Tick implements engine.Controller. Refreshes the plan at the reaction
// cadence, otherwise steers along the committed plan.
func (a *Autopilot) Tick(snap *engine.WorldSnapshot, dt time.Duration) engine.ControlIntent {
	step := dt.Seconds()
	a.sinceRefresh += dt
	if a.commitLeft > 0 {
		a.commitLeft -= step
	}
	if a.fireCooldown > 0 {
		a.fireCooldown -= step
	}

	interval := time.Duration(float64(time.Second) / a.profile.CadenceHz)
	if a.sinceRefresh >= interval {
		a.sinceRefresh -= interval
		a.refresh(snap)
	}

	return a.steer(snap)
}

// refresh runs the full perception pipeline: threat scoring, avoidance,
// target selection, commitment, and the aim model. O(N) in the
// attention-capped body count.
func (a *Autopilot) refresh(snap *engine.WorldSnapshot) {
	threats, total := a.scoreThreats(snap)
	a.threatSc.Set(total)

	// a threat spike breaks commitment early; the additive floor lets a
	// spike from a calm baseline register too
	if a.hasTarget && total > a.threatBase*a.profile.SpikeFactor+0.25 {
		a.commitLeft = 0
	}

	a.avoiding = total >= a.profile.AvoidThreshold

	if a.avoiding {
		a.desiredHeading = a.avoidanceHeading(threats, snap)
		a.thrust = 1
		return
	}

	if a.commitLeft <= 0 || !a.targetVisible(snap) {
		a.chooseTarget(snap, threats, total)
	}

	if a.hasTarget {
		a.aimAtTarget(snap)
		return
	}

	// nothing to shoot and nothing to dodge: wander
	a.desiredHeading = vmath.NormalizeAngle(snap.ShipAngle + a.rng.Range(-0.4, 0.4))
	a.thrust = 0.3
}

// scoreThreats returns the top-K converging hazards and the total score.
// Diverging bodies (negative time to collision) contribute nothing.
func (a *Autopilot) scoreThreats(snap *engine.WorldSnapshot) ([]threat, float64) {
	var kept []threat
	total := 0.0

	for _, b := range snap.Nearby {
		relPos := b.Pos.Sub(snap.ShipPos)
		relVel := b.Vel.Sub(snap.ShipVel)
		closing := relVel.LengthSq()
		if closing < vmath.Epsilon {
			continue
		}
		ttc := -relPos.Dot(relVel) / closing
		if ttc <= 0 {
			continue
		}
		dist := relPos.Length()
		if dist < vmath.Epsilon {
			dist = vmath.Epsilon
		}
		score := a.profile.ThreatTTCWeight*vmath.Clamp(1/ttc, 0, a.profile.TTCClamp) -
			a.profile.ThreatDistWeight*vmath.Clamp(1/dist, 0, a.profile.DistClamp) -
			a.profile.ThreatSizeWeight*b.Radius
		if score <= 0 {
			continue
		}
		total += score

		t := threat{dir: snap.ShipPos.Sub(b.Pos).Normalized(), score: score}
		kept = insertThreat(kept, t, a.profile.TopThreats)
	}
	return kept, total
}

// insertThreat keeps a small descending-score list without sorting the
// full candidate set
func insertThreat(list []threat, t threat, limit int) []threat {
	pos := len(list)
	for i, existing := range list {
		if t.score > existing.score {
			pos = i
			break
		}
	}
	if pos >= limit {
		return list
	}
	list = append(list, threat{})
	copy(list[pos+1:], list[pos:])
	list[pos] = t
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

// avoidanceHeading blends the repulsion vectors of the retained threats
func (a *Autopilot) avoidanceHeading(threats []threat, snap *engine.WorldSnapshot) float64 {
	var sum vmath.Vec2
	for _, t := range threats {
		sum = sum.Add(t.dir.Scale(t.score))
	}
	if sum == (vmath.Vec2{}) {
		return snap.ShipAngle
	}
	return sum.Angle()
}

func (a *Autopilot) targetVisible(snap *engine.WorldSnapshot) bool {
	if !a.hasTarget {
		return false
	}
	for _, b := range snap.Nearby {
		if b.ID == a.target {
			return true
		}
	}
	return false
}

// chooseTarget scores shootable candidates and commits to the best one
// for a profile-dependent window
func (a *Autopilot) chooseTarget(snap *engine.WorldSnapshot, threats []threat, totalThreat float64) {
	forward := snap.ShipForward()
	best := -math.MaxFloat64
	a.hasTarget = false

	for _, b := range snap.Nearby {
		if b.Class != engine.ClassAsteroid && b.Class != engine.ClassAlien {
			continue
		}
		toTarget := b.Pos.Sub(snap.ShipPos)
		dist := toTarget.Length()
		if dist < vmath.Epsilon {
			continue
		}
		alignment := forward.Dot(toTarget.Normalized())
		if alignment < a.profile.AlignThreshold {
			continue
		}
		score := a.profile.AlignWeight*alignment -
			a.profile.TargetDistWeight/dist -
			a.profile.TargetSizeWeight*b.Radius -
			a.profile.LocalThreatWeight*totalThreat
		if score > best {
			best = score
			a.target = b.ID
			a.hasTarget = true
		}
	}

	if a.hasTarget {
		a.commitLeft = a.rng.Range(a.profile.CommitMin, a.profile.CommitMax)
		a.threatBase = totalThreat
		a.targetSc.Set(best)
	} else {
		a.targetSc.Set(0)
	}
}

// aimAtTarget computes a lead-free aim heading with Gaussian noise whose
// sigma grows with distance, own spin, and clutter, and shrinks with skill
func (a *Autopilot) aimAtTarget(snap *engine.WorldSnapshot) {
	var target *engine.BodySnapshot
	for i := range snap.Nearby {
		if snap.Nearby[i].ID == a.target {
			target = &snap.Nearby[i]
			break
		}
	}
	if target == nil {
		a.hasTarget = false
		return
	}

	toTarget := target.Pos.Sub(snap.ShipPos)
	ideal := toTarget.Angle()

	sigma := (a.profile.AimNoiseBase +
		a.profile.AimNoiseDist*toTarget.Length() +
		a.profile.AimNoiseSpin*math.Abs(snap.ShipAngVel) +
		a.profile.AimNoiseClutter*float64(len(snap.Nearby))) / a.profile.Skill

	a.aimError = sigma
	a.desiredHeading = vmath.NormalizeAngle(ideal + a.rng.Normal()*sigma)
	a.thrust = 0.2
	if toTarget.Length() > 250 {
		a.thrust = 0.6
	}
}

// steer converts the committed plan into this tick's intent. Firing
// requires alignment, expected accuracy, a calm controller, and an
// elapsed cooldown all at once.
func (a *Autopilot) steer(snap *engine.WorldSnapshot) engine.ControlIntent {
	err := vmath.NormalizeAngle(a.desiredHeading - snap.ShipAngle)
	intent := engine.ControlIntent{
		Turn:   vmath.Clamp(err*3, -1, 1),
		Thrust: a.thrust,
	}

	if !a.hasTarget || a.avoiding {
		return intent
	}

	// alignment is the dot of ship-forward and the desired direction
	aligned := math.Cos(err) >= a.profile.AlignThreshold
	accurate := a.aimError < a.profile.AimTolerance
	ready := a.fireCooldown <= 0
	if aligned && accurate && ready {
		intent.FirePrimary = true
		a.fireCooldown = 1 / constants.PrimaryFireRate
	}
	return intent
}
