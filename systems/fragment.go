package systems

import (
	"math"
	"sort"

	"github.com/lixenwraith/vector-rocks/config"
	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// hitKind distinguishes what destroyed an asteroid. Under full
// fragmentation, bullet hits slice while blunt impacts shatter.
type hitKind uint8

const (
	hitBullet hitKind = iota
	hitBlunt
)

// destroyAsteroid scores the kill, records stats for player shots, and
// subdivides the body per the fragmentation mode. The despawn of the
// parent is unconditional; only the children vary by mode.
func (s *CollisionSystem) destroyAsteroid(w *engine.World, e engine.Entity, body engine.Body, impact vmath.Vec2, kind hitKind, fromPlayer bool) {
	data, _ := w.Asteroids.Get(e)
	s.kill(w, e)

	if fromPlayer {
		w.State.Score += data.Tier.Score()
		w.State.Stats.RecordHit(engine.ClassAsteroid, data.Tier, 0)
	}

	if body.Radius < constants.MinFragmentRadius {
		spawnDebrisBurst(w, body.Pos, body.Area)
		return
	}

	w.Metrics.FragEvents.Add(1)

	switch w.Config.Fragmentation {
	case config.FragmentationOff:
		spawnDebrisBurst(w, body.Pos, body.Area)
	case config.FragmentationClassicSplit:
		s.classicSplit(w, body, data)
	case config.FragmentationSliceOnly:
		if !s.slice(w, body, impact) {
			s.classicSplit(w, body, data)
		}
	case config.FragmentationExplode:
		s.explode(w, body)
	case config.FragmentationFull:
		if kind == hitBullet {
			if !s.slice(w, body, impact) {
				s.classicSplit(w, body, data)
			}
		} else {
			s.explode(w, body)
		}
	}
}

// classicSplit replaces the parent with two children one tier down, headed
// away from the parent's course by a fixed lateral angle. The smallest
// tier shatters to debris instead.
func (s *CollisionSystem) classicSplit(w *engine.World, body engine.Body, data engine.AsteroidData) {
	next, ok := data.Tier.Next()
	if !ok {
		spawnDebrisBurst(w, body.Pos, body.Area)
		return
	}
	speed := body.Vel.Length()
	if speed < constants.AsteroidMinSpeed {
		speed = constants.AsteroidMinSpeed
	}
	heading := body.Vel.Angle()

	children := make([]engine.Body, 0, 2)
	total := 0.0
	for _, lateral := range []float64{constants.SplitLateralAngle, -constants.SplitLateralAngle} {
		vel := vmath.FromAngle(heading + lateral).Scale(speed)
		child := engine.NewAsteroidBody(next, body.Pos, vel, w.Budgets.VMax, w.Rng)
		children = append(children, child)
		total += child.Area
	}

	// outline jitter can overshoot the parent's area; shrink both children
	// uniformly so the combined child area never exceeds it
	if total > body.Area && body.Area > 0 {
		shrink := math.Sqrt(body.Area / total)
		for i := range children {
			children[i].Outline = vmath.ScalePolygon(children[i].Outline, shrink)
			children[i].Radius = vmath.PolygonBoundingRadius(children[i].Outline, vmath.Vec2{})
			children[i].Area = vmath.PolygonArea(children[i].Outline)
		}
	}

	for _, child := range children {
		if ce, spawned := w.Spawn(child); spawned {
			w.Asteroids.Set(ce, engine.AsteroidData{Tier: next})
		}
	}
}

// slice cuts the asteroid's polygon along the impact direction through its
// center. Degenerate cuts are retried with a perturbed line; false means
// the retry budget ran out without a valid split.
func (s *CollisionSystem) slice(w *engine.World, body engine.Body, impact vmath.Vec2) bool {
	if len(body.Outline) < 3 {
		return false
	}
	poly := vmath.TransformPolygon(body.Outline, body.Angle, body.Pos)
	minArea := constants.SliceMinAreaFraction * body.Area

	dir := impact
	if dir == (vmath.Vec2{}) {
		dir = vmath.FromAngle(w.Rng.Range(-3.141592653589793, 3.141592653589793))
	}
	for attempt := 0; attempt <= constants.SliceRetryBudget; attempt++ {
		left, right, ok := vmath.SplitConvex(poly, body.Pos, dir, minArea, constants.SliceMinEdge)
		if ok {
			s.spawnPieces(w, body, [][]vmath.Vec2{left, right})
			return true
		}
		dir = dir.Rotated(w.Rng.Range(0.3, 1.2))
	}
	return false
}

// explode performs up to K cuts, always subdividing the current largest
// piece, keeps the N largest results as solid fragments, and converts the
// rest to debris carrying their area
func (s *CollisionSystem) explode(w *engine.World, body engine.Body) {
	if len(body.Outline) < 3 {
		spawnDebrisBurst(w, body.Pos, body.Area)
		return
	}
	pieces := [][]vmath.Vec2{vmath.TransformPolygon(body.Outline, body.Angle, body.Pos)}

	for cut := 0; cut < constants.ExplodeCutAttempts; cut++ {
		// largest piece by area is the cut target
		target := 0
		for i := 1; i < len(pieces); i++ {
			if vmath.PolygonArea(pieces[i]) > vmath.PolygonArea(pieces[target]) {
				target = i
			}
		}
		poly := pieces[target]
		center := vmath.PolygonCentroid(poly)
		dir := vmath.FromAngle(w.Rng.Range(-3.141592653589793, 3.141592653589793))
		minArea := constants.SliceMinAreaFraction * vmath.PolygonArea(poly)
		left, right, ok := vmath.SplitConvex(poly, center, dir, minArea, constants.SliceMinEdge)
		if !ok {
			continue
		}
		pieces[target] = left
		pieces = append(pieces, right)
	}

	sort.Slice(pieces, func(i, j int) bool {
		return vmath.PolygonArea(pieces[i]) > vmath.PolygonArea(pieces[j])
	})

	kept := pieces
	if len(kept) > constants.ExplodeKeepPieces {
		kept = kept[:constants.ExplodeKeepPieces]
		for _, rest := range pieces[constants.ExplodeKeepPieces:] {
			spawnAreaDebris(w, vmath.PolygonCentroid(rest), vmath.PolygonArea(rest))
		}
	}
	s.spawnPieces(w, body, kept)
}

// spawnPieces materializes polygon fragments as asteroid bodies. The
// per-event fragment cap is enforced here: excess pieces become debris
// carrying their area instead of being dropped silently.
func (s *CollisionSystem) spawnPieces(w *engine.World, parent engine.Body, pieces [][]vmath.Vec2) {
	parentArea := parent.Area
	if parentArea <= 0 {
		parentArea = 1
	}
	spawned := 0
	for _, piece := range pieces {
		area := vmath.PolygonArea(piece)
		centroid := vmath.PolygonCentroid(piece)

		overCap := spawned >= w.Budgets.FragEventCap
		tooSmall := vmath.PolygonBoundingRadius(piece, centroid) < constants.MinFragmentRadius
		tooDetailed := len(piece) > w.Budgets.VMax
		if overCap || tooSmall || tooDetailed {
			spawnAreaDebris(w, centroid, area)
			continue
		}

		// separation impulse scales with the piece's share of parent mass
		normal := centroid.Sub(parent.Pos).Normalized()
		if normal == (vmath.Vec2{}) {
			normal = vmath.FromAngle(w.Rng.Range(-3.141592653589793, 3.141592653589793))
		}
		vel := parent.Vel.Add(normal.Scale(constants.DebrisSpeed * area / parentArea))
		angVel := w.Rng.Range(-constants.AsteroidMaxRotation, constants.AsteroidMaxRotation)

		frag := engine.NewFragmentBody(piece, vel, angVel)
		e, ok := w.Spawn(frag)
		if !ok {
			spawnAreaDebris(w, centroid, area)
			continue
		}
		w.Asteroids.Set(e, engine.AsteroidData{Tier: tierForRadius(frag.Radius)})
		spawned++
	}
}

func tierForRadius(r float64) engine.AsteroidTier {
	switch {
	case r >= (constants.LargeAsteroidRadius+constants.MediumAsteroidRadius)/2:
		return engine.TierLarge
	case r >= (constants.MediumAsteroidRadius+constants.SmallAsteroidRadius)/2:
		return engine.TierMedium
	}
	return engine.TierSmall
}

// spawnDebrisBurst scatters the standard visual debris for a destruction
func spawnDebrisBurst(w *engine.World, pos vmath.Vec2, area float64) {
	ttl := float64(w.Budgets.DebrisTTLMs) / 1000
	share := area / constants.DebrisCount
	for i := 0; i < constants.DebrisCount; i++ {
		dir := vmath.FromAngle(w.Rng.Range(-3.141592653589793, 3.141592653589793))
		speed := constants.DebrisSpeed * w.Rng.Range(0.5, 1.0)
		w.Spawn(engine.NewDebrisBody(pos, dir.Scale(speed), ttl*w.Rng.Range(0.6, 1.0), share))
	}
}

// spawnAreaDebris converts a discarded fragment into a single debris body
// that keeps the fragment's area on the books
func spawnAreaDebris(w *engine.World, pos vmath.Vec2, area float64) {
	ttl := float64(w.Budgets.DebrisTTLMs) / 1000
	dir := vmath.FromAngle(w.Rng.Range(-3.141592653589793, 3.141592653589793))
	w.Spawn(engine.NewDebrisBody(pos, dir.Scale(constants.DebrisSpeed), ttl, area))
}
