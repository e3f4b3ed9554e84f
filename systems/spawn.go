package systems

import (
	"time"

	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// SpawnSystem feeds the arena: periodic asteroid waves from the edges and
// score-gated alien saucers. All spawns respect the MaxBodies budget and
// the guard's spawn clamp.
type SpawnSystem struct {
	waveTimer  float64
	alienTimer float64
}

// NewSpawnSystem creates the spawn system
func NewSpawnSystem() engine.System {
	return &SpawnSystem{
		waveTimer:  constants.AsteroidSpawnInterval,
		alienTimer: constants.AlienSpawnInterval,
	}
}

func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

func (s *SpawnSystem) Update(w *engine.World, dt time.Duration) {
	step := dt.Seconds()

	s.waveTimer -= step
	if s.waveTimer <= 0 {
		s.waveTimer += constants.AsteroidSpawnInterval
		if !w.State.SpawnClamped {
			s.spawnAsteroid(w)
		}
	}

	s.alienTimer -= step
	if s.alienTimer <= 0 {
		s.alienTimer += constants.AlienSpawnInterval
		if !w.State.SpawnClamped && w.State.Score >= constants.AlienSpawnScoreThreshold {
			s.spawnAlien(w)
		}
	}
}

// spawnAsteroid places one large asteroid on a random edge, drifting inward
// at a random speed, keeping clear of the ship
func (s *SpawnSystem) spawnAsteroid(w *engine.World) {
	shipPos := w.Arena.Scale(0.5)
	if ship, ok := w.Bodies.Get(w.Player); ok {
		shipPos = ship.Pos
	}
	clearance := 2 * constants.ShipSize

	var pos vmath.Vec2
	for attempt := 0; attempt < 4; attempt++ {
		pos = s.edgePosition(w)
		if pos.DistanceTo(shipPos) > clearance {
			break
		}
	}

	speed := w.Rng.Range(constants.AsteroidMinSpeed, constants.AsteroidMaxSpeed)
	heading := w.Rng.Range(-3.141592653589793, 3.141592653589793)
	vel := vmath.FromAngle(heading).Scale(speed)

	body := engine.NewAsteroidBody(engine.TierLarge, pos, vel, w.Budgets.VMax, w.Rng)
	if e, ok := w.Spawn(body); ok {
		w.Asteroids.Set(e, engine.AsteroidData{Tier: engine.TierLarge})
	}
}

func (s *SpawnSystem) edgePosition(w *engine.World) vmath.Vec2 {
	switch w.Rng.Intn(4) {
	case 0: // top
		return vmath.Vec2{X: w.Rng.Range(0, w.Arena.X)}
	case 1: // bottom
		return vmath.Vec2{X: w.Rng.Range(0, w.Arena.X), Y: w.Arena.Y}
	case 2: // left
		return vmath.Vec2{Y: w.Rng.Range(0, w.Arena.Y)}
	default: // right
		return vmath.Vec2{X: w.Arena.X, Y: w.Rng.Range(0, w.Arena.Y)}
	}
}

// spawnAlien adds a saucer if the per-size population cap allows. Small
// saucers fill first; a large one appears only when smalls are at cap.
func (s *SpawnSystem) spawnAlien(w *engine.World) {
	var smalls, larges int
	for _, e := range w.Aliens.Entities() {
		data, _ := w.Aliens.Get(e)
		if data.Size == engine.AlienSmall {
			smalls++
		} else {
			larges++
		}
	}

	var size engine.AlienSize
	switch {
	case smalls < constants.MaxSmallAliens:
		size = engine.AlienSmall
	case larges < constants.MaxLargeAliens:
		size = engine.AlienLarge
	default:
		return
	}

	dir := 1.0
	x := constants.AlienPatrolMargin
	if w.Rng.Intn(2) == 1 {
		dir = -1.0
		x = w.Arena.X - constants.AlienPatrolMargin
	}

	body := engine.Body{
		Class:  engine.ClassAlien,
		Pos:    vmath.Vec2{X: x, Y: size.PatrolY()},
		Vel:    vmath.Vec2{X: dir * size.Speed()},
		Radius: size.HitRadius(),
	}
	if e, ok := w.Spawn(body); ok {
		w.Aliens.Set(e, engine.AlienData{Size: size, FireTimer: size.FireInterval()})
	}
}
