package engine

import (
	"sort"
	"time"

	"github.com/lixenwraith/vector-rocks/vmath"
)

// BodySnapshot is one perceived body inside a WorldSnapshot
type BodySnapshot struct {
	ID     Entity
	Class  BodyClass
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
}

// WorldSnapshot is the bounded, read-only projection handed to controllers.
// It never aliases mutable store state; Refresh copies everything it
// exposes. Lifetime is one controller decision cycle.
type WorldSnapshot struct {
	ShipPos    vmath.Vec2
	ShipVel    vmath.Vec2
	ShipAngle  float64
	ShipAngVel float64
	Arena      vmath.Vec2
	Wrap       bool
	TickDelta  time.Duration

	// Nearby is distance-sorted and capped at the attention limit
	Nearby []BodySnapshot
}

// ShipForward returns the unit vector along the ship heading
func (s *WorldSnapshot) ShipForward() vmath.Vec2 {
	return vmath.FromAngle(s.ShipAngle)
}

// Refresh rebuilds the snapshot from authoritative state, keeping only
// bodies within sensorRadius of the ship and the closest attentionCap of
// those. The backing slice is reused between refreshes.
func (s *WorldSnapshot) Refresh(w *World, sensorRadius float64, attentionCap int, dt time.Duration) {
	s.Arena = w.Arena
	s.Wrap = true
	s.TickDelta = dt
	s.Nearby = s.Nearby[:0]

	ship, ok := w.Bodies.Get(w.Player)
	if !ok {
		return
	}
	s.ShipPos = ship.Pos
	s.ShipVel = ship.Vel
	s.ShipAngle = ship.Angle
	s.ShipAngVel = ship.AngVel

	radiusSq := sensorRadius * sensorRadius
	for _, e := range w.Bodies.Entities() {
		if e == w.Player {
			continue
		}
		b, ok := w.Bodies.Get(e)
		if !ok || b.Class == ClassDebris {
			continue
		}
		if b.Pos.DistanceSqTo(ship.Pos) > radiusSq {
			continue
		}
		s.Nearby = append(s.Nearby, BodySnapshot{
			ID:     e,
			Class:  b.Class,
			Pos:    b.Pos,
			Vel:    b.Vel,
			Radius: b.Radius,
		})
	}

	shipPos := ship.Pos
	sort.Slice(s.Nearby, func(i, j int) bool {
		di := s.Nearby[i].Pos.DistanceSqTo(shipPos)
		dj := s.Nearby[j].Pos.DistanceSqTo(shipPos)
		if di != dj {
			return di < dj
		}
		return s.Nearby[i].ID < s.Nearby[j].ID
	})
	if attentionCap > 0 && len(s.Nearby) > attentionCap {
		s.Nearby = s.Nearby[:attentionCap]
	}
}
