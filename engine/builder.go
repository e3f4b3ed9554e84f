package engine

import (
	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// Body constructors shared by the spawn and fragmentation systems so both
// enforce the same outline and budget invariants.

// NewAsteroidBody builds an asteroid body with a generated convex outline.
// The vertex count is clamped to vMax; radius and area come from the
// generated geometry, not the nominal tier values.
func NewAsteroidBody(tier AsteroidTier, pos, vel vmath.Vec2, vMax int, rng *vmath.FastRand) Body {
	verts := tier.Vertices()
	if verts > vMax {
		verts = vMax
	}
	outline := vmath.GenerateOutline(verts, tier.Radius(), rng)
	return Body{
		Class:   ClassAsteroid,
		Pos:     pos,
		Vel:     vel,
		Angle:   rng.Range(0, 6.283185307179586),
		AngVel:  rng.Range(-constants.AsteroidMaxRotation, constants.AsteroidMaxRotation),
		Radius:  vmath.PolygonBoundingRadius(outline, vmath.Vec2{}),
		Area:    vmath.PolygonArea(outline),
		Outline: outline,
	}
}

// NewFragmentBody builds an asteroid-class body from an arena-space polygon
// piece, recentered on its own centroid
func NewFragmentBody(piece []vmath.Vec2, vel vmath.Vec2, angVel float64) Body {
	centroid := vmath.PolygonCentroid(piece)
	local := vmath.TranslatePolygon(piece, centroid.Scale(-1))
	return Body{
		Class:   ClassAsteroid,
		Pos:     centroid,
		Vel:     vel,
		AngVel:  angVel,
		Radius:  vmath.PolygonBoundingRadius(local, vmath.Vec2{}),
		Area:    vmath.PolygonArea(local),
		Outline: local,
	}
}

// NewBulletBody builds a projectile body
func NewBulletBody(pos, vel vmath.Vec2) Body {
	return Body{
		Class:  ClassBullet,
		Pos:    pos,
		Vel:    vel,
		Radius: constants.BulletRadius,
		TTL:    constants.BulletTTLSec,
	}
}

// NewDebrisBody builds a non-colliding, time-limited particle
func NewDebrisBody(pos, vel vmath.Vec2, ttlSec float64, area float64) Body {
	return Body{
		Class:  ClassDebris,
		Pos:    pos,
		Vel:    vel,
		Radius: 1,
		Area:   area,
		TTL:    ttlSec,
	}
}
