package engine

import (
	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// Entity is a stable identifier for a simulated body.
// Identifiers are never reused while a body is alive.
type Entity uint64

// BodyClass discriminates the simulated body kinds
type BodyClass uint8

const (
	ClassShip BodyClass = iota
	ClassAsteroid
	ClassBullet
	ClassAlien
	ClassDebris
)

func (c BodyClass) String() string {
	switch c {
	case ClassShip:
		return "ship"
	case ClassAsteroid:
		return "asteroid"
	case ClassBullet:
		return "bullet"
	case ClassAlien:
		return "alien"
	case ClassDebris:
		return "debris"
	}
	return "unknown"
}

// Body is the shared kinematic state of every simulated entity.
// Outline, when present, is a convex CCW polygon in body-local space with
// at most Budgets.VMax vertices.
type Body struct {
	Class   BodyClass
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Angle   float64
	AngVel  float64
	Radius  float64
	Area    float64 // mass proxy; polygon area when an outline exists
	TTL     float64 // seconds remaining; 0 means no lifetime
	Outline []vmath.Vec2
}

// AsteroidTier is the classic three-step size ladder
type AsteroidTier uint8

const (
	TierLarge AsteroidTier = iota
	TierMedium
	TierSmall
)

// Radius returns the nominal tier radius
func (t AsteroidTier) Radius() float64 {
	switch t {
	case TierLarge:
		return constants.LargeAsteroidRadius
	case TierMedium:
		return constants.MediumAsteroidRadius
	}
	return constants.SmallAsteroidRadius
}

// Vertices returns the outline vertex count for the tier
func (t AsteroidTier) Vertices() int {
	switch t {
	case TierLarge:
		return constants.LargeAsteroidVertices
	case TierMedium:
		return constants.MediumAsteroidVertices
	}
	return constants.SmallAsteroidVertices
}

// Score returns the points awarded for destroying this tier
func (t AsteroidTier) Score() int {
	switch t {
	case TierLarge:
		return constants.AsteroidScoreBase
	case TierMedium:
		return constants.AsteroidScoreBase * 2
	}
	return constants.AsteroidScoreBase * 4
}

// Next returns the child tier after a split, ok=false below the smallest
func (t AsteroidTier) Next() (AsteroidTier, bool) {
	switch t {
	case TierLarge:
		return TierMedium, true
	case TierMedium:
		return TierSmall, true
	}
	return TierSmall, false
}

// AlienSize distinguishes the two saucer variants
type AlienSize uint8

const (
	AlienSmall AlienSize = iota
	AlienLarge
)

// PatrolY returns the fixed patrol altitude
func (s AlienSize) PatrolY() float64 {
	if s == AlienSmall {
		return constants.SmallAlienY
	}
	return constants.LargeAlienY
}

// Speed returns the horizontal patrol speed
func (s AlienSize) Speed() float64 {
	if s == AlienSmall {
		return constants.SmallAlienSpeed
	}
	return constants.LargeAlienSpeed
}

// FireInterval returns seconds between shots
func (s AlienSize) FireInterval() float64 {
	if s == AlienSmall {
		return constants.SmallAlienFireInterval
	}
	return constants.LargeAlienFireInterval
}

// HitRadius returns the collision radius
func (s AlienSize) HitRadius() float64 {
	if s == AlienSmall {
		return constants.SmallAlienHitRadius
	}
	return constants.LargeAlienHitRadius
}

// Score returns the points awarded for destroying this saucer
func (s AlienSize) Score() int {
	if s == AlienSmall {
		return constants.SmallAlienScore
	}
	return constants.LargeAlienScore
}

// ConeHalfAngle returns the aim cone half-angle, tightening with score
func (s AlienSize) ConeHalfAngle(score int) float64 {
	normalized := float64(min(score, constants.AlienAimScoreCap)) / float64(constants.AlienAimScoreCap)
	base, tight := constants.SmallAlienConeBase, constants.SmallAlienConeTight
	if s == AlienLarge {
		base, tight = constants.LargeAlienConeBase, constants.LargeAlienConeTight
	}
	return base - (base-tight)*normalized
}

// AsteroidData is the tier satellite component for asteroid bodies
type AsteroidData struct {
	Tier AsteroidTier
}

// AlienData is the saucer satellite component
type AlienData struct {
	Size      AlienSize
	FireTimer float64
}

// BulletSource records who fired a bullet
type BulletSource uint8

const (
	SourcePlayer BulletSource = iota
	SourceAlien
)

// BulletData is the projectile satellite component
type BulletData struct {
	Source BulletSource
}

// ShipData is the player satellite component
type ShipData struct {
	PrimaryCooldown   float64
	SecondaryCooldown float64
	InvulnTimer       float64
}
