package constants

// Ship
const (
	// ShipThrust is forward acceleration in units/s² at full throttle
	ShipThrust = 400.0

	// ShipMaxSpeed caps ship velocity magnitude
	ShipMaxSpeed = 320.0

	// ShipDrag is the per-second velocity decay factor
	ShipDrag = 0.25

	// ShipRotationSpeed is turn rate in rad/s at full deflection
	ShipRotationSpeed = 3.0

	// ShipSize is the nominal hull length in world units
	ShipSize = 14.0

	// ShipHitRadius is the collision radius (slightly forgiving)
	ShipHitRadius = ShipSize * 0.9

	// RespawnInvulnerabilitySec is the grace window after losing a life
	RespawnInvulnerabilitySec = 3.0
)

// Lives & Scoring
const (
	MaxLives           = 3
	ExtraLifeScoreStep = 10_000
	AsteroidScoreBase  = 100
)

// Asteroids
const (
	AsteroidMinSpeed      = 20.0
	AsteroidMaxSpeed      = 90.0
	AsteroidSpawnInterval = 2.5 // seconds between spawn waves

	LargeAsteroidRadius  = 28.0
	MediumAsteroidRadius = 18.0
	SmallAsteroidRadius  = 10.0

	LargeAsteroidVertices  = 12
	MediumAsteroidVertices = 10
	SmallAsteroidVertices  = 8

	// AsteroidMaxRotation is the magnitude bound on spin rate in rad/s
	AsteroidMaxRotation = 0.8

	// SplitLateralAngle is the half-angle between classic-split children
	SplitLateralAngle = 0.3
)

// Bullets
const (
	BulletSpeed  = 520.0
	BulletRadius = 2.0
	BulletTTLSec = 2.0

	// PrimaryFireRate is primary shots per second
	PrimaryFireRate = 10.0

	// SecondaryCount is the number of bullets in the secondary fan
	SecondaryCount = 21

	// SecondarySpread is the angle between adjacent fan bullets
	SecondarySpread = 0.0872664626 // π/36

	// SecondaryFireRate spaces full fans so sustained output matches primary
	SecondaryFireRate = PrimaryFireRate / SecondaryCount
)

// Aliens
const (
	AlienSpawnScoreThreshold = 40_000
	AlienSpawnInterval       = 5.0 // seconds between spawn attempts

	SmallAlienY            = 110.0
	LargeAlienY            = 70.0
	SmallAlienSpeed        = 160.0
	LargeAlienSpeed        = 96.0
	SmallAlienFireInterval = 1.1
	LargeAlienFireInterval = 1.9
	SmallAlienHitRadius    = 12.0
	LargeAlienHitRadius    = 16.0
	SmallAlienScore        = 1000
	LargeAlienScore        = 200
	MaxSmallAliens         = 2
	MaxLargeAliens         = 1

	// AlienPatrolMargin keeps saucers off the arena edges
	AlienPatrolMargin = 30.0

	// Alien aim cones tighten linearly as score approaches AlienAimScoreCap
	AlienAimScoreCap    = 100_000
	SmallAlienConeBase  = 0.9
	SmallAlienConeTight = 0.25
	LargeAlienConeBase  = 1.1
	LargeAlienConeTight = 0.35
)

// Debris
const (
	DebrisCount = 6
	DebrisSpeed = 120.0
)
