package constants

import "time"

// Game Loop & Engine Timing
const (
	// SimTickInterval is the fixed simulation timestep (60 Hz)
	SimTickInterval = time.Second / 60

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTicksPerFrame caps accumulator catch-up after a render stall
	MaxTicksPerFrame = 5
)

// Arena
const (
	// ArenaWidth is the virtual arena width in world units
	ArenaWidth = 800.0

	// ArenaHeight is the virtual arena height in world units
	ArenaHeight = 600.0
)

// System Execution Priorities (lower runs first)
// The tick order is fixed: intent, movement, spawn, combat, collision,
// scoring, guard. Systems register once and are sorted by these values.
const (
	PriorityShipControl = 5
	PriorityMovement    = 10
	PrioritySpawn       = 15
	PriorityCombat      = 20
	PriorityCollision   = 25
	PriorityScore       = 30
	PriorityGuard       = 40
)

// Spatial Grid
const (
	// SpatialCellSize is sized near 2x the largest body radius so a
	// radius-sum test only needs the 3x3 cell neighborhood
	SpatialCellSize = 64.0
)
