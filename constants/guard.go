package constants

import "time"

// Performance Guard thresholds
const (
	// GuardWindowTicks is how long metrics must stay bad before degrading
	GuardWindowTicks = 30

	// GuardRecoverTicks is how long metrics must stay good before recovering
	GuardRecoverTicks = 90

	// GuardEnterBudget is the rolling tick cost that triggers degradation
	GuardEnterBudget = 6 * time.Millisecond

	// GuardExitBudget is the rolling tick cost that permits recovery
	GuardExitBudget = 3500 * time.Microsecond

	// GuardBodyEnterFraction of MaxBodies also triggers degradation
	GuardBodyEnterFraction = 0.9

	// GuardBodyExitFraction of MaxBodies must be reached before recovery
	GuardBodyExitFraction = 0.6

	// GuardMaxSeverity is the last rung of the degradation ladder
	GuardMaxSeverity = 5

	// Budget knob floors and caps for the degradation steps
	GuardDebrisTTLFloorMs  = 150
	GuardFragCapFloor      = 2
	GuardBigRadiusGrowth   = 1.5
	GuardBigRadiusMaxScale = 3.0
)

// Fragmentation
const (
	// SliceRetryBudget bounds degenerate-cut retries before the
	// classic-split fallback takes over
	SliceRetryBudget = 3

	// SliceMinAreaFraction rejects pieces below this share of the parent
	SliceMinAreaFraction = 0.05

	// SliceMinEdge rejects near-zero edges in split output
	SliceMinEdge = 0.5

	// ExplodeCutAttempts is the K bound on recursive explode cuts
	ExplodeCutAttempts = 3

	// ExplodeKeepPieces is the N largest pieces kept as solid bodies
	ExplodeKeepPieces = 3

	// MinFragmentRadius is the size below which a body shatters to debris
	// and score instead of splitting further
	MinFragmentRadius = 6.0
)
