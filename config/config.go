package config

import "fmt"

// PhysicsMode selects how much kinematic fidelity the movement system applies
type PhysicsMode uint8

const (
	PhysicsOff PhysicsMode = iota
	PhysicsArcade
	PhysicsLite
)

// CollisionPolicy selects which body pairs the collision system tests.
// It never affects shape splitting; see FragmentationMode.
type CollisionPolicy uint8

const (
	// CollisionPlayerOnly tests only ship/bullet against asteroid/alien
	// pairs; fragment-fragment pairs are absent, not merely cheap
	CollisionPlayerOnly CollisionPolicy = iota

	// CollisionBigOnly adds fragment-fragment pairs where both radii
	// reach the big-collision threshold
	CollisionBigOnly

	// CollisionFull tests all active pairs; the only policy whose cost is
	// unbounded in body count and the intended guard trigger
	CollisionFull
)

// FragmentationMode selects what a lethal hit does to asteroid geometry
type FragmentationMode uint8

const (
	FragmentationOff FragmentationMode = iota
	FragmentationClassicSplit
	FragmentationSliceOnly
	FragmentationExplode
	FragmentationFull
)

// ControllerMode selects who produces the per-tick control intent
type ControllerMode uint8

const (
	ControllerHuman ControllerMode = iota
	ControllerAutopilot
)

// AiProfile names an autopilot parameter bundle
type AiProfile uint8

const (
	ProfileCasual AiProfile = iota
	ProfileBalanced
	ProfileVeteran
)

// LeaderboardMode selects score persistence behavior
type LeaderboardMode uint8

const (
	LeaderboardOff LeaderboardMode = iota
	LeaderboardLocalTop10
)

// Budgets are process-wide numeric ceilings read by every system that spawns
// or subdivides bodies. Mutable only by the performance guard after run start.
type Budgets struct {
	MaxBodies          int
	FragEventCap       int
	DebrisTTLMs        int
	BigCollisionRadius float64
	VMax               int
}

// ClassicBudgets returns the default ceilings
func ClassicBudgets() Budgets {
	return Budgets{
		MaxBodies:          800,
		FragEventCap:       4,
		DebrisTTLMs:        900,
		BigCollisionRadius: 32.0,
		VMax:               24,
	}
}

// ArcadeBudgets returns the looser ceilings used by the upgrades preset
func ArcadeBudgets() Budgets {
	return Budgets{
		MaxBodies:          900,
		FragEventCap:       4,
		DebrisTTLMs:        900,
		BigCollisionRadius: 32.0,
		VMax:               24,
	}
}

// GameConfig is the immutable-per-run policy set. It is assembled before the
// simulation starts and never mutated mid-tick; a new run takes a new value.
type GameConfig struct {
	Controller         ControllerMode
	Profile            AiProfile
	Leaderboard        LeaderboardMode
	Budgets            Budgets
	Physics            PhysicsMode
	Fragmentation      FragmentationMode
	Collision          CollisionPolicy
	UpgradesEnabled    bool
	GuardEnabled       bool
	AllowAutoDowngrade bool
	Seed               uint64
}

// Default returns the classic preset
func Default() GameConfig {
	return GameConfig{
		Controller:         ControllerHuman,
		Profile:            ProfileBalanced,
		Leaderboard:        LeaderboardLocalTop10,
		Budgets:            ClassicBudgets(),
		Physics:            PhysicsArcade,
		Fragmentation:      FragmentationClassicSplit,
		Collision:          CollisionPlayerOnly,
		UpgradesEnabled:    false,
		GuardEnabled:       true,
		AllowAutoDowngrade: true,
		Seed:               1,
	}
}

func (m PhysicsMode) String() string {
	switch m {
	case PhysicsOff:
		return "off"
	case PhysicsArcade:
		return "arcade"
	case PhysicsLite:
		return "lite"
	}
	return fmt.Sprintf("physics(%d)", uint8(m))
}

func (p CollisionPolicy) String() string {
	switch p {
	case CollisionPlayerOnly:
		return "player-only"
	case CollisionBigOnly:
		return "big-only"
	case CollisionFull:
		return "full"
	}
	return fmt.Sprintf("collision(%d)", uint8(p))
}

func (m FragmentationMode) String() string {
	switch m {
	case FragmentationOff:
		return "off"
	case FragmentationClassicSplit:
		return "classic-split"
	case FragmentationSliceOnly:
		return "slice-only"
	case FragmentationExplode:
		return "explode"
	case FragmentationFull:
		return "full"
	}
	return fmt.Sprintf("fragmentation(%d)", uint8(m))
}

func (p AiProfile) String() string {
	switch p {
	case ProfileCasual:
		return "casual"
	case ProfileBalanced:
		return "balanced"
	case ProfileVeteran:
		return "veteran"
	}
	return fmt.Sprintf("profile(%d)", uint8(p))
}

// Downgraded returns the policy one fidelity step lower, used by the guard.
// PlayerOnly is already the floor.
func (p CollisionPolicy) Downgraded() CollisionPolicy {
	switch p {
	case CollisionFull:
		return CollisionBigOnly
	case CollisionBigOnly:
		return CollisionPlayerOnly
	}
	return CollisionPlayerOnly
}
