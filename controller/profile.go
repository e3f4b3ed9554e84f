package controller

import (
	"github.com/lixenwraith/vector-rocks/config"
)

// Profile is the autopilot's parameter bundle. Selected when the
// controller is constructed, immutable during a run.
type Profile struct {
	Name string

	// perception
	CadenceHz    float64 // decision refreshes per second
	SensorRadius float64 // world units around the ship
	AttentionCap int     // nearest bodies considered

	// threat model
	ThreatTTCWeight  float64
	ThreatDistWeight float64
	ThreatSizeWeight float64
	TTCClamp         float64 // upper bound on 1/ttc
	DistClamp        float64 // upper bound on 1/distance
	TopThreats       int     // threats feeding avoidance
	AvoidThreshold   float64 // total threat that forces evasion

	// target model
	AlignWeight       float64
	TargetDistWeight  float64
	TargetSizeWeight  float64
	LocalThreatWeight float64
	AlignThreshold    float64 // minimum alignment for eligibility and fire

	// commitment
	CommitMin   float64 // seconds
	CommitMax   float64
	SpikeFactor float64 // threat growth that breaks commitment early

	// aim
	AimNoiseBase    float64 // radians at point-blank, stationary, clear
	AimNoiseDist    float64 // radians per world unit of distance
	AimNoiseSpin    float64 // radians per rad/s of own angular velocity
	AimNoiseClutter float64 // radians per nearby body
	Skill           float64 // divides the noise; higher is better
	AimTolerance    float64 // fire only when expected error is below this
}

// sensor radius default is 1.2x the viewport width
const defaultSensorRadius = 1.2 * 800

// CasualProfile reacts slowly, aims loosely, and changes its mind often
func CasualProfile() Profile {
	return Profile{
		Name:         "casual",
		CadenceHz:    5,
		SensorRadius: defaultSensorRadius,
		AttentionCap: 10,

		ThreatTTCWeight:  1.0,
		ThreatDistWeight: 0.3,
		ThreatSizeWeight: 0.01,
		TTCClamp:         4,
		DistClamp:        0.5,
		TopThreats:       3,
		AvoidThreshold:   1.6,

		AlignWeight:       1.0,
		TargetDistWeight:  40,
		TargetSizeWeight:  0.005,
		LocalThreatWeight: 0.3,
		AlignThreshold:    0.85,

		CommitMin:   0.5,
		CommitMax:   0.9,
		SpikeFactor: 1.6,

		AimNoiseBase:    0.06,
		AimNoiseDist:    0.0004,
		AimNoiseSpin:    0.05,
		AimNoiseClutter: 0.015,
		Skill:           1.0,
		AimTolerance:    0.22,
	}
}

// BalancedProfile is the default opponent-grade pilot
func BalancedProfile() Profile {
	p := CasualProfile()
	p.Name = "balanced"
	p.CadenceHz = 8
	p.TopThreats = 4
	p.AvoidThreshold = 1.9
	p.AlignThreshold = 0.9
	p.CommitMin = 0.7
	p.CommitMax = 1.2
	p.Skill = 1.8
	p.AimTolerance = 0.15
	return p
}

// VeteranProfile reacts fast, holds plans longer, and shoots tight
func VeteranProfile() Profile {
	p := CasualProfile()
	p.Name = "veteran"
	p.CadenceHz = 10
	p.TopThreats = 5
	p.AvoidThreshold = 2.2
	p.AlignThreshold = 0.93
	p.CommitMin = 0.9
	p.CommitMax = 1.5
	p.SpikeFactor = 2.0
	p.Skill = 3.0
	p.AimTolerance = 0.09
	return p
}

// ProfileFor maps the config enum to its parameter bundle
func ProfileFor(p config.AiProfile) Profile {
	switch p {
	case config.ProfileCasual:
		return CasualProfile()
	case config.ProfileVeteran:
		return VeteranProfile()
	default:
		return BalancedProfile()
	}
}
