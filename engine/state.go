package engine

// RunStats tallies player combat performance for the HUD and game-over
// screen. Counters saturate conceptually at int range; no wrap handling.
type RunStats struct {
	ShotsFired         int
	ShotsHit           int
	HitsLargeAsteroid  int
	HitsMediumAsteroid int
	HitsSmallAsteroid  int
	HitsLargeAlien     int
	HitsSmallAlien     int
}

// AccuracyPercent returns shots hit over shots fired
func (s RunStats) AccuracyPercent() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.ShotsHit) / float64(s.ShotsFired) * 100
}

// RecordHit attributes a confirmed player hit to its target kind
func (s *RunStats) RecordHit(class BodyClass, tier AsteroidTier, alien AlienSize) {
	s.ShotsHit++
	switch class {
	case ClassAsteroid:
		switch tier {
		case TierLarge:
			s.HitsLargeAsteroid++
		case TierMedium:
			s.HitsMediumAsteroid++
		default:
			s.HitsSmallAsteroid++
		}
	case ClassAlien:
		if alien == AlienLarge {
			s.HitsLargeAlien++
		} else {
			s.HitsSmallAlien++
		}
	}
}

// RunState is the per-run bookkeeping owned by the simulation core
type RunState struct {
	Tick          uint64
	Score         int
	Lives         int
	NextExtraLife int
	GameOver      bool
	Stats         RunStats

	// SpawnClamped suppresses spawn waves while the guard sits at its
	// highest severity
	SpawnClamped bool

	// GodMode disables ship damage entirely (practice/debug toggle)
	GodMode bool
}
