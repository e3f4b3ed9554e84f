package systems

import (
	"time"

	"github.com/lixenwraith/vector-rocks/constants"
	"github.com/lixenwraith/vector-rocks/engine"
)

// ScoreSystem converts accumulated score into extra lives. Score itself is
// awarded at the collision-resolution site; this system only watches the
// running total cross each threshold.
type ScoreSystem struct{}

// NewScoreSystem creates the scoring bookkeeping system
func NewScoreSystem() engine.System {
	return &ScoreSystem{}
}

func (s *ScoreSystem) Priority() int {
	return constants.PriorityScore
}

func (s *ScoreSystem) Update(w *engine.World, dt time.Duration) {
	for w.State.Score >= w.State.NextExtraLife {
		w.State.Lives++
		w.State.NextExtraLife += constants.ExtraLifeScoreStep
		w.Log.Info().
			Int("score", w.State.Score).
			Int("lives", w.State.Lives).
			Msg("extra life awarded")
	}
}
