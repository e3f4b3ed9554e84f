package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/vector-rocks/constants"
)

type countingController struct {
	calls  int
	intent ControlIntent
}

func (c *countingController) Tick(snap *WorldSnapshot, dt time.Duration) ControlIntent {
	c.calls++
	return c.intent
}

func TestLoopAccumulatorStepsFixedTicks(t *testing.T) {
	w := newTestWorld(t)
	ctrl := &countingController{}
	loop := NewLoop(w, ctrl, 300, 16)

	start := time.Unix(0, 0)
	if got := loop.Advance(start); got != 0 {
		t.Errorf("first advance ran %d ticks, want 0", got)
	}
	if got := loop.Advance(start.Add(3 * constants.SimTickInterval)); got != 3 {
		t.Errorf("advance ran %d ticks, want 3", got)
	}
	if ctrl.calls != 3 {
		t.Errorf("controller ticked %d times, want 3", ctrl.calls)
	}
	if w.State.Tick != 3 {
		t.Errorf("world tick = %d, want 3", w.State.Tick)
	}
}

func TestLoopCapsCatchUpAfterStall(t *testing.T) {
	w := newTestWorld(t)
	loop := NewLoop(w, &countingController{}, 300, 16)

	start := time.Unix(0, 0)
	loop.Advance(start)
	if got := loop.Advance(start.Add(time.Second)); got != constants.MaxTicksPerFrame {
		t.Errorf("stall catch-up ran %d ticks, want %d", got, constants.MaxTicksPerFrame)
	}
	// Leftover backlog is dropped, not carried forward
	if got := loop.Advance(start.Add(time.Second + time.Millisecond)); got != 0 {
		t.Errorf("post-stall advance ran %d ticks, want 0", got)
	}
}

func TestLoopSkipsTicksAfterGameOver(t *testing.T) {
	w := newTestWorld(t)
	ctrl := &countingController{}
	loop := NewLoop(w, ctrl, 300, 16)
	w.State.GameOver = true

	start := time.Unix(0, 0)
	loop.Advance(start)
	loop.Advance(start.Add(4 * constants.SimTickInterval))

	if ctrl.calls != 0 {
		t.Errorf("controller ticked %d times after game over, want 0", ctrl.calls)
	}
	if w.State.Tick != 0 {
		t.Errorf("world advanced to tick %d after game over, want 0", w.State.Tick)
	}
}
