package render

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/leaderboard"
	"github.com/lixenwraith/vector-rocks/status"
)

// drawHUD renders the status line on the bottom row
func (s *Screen) drawHUD(w *engine.World, row int) {
	severity := w.Metrics.GuardSeverity.Load()
	cost := w.Metrics.TickCostMicros.Load()

	text := fmt.Sprintf(" score %d  lives %d  bodies %d  tick %dµs",
		w.State.Score, w.State.Lives, w.Bodies.Count(), cost)
	if severity > 0 {
		text += fmt.Sprintf("  guard %d", severity)
	}
	if w.Config.UpgradesEnabled {
		text += "  upgrades"
	}
	if w.State.GodMode {
		text += "  god"
	}
	s.print(0, row, text, styleHUD)
}

// drawBanner centers a message with the run statistics below it
func (s *Screen) drawBanner(cols, rows int, msg string) {
	s.print((cols-len(msg))/2, rows/2-1, msg, styleBanner)
}

// DrawStats renders the end-of-run statistics block
func (s *Screen) DrawStats(w *engine.World) {
	cols, rows := s.tc.Size()
	stats := w.State.Stats
	lines := []string{
		fmt.Sprintf("final score  %d", w.State.Score),
		fmt.Sprintf("shots fired  %d", stats.ShotsFired),
		fmt.Sprintf("shots hit    %d", stats.ShotsHit),
		fmt.Sprintf("accuracy     %.1f%%", stats.AccuracyPercent()),
		fmt.Sprintf("asteroids    %d/%d/%d (L/M/S)",
			stats.HitsLargeAsteroid, stats.HitsMediumAsteroid, stats.HitsSmallAsteroid),
		fmt.Sprintf("aliens       %d/%d (L/S)", stats.HitsLargeAlien, stats.HitsSmallAlien),
	}
	for i, line := range lines {
		s.print((cols-24)/2, rows/2+1+i, line, styleHUD)
	}
	s.tc.Show()
}

// DrawPaused overlays the pause banner without advancing the frame
func (s *Screen) DrawPaused() {
	cols, rows := s.tc.Size()
	s.drawBanner(cols, rows, "PAUSED")
	s.tc.Show()
}

// DrawNameEntry renders the score submission prompt under the stats block
func (s *Screen) DrawNameEntry(buf string) {
	cols, rows := s.tc.Size()
	s.print((cols-24)/2, rows/2+8, fmt.Sprintf("name: %s_", buf), styleBanner)
	s.tc.Show()
}

// DrawLeaderboard renders the top scores, highlighting the given rank
func (s *Screen) DrawLeaderboard(records []leaderboard.Record, rank int) {
	cols, rows := s.tc.Size()
	top := rows/2 - len(records)/2
	s.print((cols-20)/2, top-2, "HIGH SCORES", styleBanner)
	for i, rec := range records {
		style := styleHUD
		if i+1 == rank {
			style = styleBanner
		}
		s.print((cols-20)/2, top+i, fmt.Sprintf("%2d. %-10s %8d", i+1, rec.Name, rec.Score), style)
	}
	s.print((cols-20)/2, top+len(records)+2, "r restart  q quit", styleHUD)
	s.tc.Show()
}

// DrawTelemetry overlays the metric registry, one metric per line
func (s *Screen) DrawTelemetry(reg *status.Registry) {
	row := 0
	reg.Ints.Range(func(name string, v *atomic.Int64) {
		s.print(0, row, fmt.Sprintf("%s=%d", name, v.Load()), styleHUD)
		row++
	})
	reg.Floats.Range(func(name string, v *status.AtomicFloat) {
		s.print(0, row, fmt.Sprintf("%s=%.2f", name, v.Get()), styleHUD)
		row++
	})
	reg.Bools.Range(func(name string, v *atomic.Bool) {
		s.print(0, row, fmt.Sprintf("%s=%t", name, v.Load()), styleHUD)
		row++
	})
	s.tc.Show()
}

func (s *Screen) print(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		s.tc.SetContent(x+i, y, r, nil, style)
	}
}
