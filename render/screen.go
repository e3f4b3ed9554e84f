// Package render draws the simulation as vector outlines on a terminal
// screen. It reads world state after a completed tick and never mutates
// it.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vector-rocks/engine"
	"github.com/lixenwraith/vector-rocks/vmath"
)

// Screen owns the tcell terminal and the world-to-cell projection.
// Terminal cells are roughly twice as tall as wide; the projection
// compensates so shapes keep their aspect.
type Screen struct {
	tc     tcell.Screen
	scaleX float64
	scaleY float64
}

var (
	styleShip     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAsteroid = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBullet   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAlien    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDebris   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	styleBanner   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// New initializes the terminal screen
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	tc.HideCursor()
	return &Screen{tc: tc}, nil
}

// Terminal exposes the underlying screen for the input event loop
func (s *Screen) Terminal() tcell.Screen {
	return s.tc
}

// Close restores the terminal
func (s *Screen) Close() {
	s.tc.Fini()
}

// project maps world coordinates onto terminal cells
func (s *Screen) project(p vmath.Vec2) (int, int) {
	return int(p.X * s.scaleX), int(p.Y * s.scaleY)
}

// Draw renders one frame from the current world state
func (s *Screen) Draw(w *engine.World) {
	cols, rows := s.tc.Size()
	if cols < 2 || rows < 3 {
		return
	}
	s.scaleX = float64(cols) / w.Arena.X
	s.scaleY = float64(rows-1) / w.Arena.Y // bottom row is the HUD

	s.tc.Clear()
	for _, e := range w.Bodies.Entities() {
		body, ok := w.Bodies.Get(e)
		if !ok {
			continue
		}
		switch body.Class {
		case engine.ClassShip:
			s.drawShip(w, body)
		case engine.ClassAsteroid:
			s.drawOutline(body, styleAsteroid)
		case engine.ClassBullet:
			x, y := s.project(body.Pos)
			s.tc.SetContent(x, y, '·', nil, styleBullet)
		case engine.ClassAlien:
			s.drawAlien(body)
		case engine.ClassDebris:
			x, y := s.project(body.Pos)
			s.tc.SetContent(x, y, '.', nil, styleDebris)
		}
	}
	s.drawHUD(w, rows-1)
	if w.State.GameOver {
		s.drawBanner(cols, rows, "GAME OVER")
	}
	s.tc.Show()
}

// drawShip renders the hull triangle from the heading
func (s *Screen) drawShip(w *engine.World, body engine.Body) {
	style := styleShip
	if ship, ok := w.Ships.Get(w.Player); ok && ship.InvulnTimer > 0 {
		// blink during the grace window
		if (w.State.Tick/6)%2 == 0 {
			return
		}
	}
	nose := body.Pos.Add(vmath.FromAngle(body.Angle).Scale(body.Radius * 1.4))
	left := body.Pos.Add(vmath.FromAngle(body.Angle + 2.5).Scale(body.Radius))
	right := body.Pos.Add(vmath.FromAngle(body.Angle - 2.5).Scale(body.Radius))
	s.line(nose, left, style)
	s.line(left, right, style)
	s.line(right, nose, style)
}

func (s *Screen) drawAlien(body engine.Body) {
	r := body.Radius
	left := body.Pos.Add(vmath.Vec2{X: -r})
	right := body.Pos.Add(vmath.Vec2{X: r})
	top := body.Pos.Add(vmath.Vec2{Y: -r * 0.5})
	s.line(left, right, styleAlien)
	s.line(left, top, styleAlien)
	s.line(top, right, styleAlien)
}

// drawOutline plots a closed polygon in world space
func (s *Screen) drawOutline(body engine.Body, style tcell.Style) {
	if len(body.Outline) < 3 {
		x, y := s.project(body.Pos)
		s.tc.SetContent(x, y, 'o', nil, style)
		return
	}
	poly := vmath.TransformPolygon(body.Outline, body.Angle, body.Pos)
	for i := range poly {
		s.line(poly[i], poly[(i+1)%len(poly)], style)
	}
}

// line plots a world-space segment with Bresenham stepping in cell space
func (s *Screen) line(a, b vmath.Vec2, style tcell.Style) {
	x0, y0 := s.project(a)
	x1, y1 := s.project(b)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.tc.SetContent(x0, y0, '*', nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
