package engine

import (
	"github.com/lixenwraith/vector-rocks/vmath"
)

// SpatialGrid is the broad-phase index for collision pair pruning. Cells
// hold entity lists that keep allocated capacity across Clear, so a
// steady-state tick does not allocate. Entities are indexed by center
// position; queries expand their reach by the largest body radius seen
// this tick to stay conservative.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]Entity
}

// NewSpatialGrid creates a grid covering width×height world units
func NewSpatialGrid(width, height, cellSize float64) *SpatialGrid {
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1
	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]Entity, cols*rows),
	}
}

// Clear resets all cells, keeping allocated capacity
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

func (g *SpatialGrid) cellIndex(pos vmath.Vec2) int {
	cx := int(pos.X / g.cellSize)
	cy := int(pos.Y / g.cellSize)
	if cx < 0 {
		cx = 0
	} else if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= g.rows {
		cy = g.rows - 1
	}
	return cy*g.cols + cx
}

// Insert adds an entity at its center position
func (g *SpatialGrid) Insert(e Entity, pos vmath.Vec2) {
	idx := g.cellIndex(pos)
	g.cells[idx] = append(g.cells[idx], e)
}

// ForEachNear calls fn for every entity indexed within reach of pos.
// Conservative: visits whole cells, so callers still need the narrow-phase
// radius test. fn may be called for entities farther than reach.
func (g *SpatialGrid) ForEachNear(pos vmath.Vec2, reach float64, fn func(Entity)) {
	minX := int((pos.X - reach) / g.cellSize)
	maxX := int((pos.X + reach) / g.cellSize)
	minY := int((pos.Y - reach) / g.cellSize)
	maxY := int((pos.Y + reach) / g.cellSize)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= g.cols {
		maxX = g.cols - 1
	}
	if maxY >= g.rows {
		maxY = g.rows - 1
	}
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			for _, e := range g.cells[cy*g.cols+cx] {
				fn(e)
			}
		}
	}
}
