// Package gridmap holds the static level geometry: a row-major grid of cell types,
// the ship's start pose, and named waypoint routes
package gridmap

import (
	"github.com/lixenwraith/deepecho/vmath"
)

// CellType classifies one grid cell
type CellType uint8

const (
	// CellEmpty is passable and acoustically transparent
	CellEmpty CellType = iota
	// CellTerrain blocks motion and reflects sonar
	CellTerrain
	// CellFinish marks route completion
	CellFinish
	// CellInterference jams the steering aid
	CellInterference

	cellTypeCount
)

var cellTypeNames = [cellTypeCount]string{"empty", "terrain", "finish", "interference"}

func (c CellType) String() string {
	if c < cellTypeCount {
		return cellTypeNames[c]
	}
	return "invalid"
}

// Valid reports whether c is one of the four known cell types
func (c CellType) Valid() bool {
	return c < cellTypeCount
}

// Route is an ordered waypoint sequence in grid coordinates
type Route []vmath.Vec2

// GridMap is immutable after load, the simulation only reads it
type GridMap struct {
	Width, Height int
	Cells         []CellType // Row-major, len == Width*Height
	Start         vmath.Vec2 // Start cell (integer coordinates)
	StartBearing  float64    // Radians, clockwise from +Y
	Routes        []Route
}

// InBounds reports whether (x, y) addresses a cell
func (m *GridMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// CellAt returns the cell type at (x, y), CellEmpty outside the grid
func (m *GridMap) CellAt(x, y int) CellType {
	if !m.InBounds(x, y) {
		return CellEmpty
	}
	return m.Cells[y*m.Width+x]
}

// Solid reports whether (x, y) is terrain or outside the grid
// Map edges behave as walls so neighbor lookups push inward
func (m *GridMap) Solid(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Cells[y*m.Width+x] == CellTerrain
}

// Size returns the map extent as a vector
func (m *GridMap) Size() vmath.Vec2 {
	return vmath.Vec2{X: float64(m.Width), Y: float64(m.Height)}
}

// ClampPoint limits p to the closed map rectangle [0, Width] x [0, Height]
func (m *GridMap) ClampPoint(p vmath.Vec2) vmath.Vec2 {
	return vmath.V2Clamp(p, vmath.Vec2{}, m.Size())
}

// Count returns how many cells have type c
func (m *GridMap) Count(c CellType) int {
	n := 0
	for _, cell := range m.Cells {
		if cell == c {
			n++
		}
	}
	return n
}

// FromRows builds a map from a [y][x] grid, convenient for tests and generators
func FromRows(rows [][]CellType) *GridMap {
	m := &GridMap{Height: len(rows)}
	if m.Height > 0 {
		m.Width = len(rows[0])
	}
	m.Cells = make([]CellType, 0, m.Width*m.Height)
	for _, row := range rows {
		m.Cells = append(m.Cells, row...)
	}
	return m
}
