package physics

import (
	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/vmath"
)

// HitTest classifies the cell under a point and, for terrain, its outward surface normal
type HitTest struct {
	Cell      gridmap.CellType
	Collision bool       // Terrain with a resolvable normal
	Normal    vmath.Vec2 // Unit length when HasNormal
	HasNormal bool
}

// Neighbor weights of the discrete gradient: faces dominate corners 3:1
const (
	faceWeight   = 3
	cornerWeight = 1
)

// Test classifies position against the map.
// Terrain cells get a normal from a weighted gradient of the 8-neighborhood; cells outside
// the map count as terrain so edges push inward. A diagonal neighbor shadowed by a solid
// face neighbor counts as solid. Fully enclosed or isolated terrain has no gradient and
// reports no collision.
func Test(m *gridmap.GridMap, position vmath.Vec2) HitTest {
	x, y := vmath.V2Floor(position)
	cell := m.CellAt(x, y)
	if cell != gridmap.CellTerrain {
		return HitTest{Cell: cell}
	}

	dx, dy := gradient(m, x, y)
	if dx == 0 && dy == 0 {
		return HitTest{Cell: cell}
	}

	return HitTest{
		Cell:      cell,
		Collision: true,
		Normal:    vmath.V2Normalize(vmath.V2(float64(-dx), float64(-dy))),
		HasNormal: true,
	}
}

// gradient returns the weighted solid-neighbor sums, +x right and +y down
func gradient(m *gridmap.GridMap, x, y int) (dx, dy int) {
	solid := func(ox, oy int) int {
		if m.Solid(x+ox, y+oy) {
			return 1
		}
		return 0
	}

	left, right := solid(-1, 0), solid(1, 0)
	up, down := solid(0, -1), solid(0, 1)

	corner := func(ox, oy int, faceX, faceY int) int {
		if faceX == 1 || faceY == 1 {
			return 1
		}
		return solid(ox, oy)
	}
	upLeft := corner(-1, -1, left, up)
	upRight := corner(1, -1, right, up)
	downLeft := corner(-1, 1, left, down)
	downRight := corner(1, 1, right, down)

	dx = faceWeight*(right-left) + cornerWeight*(upRight+downRight-upLeft-downLeft)
	dy = faceWeight*(down-up) + cornerWeight*(downLeft+downRight-upLeft-upRight)
	return dx, dy
}
