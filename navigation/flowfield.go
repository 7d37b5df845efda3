package navigation

import (
	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/vmath"
)

// Direction constants for flow field
// Index into DirVectors: N=0, NE=1, E=2, SE=3, S=4, SW=5, W=6, NW=7
const (
	DirNone   int8 = -1 // Blocked or unreachable
	DirTarget int8 = -2 // At target cell
	DirCount  int8 = 8
)

// Direction vectors, N is -Y (up on the grid)
var DirVectors = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Weighted edge costs: cardinal = 10, diagonal = 14 (≈10√2)
const (
	costCardinal    = 10
	costDiagonal    = 14
	costUnreachable = 1<<30 - 1
)

var dirCosts = [8]int{
	costCardinal, costDiagonal, costCardinal, costDiagonal,
	costCardinal, costDiagonal, costCardinal, costDiagonal,
}

// --- Min-heap for Dijkstra ---

type heapEntry struct {
	idx  int // Flat grid index (y*width + x)
	dist int
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].dist <= (*h)[i].dist {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].dist < (*h)[left].dist {
			smallest = right
		}
		if (*h)[i].dist <= (*h)[smallest].dist {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// FlowField stores per-cell descent directions toward the nearest finish cell
type FlowField struct {
	Width, Height int
	Directions    []int8 // Per-cell direction index, DirNone if blocked or unreachable
	Distances     []int  // Weighted distance to nearest target (cardinal=10, diagonal=14)
}

// ComputeFlowField runs a multi-source weighted Dijkstra from every finish cell.
// Terrain blocks, diagonal moves may not cut terrain corners
func ComputeFlowField(m *gridmap.GridMap) *FlowField {
	w := m.Width
	size := w * m.Height
	f := &FlowField{
		Width:      w,
		Height:     m.Height,
		Directions: make([]int8, size),
		Distances:  make([]int, size),
	}

	for i := 0; i < size; i++ {
		f.Directions[i] = DirNone
		f.Distances[i] = costUnreachable
	}

	blocked := m.Solid
	heap := make(minHeap, 0, size/4)
	for i, c := range m.Cells {
		if c == gridmap.CellFinish {
			f.Distances[i] = 0
			f.Directions[i] = DirTarget
			heap.push(heapEntry{idx: i})
		}
	}

	// Phase 1: Weighted Dijkstra
	for len(heap) > 0 {
		entry := heap.pop()
		if entry.dist > f.Distances[entry.idx] {
			continue // Stale entry
		}

		cx, cy := entry.idx%w, entry.idx/w
		for dirIdx := int8(0); dirIdx < DirCount; dirIdx++ {
			dx, dy := DirVectors[dirIdx][0], DirVectors[dirIdx][1]
			nx, ny := cx+dx, cy+dy
			if blocked(nx, ny) {
				continue
			}
			if dx != 0 && dy != 0 && (blocked(cx+dx, cy) || blocked(cx, cy+dy)) {
				continue
			}

			nIdx := ny*w + nx
			newDist := entry.dist + dirCosts[dirIdx]
			if newDist < f.Distances[nIdx] {
				f.Distances[nIdx] = newDist
				heap.push(heapEntry{idx: nIdx, dist: newDist})
			}
		}
	}

	// Phase 2: Steepest descent per cell
	for y := 0; y < f.Height; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			dist := f.Distances[idx]
			if dist >= costUnreachable || dist == 0 {
				continue
			}

			bestDir := DirNone
			bestDist := dist
			for dirIdx := int8(0); dirIdx < DirCount; dirIdx++ {
				dx, dy := DirVectors[dirIdx][0], DirVectors[dirIdx][1]
				nx, ny := x+dx, y+dy
				if !m.InBounds(nx, ny) {
					continue
				}
				nDist := f.Distances[ny*w+nx]
				if nDist >= bestDist {
					continue
				}
				if dx != 0 && dy != 0 && (blocked(x+dx, y) || blocked(x, y+dy)) {
					continue
				}
				bestDist = nDist
				bestDir = dirIdx
			}
			f.Directions[idx] = bestDir
		}
	}

	return f
}

// Direction returns flow direction at cell, DirNone outside the field
func (f *FlowField) Direction(x, y int) int8 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return DirNone
	}
	return f.Directions[y*f.Width+x]
}

// Distance returns weighted distance to the nearest finish, -1 if unreachable
func (f *FlowField) Distance(x, y int) int {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return -1
	}
	d := f.Distances[y*f.Width+x]
	if d >= costUnreachable {
		return -1
	}
	return d
}

// PlanRoute follows the flow field from the map start to the nearest finish and
// returns the path reduced to its turning points as cell centers, false if no finish is reachable
func PlanRoute(m *gridmap.GridMap) (gridmap.Route, bool) {
	f := ComputeFlowField(m)
	x, y := vmath.V2Floor(m.Start)
	if f.Distance(x, y) < 0 {
		return nil, false
	}

	center := func(x, y int) vmath.Vec2 {
		return vmath.V2(float64(x)+0.5, float64(y)+0.5)
	}

	route := gridmap.Route{center(x, y)}
	prevDir := DirNone
	for steps := 0; steps < len(f.Directions); steps++ {
		dir := f.Direction(x, y)
		if dir == DirTarget {
			last := center(x, y)
			if route[len(route)-1] != last {
				route = append(route, last)
			}
			return route, true
		}
		if dir == DirNone {
			return nil, false
		}
		if prevDir != DirNone && dir != prevDir {
			route = append(route, center(x, y))
		}
		prevDir = dir
		x += DirVectors[dir][0]
		y += DirVectors[dir][1]
	}
	return nil, false
}
