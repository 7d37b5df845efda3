// Package maze generates playable grid maps from stochastic mazes
package maze

import (
	"math/rand"
	"time"
)

// Tile states of the topology grid
const (
	Wall    = true
	Passage = false
)

// Point is a tile coordinate
type Point struct {
	X, Y int
}

var (
	stepDirs = []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	jumpDirs = []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
)

// Layout is a generated maze in tile space
type Layout struct {
	Grid         [][]bool // [y][x], Wall or Passage
	Start, End   Point
	SolutionPath []Point // Start to End inclusive, 4-connected
}

// Width returns the tile columns
func (l *Layout) Width() int { return len(l.Grid[0]) }

// Height returns the tile rows
func (l *Layout) Height() int { return len(l.Grid) }

// Carve generates a maze of at most w×h tiles. Even sizes round down to odd, the minimum is 3.
// Braiding in [0, 1] is the chance a dead end is opened into a loop.
// Start is the top-left room and End the bottom-right room
func Carve(w, h int, braiding float64, rng *rand.Rand) *Layout {
	rows, cols := ensureOdd(h), ensureOdd(w)

	grid := make([][]bool, rows)
	for y := range grid {
		grid[y] = make([]bool, cols)
		for x := range grid[y] {
			grid[y][x] = Wall
		}
	}

	start := Point{1, 1}
	end := Point{cols - 2, rows - 2}

	// Recursive backtracker yields a uniform spanning tree
	backtrack(grid, start, rng)

	// Cycles are added after carving so dead ends are final
	if braiding > 0 {
		braid(grid, braiding, rng)
	}

	return &Layout{
		Grid:         grid,
		Start:        start,
		End:          end,
		SolutionPath: solve(grid, start, end),
	}
}

// newRNG seeds from the clock when seed is 0
func newRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func backtrack(grid [][]bool, start Point, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	stack := []Point{start}
	grid[start.Y][start.X] = Passage

	candidates := make([]Point, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range jumpDirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Keep a one tile wall border
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && grid[ny][nx] == Wall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		grid[curr.Y+d.Y/2][curr.X+d.X/2] = Passage
		next := Point{curr.X + d.X, curr.Y + d.Y}
		grid[next.Y][next.X] = Passage
		stack = append(stack, next)
	}
}

// braid opens walls behind dead ends with the given probability, never creating
// 2x2 open plazas or isolated wall pillars
func braid(grid [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(grid), len(grid[0])

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if grid[y][x] == Wall || exits(grid, Point{x, y}) != 1 || rng.Float64() >= probability {
				continue
			}

			var candidates []Point
			for _, jd := range jumpDirs {
				nx, ny := x+jd.X, y+jd.Y
				wx, wy := x+jd.X/2, y+jd.Y/2
				if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
					continue
				}
				if grid[ny][nx] == Passage && grid[wy][wx] == Wall && canRemoveWall(grid, wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				grid[c.Y][c.X] = Passage
			}
		}
	}
}

// exits counts the open orthogonal neighbors of p
func exits(grid [][]bool, p Point) int {
	n := 0
	for _, d := range stepDirs {
		if isPassage(grid, p.X+d.X, p.Y+d.Y) {
			n++
		}
	}
	return n
}

func isPassage(grid [][]bool, x, y int) bool {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[0]) {
		return false
	}
	return grid[y][x] == Passage
}

func isWall(grid [][]bool, x, y int) bool {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[0]) {
		return false
	}
	return grid[y][x] == Wall
}

// canRemoveWall reports whether opening (x, y) keeps the topology free of plazas and pillars
func canRemoveWall(grid [][]bool, x, y int) bool {
	p := func(tx, ty int) bool { return isPassage(grid, tx, ty) }

	// Plaza: any 2x2 quadrant around (x, y) fully open
	for _, q := range [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		if p(x+q[0], y) && p(x, y+q[1]) && p(x+q[0], y+q[1]) {
			return false
		}
	}

	// Pillar: an adjacent wall left with no other wall neighbor
	for _, d := range stepDirs {
		nx, ny := x+d.X, y+d.Y
		if !isWall(grid, nx, ny) {
			continue
		}
		connected := false
		for _, d2 := range stepDirs {
			wx, wy := nx+d2.X, ny+d2.Y
			if (wx != x || wy != y) && isWall(grid, wx, wy) {
				connected = true
				break
			}
		}
		if !connected {
			return false
		}
	}

	return true
}

// solve returns the shortest 4-connected path from start to end, nil if none
func solve(grid [][]bool, start, end Point) []Point {
	if !isPassage(grid, start.X, start.Y) || !isPassage(grid, end.X, end.Y) {
		return nil
	}

	queue := []Point{start}
	cameFrom := map[Point]Point{start: start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			var path []Point
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range stepDirs {
			next := Point{curr.X + d.X, curr.Y + d.Y}
			if _, seen := cameFrom[next]; seen || !isPassage(grid, next.X, next.Y) {
				continue
			}
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
