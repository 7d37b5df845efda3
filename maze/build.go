package maze

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/parameter"
	"github.com/lixenwraith/deepecho/vmath"
)

// ErrUnsolvable is returned when the carved maze has no path from start to end
var ErrUnsolvable = errors.New("maze: no path from start to end")

// Config controls map generation
type Config struct {
	Width, Height int // Topology size in tiles

	// Braiding: 0.0 (perfect maze, tree) to 1.0 (no dead ends)
	Braiding float64

	// Interference is the chance each dead-end tile becomes an interference patch
	Interference float64

	Scale int   // Grid cells per tile side, 0 = parameter.MazeScale
	Seed  int64 // 0 = random
}

// DefaultConfig returns the generation defaults from the parameter package
func DefaultConfig() Config {
	return Config{
		Width:        parameter.MazeWidth,
		Height:       parameter.MazeHeight,
		Braiding:     parameter.MazeBraiding,
		Interference: parameter.MazeInterference,
		Scale:        parameter.MazeScale,
	}
}

// Build carves a maze and converts it to a validated grid map.
// Walls become terrain, the end tile becomes finish, and the solution path reduced to its
// turns becomes the single route. The ship starts at the start tile center facing the route
func Build(cfg Config) (*gridmap.GridMap, error) {
	scale := cfg.Scale
	if scale <= 0 {
		scale = parameter.MazeScale
	}
	rng := newRNG(cfg.Seed)

	l := Carve(cfg.Width, cfg.Height, cfg.Braiding, rng)
	if len(l.SolutionPath) == 0 {
		return nil, ErrUnsolvable
	}

	w, h := l.Width()*scale, l.Height()*scale
	m := &gridmap.GridMap{
		Width:  w,
		Height: h,
		Cells:  make([]gridmap.CellType, w*h),
	}

	fill := func(p Point, c gridmap.CellType) {
		for dy := 0; dy < scale; dy++ {
			for dx := 0; dx < scale; dx++ {
				m.Cells[(p.Y*scale+dy)*w+p.X*scale+dx] = c
			}
		}
	}

	for y := range l.Grid {
		for x, wall := range l.Grid[y] {
			if wall {
				fill(Point{x, y}, gridmap.CellTerrain)
			}
		}
	}

	// Dead ends off the solution path are where interference hides
	if cfg.Interference > 0 {
		onPath := make(map[Point]bool, len(l.SolutionPath))
		for _, p := range l.SolutionPath {
			onPath[p] = true
		}
		for y := 1; y < l.Height()-1; y++ {
			for x := 1; x < l.Width()-1; x++ {
				p := Point{x, y}
				if onPath[p] || l.Grid[y][x] == Wall || exits(l.Grid, p) != 1 {
					continue
				}
				if rng.Float64() < cfg.Interference {
					fill(p, gridmap.CellInterference)
				}
			}
		}
	}

	fill(l.End, gridmap.CellFinish)

	center := func(p Point) vmath.Vec2 {
		s := float64(scale)
		return vmath.V2((float64(p.X)+0.5)*s, (float64(p.Y)+0.5)*s)
	}

	route := gridmap.Route{center(l.SolutionPath[0])}
	for i := 1; i+1 < len(l.SolutionPath); i++ {
		prev, curr, next := l.SolutionPath[i-1], l.SolutionPath[i], l.SolutionPath[i+1]
		if curr.X-prev.X != next.X-curr.X || curr.Y-prev.Y != next.Y-curr.Y {
			route = append(route, center(curr))
		}
	}
	route = append(route, center(l.End))

	// Ship position is Start + (0.5, 0.5)
	m.Start = vmath.V2Sub(center(l.Start), vmath.V2(0.5, 0.5))
	if len(route) > 1 {
		m.StartBearing = vmath.BearingTo(route[0], route[1])
	}
	m.Routes = []gridmap.Route{route}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("maze: generated map invalid: %w", err)
	}
	return m, nil
}
