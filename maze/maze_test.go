package maze

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/vmath"
)

func TestCarveRoundsToOdd(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{10, 8, 9, 7},
		{21, 15, 21, 15},
		{1, 2, 3, 3},
	}
	for _, tt := range tests {
		l := Carve(tt.w, tt.h, 0, rand.New(rand.NewSource(1)))
		if l.Width() != tt.wantW || l.Height() != tt.wantH {
			t.Errorf("Carve(%d, %d) = %dx%d, want %dx%d", tt.w, tt.h, l.Width(), l.Height(), tt.wantW, tt.wantH)
		}
	}
}

func TestCarveSolutionPath(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		l := Carve(21, 15, 0.3, rand.New(rand.NewSource(seed)))
		path := l.SolutionPath
		if len(path) == 0 {
			t.Fatalf("seed %d: no solution", seed)
		}
		if path[0] != l.Start || path[len(path)-1] != l.End {
			t.Errorf("seed %d: path runs %v..%v, want %v..%v", seed, path[0], path[len(path)-1], l.Start, l.End)
		}
		for i, p := range path {
			if l.Grid[p.Y][p.X] == Wall {
				t.Errorf("seed %d: path point %d %v is a wall", seed, i, p)
			}
			if i == 0 {
				continue
			}
			dx, dy := p.X-path[i-1].X, p.Y-path[i-1].Y
			if dx*dx+dy*dy != 1 {
				t.Errorf("seed %d: path step %d not 4-connected", seed, i)
			}
		}
	}
}

func TestCarveBorderIntact(t *testing.T) {
	l := Carve(15, 11, 1, rand.New(rand.NewSource(3)))
	for x := 0; x < l.Width(); x++ {
		if l.Grid[0][x] != Wall || l.Grid[l.Height()-1][x] != Wall {
			t.Fatalf("border open at column %d", x)
		}
	}
	for y := 0; y < l.Height(); y++ {
		if l.Grid[y][0] != Wall || l.Grid[y][l.Width()-1] != Wall {
			t.Fatalf("border open at row %d", y)
		}
	}
}

func TestBraidingAvoidsPlazas(t *testing.T) {
	l := Carve(31, 21, 1, rand.New(rand.NewSource(11)))
	for y := 0; y+1 < l.Height(); y++ {
		for x := 0; x+1 < l.Width(); x++ {
			if !l.Grid[y][x] && !l.Grid[y][x+1] && !l.Grid[y+1][x] && !l.Grid[y+1][x+1] {
				t.Errorf("2x2 open plaza at (%d, %d)", x, y)
			}
		}
	}
}

func TestBuild(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7

	m, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	scale := cfg.Scale
	if m.Width != cfg.Width*scale || m.Height != cfg.Height*scale {
		t.Errorf("size %dx%d, want %dx%d", m.Width, m.Height, cfg.Width*scale, cfg.Height*scale)
	}
	if got := m.Count(gridmap.CellFinish); got != scale*scale {
		t.Errorf("finish cells = %d, want %d", got, scale*scale)
	}

	if len(m.Routes) != 1 || len(m.Routes[0]) < 2 {
		t.Fatalf("routes = %v, want one route with at least two waypoints", m.Routes)
	}
	route := m.Routes[0]

	shipPos := vmath.V2Add(m.Start, vmath.V2(0.5, 0.5))
	if route[0] != shipPos {
		t.Errorf("route starts at %v, ship starts at %v", route[0], shipPos)
	}
	sx, sy := vmath.V2Floor(shipPos)
	if c := m.CellAt(sx, sy); c != gridmap.CellEmpty {
		t.Errorf("ship starts on %v", c)
	}
	ex, ey := vmath.V2Floor(route[len(route)-1])
	if c := m.CellAt(ex, ey); c != gridmap.CellFinish {
		t.Errorf("route ends on %v, want finish", c)
	}

	// Consecutive waypoints are axis aligned and every cell between is open
	for i := 1; i < len(route); i++ {
		a, b := route[i-1], route[i]
		if a.X != b.X && a.Y != b.Y {
			t.Errorf("segment %d not axis aligned: %v -> %v", i-1, a, b)
		}
		for s := 0.0; s <= 1; s += 0.05 {
			p := vmath.V2Add(a, vmath.V2Scale(vmath.V2Sub(b, a), s))
			x, y := vmath.V2Floor(p)
			if m.Solid(x, y) {
				t.Errorf("segment %d crosses terrain at (%d, %d)", i-1, x, y)
				break
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42

	a, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("same seed produced different maps")
	}
}

func TestBuildInterference(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	cfg.Braiding = 0

	cfg.Interference = 0
	m, err := Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := m.Count(gridmap.CellInterference); n != 0 {
		t.Errorf("interference cells = %d with chance 0", n)
	}

	cfg.Interference = 1
	m, err = Build(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if n := m.Count(gridmap.CellInterference); n == 0 {
		t.Error("no interference cells with chance 1")
	}
	for _, p := range m.Routes[0] {
		x, y := vmath.V2Floor(p)
		if m.CellAt(x, y) == gridmap.CellInterference {
			t.Errorf("waypoint %v lies in interference", p)
		}
	}
}
