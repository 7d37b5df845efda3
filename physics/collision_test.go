package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/vmath"
)

const (
	E = gridmap.CellEmpty
	T = gridmap.CellTerrain
	F = gridmap.CellFinish
	I = gridmap.CellInterference
)

func exampleMap() *gridmap.GridMap {
	return gridmap.FromRows([][]gridmap.CellType{
		{T, T, E, E},
		{E, E, E, T},
		{E, F, T, T},
	})
}

func TestCollisionExamples(t *testing.T) {
	m := exampleMap()
	tests := []struct {
		name      string
		pos       vmath.Vec2
		cell      gridmap.CellType
		collision bool
		normal    vmath.Vec2
	}{
		{"open water", vmath.V2(2.9, 1.9), E, false, vmath.Vec2{}},
		{"inner corner", vmath.V2(3.1, 1.9), T, true, vmath.V2(-math.Sqrt2/2, -math.Sqrt2/2)},
		{"top edge wall", vmath.V2(0.5, 0.5), T, true, vmath.V2(0, 1)},
		{"finish", vmath.V2(1.5, 2.5), F, false, vmath.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := Test(m, tt.pos)
			if hit.Cell != tt.cell {
				t.Errorf("Cell = %v, want %v", hit.Cell, tt.cell)
			}
			if hit.Collision != tt.collision {
				t.Fatalf("Collision = %v, want %v", hit.Collision, tt.collision)
			}
			if !tt.collision {
				if hit.HasNormal {
					t.Errorf("unexpected normal %v", hit.Normal)
				}
				return
			}
			if !vmath.V2Near(hit.Normal, tt.normal, 1e-3) {
				t.Errorf("Normal = %v, want %v", hit.Normal, tt.normal)
			}
		})
	}
}

func TestCollisionOpenRegion(t *testing.T) {
	rows := make([][]gridmap.CellType, 7)
	for y := range rows {
		rows[y] = make([]gridmap.CellType, 7)
	}
	rows[3][3] = I
	m := gridmap.FromRows(rows)

	for y := 0.05; y < 7; y += 0.3 {
		for x := 0.05; x < 7; x += 0.3 {
			if hit := Test(m, vmath.V2(x, y)); hit.Collision {
				t.Fatalf("collision at (%v,%v) in open region", x, y)
			}
		}
	}
}

func TestCollisionSingleSideNormal(t *testing.T) {
	// Center terrain cell with one terrain neighbor, open elsewhere
	sides := []struct {
		name   string
		dx, dy int
		want   vmath.Vec2
	}{
		{"terrain right", 1, 0, vmath.V2(-1, 0)},
		{"terrain left", -1, 0, vmath.V2(1, 0)},
		{"terrain below", 0, 1, vmath.V2(0, -1)},
		{"terrain above", 0, -1, vmath.V2(0, 1)},
	}
	for _, s := range sides {
		t.Run(s.name, func(t *testing.T) {
			rows := make([][]gridmap.CellType, 5)
			for y := range rows {
				rows[y] = make([]gridmap.CellType, 5)
			}
			rows[2][2] = T
			rows[2+s.dy][2+s.dx] = T
			m := gridmap.FromRows(rows)

			hit := Test(m, vmath.V2(2.5, 2.5))
			if !hit.Collision {
				t.Fatal("expected collision")
			}
			if !vmath.V2Near(hit.Normal, s.want, 1e-9) {
				t.Errorf("Normal = %v, want %v", hit.Normal, s.want)
			}
			if mag := vmath.V2Mag(hit.Normal); math.Abs(mag-1) > 1e-9 {
				t.Errorf("|Normal| = %v, want 1", mag)
			}
		})
	}
}

func TestCollisionEmbeddedSuppressed(t *testing.T) {
	solid := gridmap.FromRows([][]gridmap.CellType{
		{T, T, T},
		{T, T, T},
		{T, T, T},
	})
	// Center is enclosed, corners see the map edge as terrain
	for _, p := range []vmath.Vec2{vmath.V2(1.5, 1.5), vmath.V2(0.5, 0.5), vmath.V2(2.5, 1.5)} {
		hit := Test(solid, p)
		if hit.Cell != T {
			t.Errorf("Cell at %v = %v, want terrain", p, hit.Cell)
		}
		if hit.Collision || hit.HasNormal {
			t.Errorf("embedded terrain at %v reported collision, normal %v", p, hit.Normal)
		}
	}

	pillar := gridmap.FromRows([][]gridmap.CellType{
		{E, E, E},
		{E, T, E},
		{E, E, E},
	})
	if hit := Test(pillar, vmath.V2(1.5, 1.5)); hit.Collision {
		t.Error("isolated pillar has no gradient, expected no collision")
	}
}

func TestCollisionEdgePushesInward(t *testing.T) {
	// Terrain row along the bottom edge, open above
	m := gridmap.FromRows([][]gridmap.CellType{
		{E, E, E, E},
		{E, E, E, E},
		{T, T, T, T},
	})
	hit := Test(m, vmath.V2(1.5, 2.5))
	if !hit.Collision {
		t.Fatal("expected collision on edge terrain")
	}
	if !vmath.V2Near(hit.Normal, vmath.V2(0, -1), 1e-9) {
		t.Errorf("Normal = %v, want (0,-1)", hit.Normal)
	}
}
