package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/ship"
	"github.com/lixenwraith/deepecho/sonar"
	"github.com/lixenwraith/deepecho/vmath"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func testMap() *gridmap.GridMap {
	const (
		E = gridmap.CellEmpty
		T = gridmap.CellTerrain
		F = gridmap.CellFinish
		I = gridmap.CellInterference
	)
	m := gridmap.FromRows([][]gridmap.CellType{
		{T, T, T, T, T, T},
		{T, E, E, E, I, T},
		{T, E, E, E, F, T},
		{T, T, T, T, T, T},
	})
	m.Start = vmath.V2(1, 1)
	return m
}

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		bearing float64
		want    rune
	}{
		{0, '↓'},
		{math.Pi / 4, '↙'},
		{math.Pi / 2, '←'},
		{math.Pi, '↑'},
		{-math.Pi, '↑'},
		{-math.Pi / 2, '→'},
		{-math.Pi / 4, '↘'},
		{0.3, '↓'},
	}
	for _, tt := range tests {
		if got := ShipGlyph(tt.bearing); got != tt.want {
			t.Errorf("ShipGlyph(%v) = %c, want %c", tt.bearing, got, tt.want)
		}
	}
}

func TestDrawCellsAndShip(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := ship.New(testMap(), ship.DefaultTuning())
	v := NewView(screen)

	v.Draw(s, time.Now())

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '█'},
		{4, 1, '░'},
		{4, 2, '▒'},
		{1, 1, '↓'},
		{2, 2, ' '},
	}
	for _, tt := range tests {
		if got := runeAt(screen, tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawStatusLine(t *testing.T) {
	screen := newScreen(t, 60, 6)
	s := ship.New(testMap(), ship.DefaultTuning())
	NewView(screen).Draw(s, time.Now())

	var b strings.Builder
	for x := 0; x < 60; x++ {
		b.WriteRune(runeAt(screen, x, 5))
	}
	line := b.String()
	for _, want := range []string{"pos 1.5,1.5", "fad"} {
		if !strings.Contains(line, want) {
			t.Errorf("status %q missing %q", line, want)
		}
	}
}

func TestPongMarksExpire(t *testing.T) {
	screen := newScreen(t, 20, 10)
	s := ship.New(testMap(), ship.DefaultTuning())
	v := NewView(screen)

	now := time.Now()
	v.AddPongs([]sonar.Pong{{HitPoint: vmath.V2(3.5, 2.5)}}, now)

	v.Draw(s, now.Add(500*time.Millisecond))
	if got := runeAt(screen, 3, 2); got != '*' {
		t.Errorf("pong mark = %q, want '*'", got)
	}

	v.Draw(s, now.Add(2*time.Second))
	if v.Marks() != 0 {
		t.Errorf("marks = %d after expiry, want 0", v.Marks())
	}
	if got := runeAt(screen, 3, 2); got == '*' {
		t.Error("expired pong mark still drawn")
	}
}

func TestCameraFollowsShip(t *testing.T) {
	tests := []struct {
		pos        float64
		view, size int
		want       int
	}{
		{5, 20, 10, 0},
		{5, 10, 100, 0},
		{50, 10, 100, 45},
		{99, 10, 100, 90},
	}
	for _, tt := range tests {
		if got := camera(tt.pos, tt.view, tt.size); got != tt.want {
			t.Errorf("camera(%v, %d, %d) = %d, want %d", tt.pos, tt.view, tt.size, got, tt.want)
		}
	}
}

func TestDrawRoute(t *testing.T) {
	m := testMap()
	m.Routes = []gridmap.Route{{vmath.V2(1.5, 2.5), vmath.V2(3.5, 2.5)}}
	screen := newScreen(t, 20, 10)

	NewView(screen).Draw(ship.New(m, ship.DefaultTuning()), time.Now())

	for x := 1; x <= 3; x++ {
		if got := runeAt(screen, x, 2); got != '·' {
			t.Errorf("route cell (%d, 2) = %q, want '·'", x, got)
		}
	}
}
