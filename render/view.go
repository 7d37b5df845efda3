// Package render draws a debug view of the map, route, ship and recent echoes with tcell
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/parameter"
	"github.com/lixenwraith/deepecho/ship"
	"github.com/lixenwraith/deepecho/sonar"
	"github.com/lixenwraith/deepecho/vmath"
)

// pongMark is an echo hit point shown until expires
type pongMark struct {
	point   vmath.Vec2
	expires time.Time
}

// View renders a ship on its map, one terminal cell per grid cell
// The camera follows the ship when the map is larger than the screen
type View struct {
	screen tcell.Screen
	marks  []pongMark
}

// NewView creates a view drawing to screen
func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// AddPongs records echo hit points for display
func (v *View) AddPongs(pongs []sonar.Pong, now time.Time) {
	expires := now.Add(parameter.PongShowDuration)
	for _, p := range pongs {
		v.marks = append(v.marks, pongMark{point: p.HitPoint, expires: expires})
	}
}

// prune drops expired marks in place
func (v *View) prune(now time.Time) {
	kept := v.marks[:0]
	for _, m := range v.marks {
		if now.Before(m.expires) {
			kept = append(kept, m)
		}
	}
	v.marks = kept
}

// Marks returns the number of visible echo marks
func (v *View) Marks() int {
	return len(v.marks)
}

// camera returns the map cell drawn at screen origin
func camera(pos float64, view, size int) int {
	if size <= view {
		return 0
	}
	o := int(math.Floor(pos)) - view/2
	if o < 0 {
		return 0
	}
	if o > size-view {
		return size - view
	}
	return o
}

// Draw renders one frame and shows it
func (v *View) Draw(s *ship.Ship, now time.Time) {
	v.prune(now)
	v.screen.Clear()

	w, h := v.screen.Size()
	viewH := h - 1 // Status line
	if w <= 0 || viewH <= 0 {
		v.screen.Show()
		return
	}

	m := s.Map()
	pos := s.Position()
	ox := camera(pos.X, w, m.Width)
	oy := camera(pos.Y, viewH, m.Height)

	put := func(p vmath.Vec2, r rune, style tcell.Style) {
		x, y := vmath.V2Floor(p)
		sx, sy := x-ox, y-oy
		if sx >= 0 && sx < w && sy >= 0 && sy < viewH {
			v.screen.SetContent(sx, sy, r, nil, style)
		}
	}

	for sy := 0; sy < viewH && oy+sy < m.Height; sy++ {
		for sx := 0; sx < w && ox+sx < m.Width; sx++ {
			r, style := cellGlyph(m.CellAt(ox+sx, oy+sy))
			if r != ' ' {
				v.screen.SetContent(sx, sy, r, nil, style)
			}
		}
	}

	for i, route := range m.Routes {
		style := styleRoute
		if i == s.CurrentRoute() {
			style = styleRouteActive
		}
		drawRoute(route, style, put)
	}

	for _, mk := range v.marks {
		put(mk.point, '*', stylePong)
	}

	put(pos, ShipGlyph(s.Bearing()), styleShip)

	v.drawStatus(s, w, h-1)
	v.screen.Show()
}

// drawRoute samples each segment at quarter-cell steps
func drawRoute(route gridmap.Route, style tcell.Style, put func(vmath.Vec2, rune, tcell.Style)) {
	for i := 0; i+1 < len(route); i++ {
		a, b := route[i], route[i+1]
		n := int(math.Ceil(vmath.V2Dist(a, b)*4)) + 1
		for k := 0; k <= n; k++ {
			p := vmath.V2Add(a, vmath.V2Scale(vmath.V2Sub(b, a), float64(k)/float64(n)))
			put(p, '·', style)
		}
	}
}

func (v *View) drawStatus(s *ship.Ship, w, y int) {
	pos, vel := s.Position(), s.Velocity()

	fad := "off"
	if s.FADEnabled() {
		fad = "--"
		if b, ok := s.FADBearing(); ok {
			fad = fmt.Sprintf("%+.0f°", b*180/math.Pi)
		}
	}
	status := fmt.Sprintf(" pos %.1f,%.1f  spd %.2f  hdg %+.0f°  route %d seg %d  fad %s ",
		pos.X, pos.Y, vmath.V2Mag(vel), s.Bearing()*180/math.Pi,
		s.CurrentRoute(), s.CurrentSegment(), fad)
	if s.Finished() {
		status += " FINISHED "
	}

	x := 0
	for _, r := range status {
		if x >= w {
			break
		}
		v.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
}
