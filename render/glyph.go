package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/deepecho/gridmap"
)

// Ship arrows by bearing octant, bearing 0 faces +y (screen down) and increases clockwise
var shipGlyphs = [8]rune{'↓', '↙', '←', '↖', '↑', '↗', '→', '↘'}

// ShipGlyph returns the arrow closest to bearing
func ShipGlyph(bearing float64) rune {
	octant := int(math.Round(bearing/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipGlyphs[octant]
}

// Cell glyphs and styles
var (
	styleTerrain      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFinish       = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleInterference = tcell.StyleDefault.Foreground(tcell.ColorDarkMagenta)
	styleRoute        = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleRouteActive  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	stylePong         = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleShip         = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStatus       = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// cellGlyph returns the rune and style for a map cell
func cellGlyph(c gridmap.CellType) (rune, tcell.Style) {
	switch c {
	case gridmap.CellTerrain:
		return '█', styleTerrain
	case gridmap.CellFinish:
		return '▒', styleFinish
	case gridmap.CellInterference:
		return '░', styleInterference
	default:
		return ' ', tcell.StyleDefault
	}
}
