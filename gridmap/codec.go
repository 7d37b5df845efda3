package gridmap

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/deepecho/vmath"
)

// Format selects the map file encoding
type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
)

var (
	ErrFormat     = errors.New("unsupported map format")
	ErrDimensions = errors.New("map dimensions must be positive")
	ErrCellCount  = errors.New("cell count does not match dimensions")
	ErrCellValue  = errors.New("invalid cell value")
	ErrStart      = errors.New("start outside map")
	ErrWaypoint   = errors.New("invalid waypoint")
)

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}
}

// wireMap is the on-disk shape shared by the JSON and YAML encodings
type wireMap struct {
	Width        int           `json:"width" yaml:"width"`
	Height       int           `json:"height" yaml:"height"`
	Cells        []int         `json:"cells" yaml:"cells,flow"`
	Start        []float64     `json:"start" yaml:"start,flow"`
	StartBearing float64       `json:"start_bearing" yaml:"start_bearing"`
	Routes       [][][]float64 `json:"routes" yaml:"routes"`
}

func (w *wireMap) toMap() (*GridMap, error) {
	m := &GridMap{
		Width:        w.Width,
		Height:       w.Height,
		StartBearing: w.StartBearing,
		Cells:        make([]CellType, len(w.Cells)),
	}
	for i, c := range w.Cells {
		if c < 0 || c >= int(cellTypeCount) {
			return nil, fmt.Errorf("%w: %d at index %d", ErrCellValue, c, i)
		}
		m.Cells[i] = CellType(c)
	}
	if len(w.Start) != 2 {
		return nil, fmt.Errorf("%w: start has %d coordinates", ErrStart, len(w.Start))
	}
	m.Start = vmath.V2(w.Start[0], w.Start[1])

	m.Routes = make([]Route, 0, len(w.Routes))
	for r, points := range w.Routes {
		route := make(Route, 0, len(points))
		for i, p := range points {
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: route %d point %d has %d coordinates", ErrWaypoint, r, i, len(p))
			}
			route = append(route, vmath.V2(p[0], p[1]))
		}
		m.Routes = append(m.Routes, route)
	}
	return m, nil
}

func fromMap(m *GridMap) *wireMap {
	w := &wireMap{
		Width:        m.Width,
		Height:       m.Height,
		Cells:        make([]int, len(m.Cells)),
		Start:        []float64{m.Start.X, m.Start.Y},
		StartBearing: m.StartBearing,
		Routes:       make([][][]float64, 0, len(m.Routes)),
	}
	for i, c := range m.Cells {
		w.Cells[i] = int(c)
	}
	for _, route := range m.Routes {
		points := make([][]float64, 0, len(route))
		for _, p := range route {
			points = append(points, []float64{p.X, p.Y})
		}
		w.Routes = append(w.Routes, points)
	}
	return w
}

// Decode reads and validates a map
func Decode(r io.Reader, format Format) (*GridMap, error) {
	var w wireMap
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&w); err != nil {
			return nil, fmt.Errorf("decode json map: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&w); err != nil {
			return nil, fmt.Errorf("decode yaml map: %w", err)
		}
	default:
		return nil, ErrFormat
	}

	m, err := w.toMap()
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Encode writes a map in the given format
func Encode(wr io.Writer, m *GridMap, format Format) error {
	w := fromMap(m)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(wr)
		return enc.Encode(w)
	case FormatYAML:
		enc := yaml.NewEncoder(wr)
		enc.SetIndent(2)
		if err := enc.Encode(w); err != nil {
			return err
		}
		return enc.Close()
	default:
		return ErrFormat
	}
}

// LoadFile reads a map, the format follows the file extension
func LoadFile(path string) (*GridMap, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// SaveFile writes a map, the format follows the file extension
func SaveFile(path string, m *GridMap) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, m, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Validate checks the load-time preconditions the simulation relies on
func (m *GridMap) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDimensions, m.Width, m.Height)
	}
	if len(m.Cells) != m.Width*m.Height {
		return fmt.Errorf("%w: %d cells for %dx%d", ErrCellCount, len(m.Cells), m.Width, m.Height)
	}
	for i, c := range m.Cells {
		if !c.Valid() {
			return fmt.Errorf("%w: %d at index %d", ErrCellValue, c, i)
		}
	}
	if !m.contains(m.Start) {
		return fmt.Errorf("%w: (%g, %g)", ErrStart, m.Start.X, m.Start.Y)
	}
	for r, route := range m.Routes {
		for i, p := range route {
			if !m.contains(p) {
				return fmt.Errorf("%w: route %d point %d (%g, %g) outside map", ErrWaypoint, r, i, p.X, p.Y)
			}
		}
	}
	return nil
}

func (m *GridMap) contains(p vmath.Vec2) bool {
	return p.X >= 0 && p.X < float64(m.Width) && p.Y >= 0 && p.Y < float64(m.Height)
}

// Fingerprint hashes dimensions and cells, identical geometry yields identical values
func (m *GridMap) Fingerprint() uint64 {
	d := xxhash.New()
	var hdr [16]byte
	binary.LittleEndian.PutUint64(hdr[0:8], uint64(m.Width))
	binary.LittleEndian.PutUint64(hdr[8:16], uint64(m.Height))
	d.Write(hdr[:])
	cells := make([]byte, len(m.Cells))
	for i, c := range m.Cells {
		cells[i] = byte(c)
	}
	d.Write(cells)
	return d.Sum64()
}
