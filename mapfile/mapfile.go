package mapfile

import (
	"embed"
	"errors"
	"fmt"
	"math"
	"os"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/terrain"
)

// Sentinel errors for malformed map documents.
var (
	ErrNoRows          = errors.New("mapfile: map has no rows")
	ErrRaggedRows      = errors.New("mapfile: rows differ in length")
	ErrUnknownSymbol   = errors.New("mapfile: unknown symbol")
	ErrDuplicateMarker = errors.New("mapfile: start or end given twice")
	ErrCostOutOfBounds = errors.New("mapfile: cost override outside passable range")
	ErrBadCoord        = errors.New("mapfile: coordinate must be [x, y]")
	ErrUnknownMap      = errors.New("mapfile: no such builtin map")
)

const (
	startMarker = 'S'
	endMarker   = 'E'
)

//go:embed maps/*.yaml
var builtinFS embed.FS

// Map is a named grid.
type Map struct {
	Name string
	Grid *terrain.Grid
}

// document is the YAML shape of a map file.
type document struct {
	Name  string     `yaml:"name"`
	Start []int      `yaml:"start,flow,omitempty"`
	End   []int      `yaml:"end,flow,omitempty"`
	Rows  []string   `yaml:"rows"`
	Costs []override `yaml:"costs,omitempty"`
}

// override pins the multiplier of one cell.
type override struct {
	X    int     `yaml:"x"`
	Y    int     `yaml:"y"`
	Cost float64 `yaml:"cost"`
}

// Decode parses a YAML map document.
func Decode(data []byte) (*Map, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing map: %w", err)
	}
	if len(doc.Rows) == 0 {
		return nil, ErrNoRows
	}

	width := utf8.RuneCountInString(doc.Rows[0])
	for y, row := range doc.Rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, n, width)
		}
	}
	g, err := terrain.NewGrid(width, len(doc.Rows))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoRows, err)
	}

	start, end := terrain.Unset, terrain.Unset
	for y, row := range doc.Rows {
		x := 0
		for _, r := range row {
			at := terrain.Coord{X: x, Y: y}
			switch r {
			case startMarker:
				if start.IsSet() {
					return nil, fmt.Errorf("%w: second 'S' at %s", ErrDuplicateMarker, at)
				}
				start = at
			case endMarker:
				if end.IsSet() {
					return nil, fmt.Errorf("%w: second 'E' at %s", ErrDuplicateMarker, at)
				}
				end = at
			default:
				kind, ok := terrain.FromSymbol(r)
				if !ok {
					return nil, fmt.Errorf("%w: %q at %s", ErrUnknownSymbol, r, at)
				}
				// In-range canonical costs cannot fail; walls use an out-of-range cost.
				_ = g.SetCost(at, kind.Cost())
			}
			x++
		}
	}

	if start, err = mergeMarker("start", start, doc.Start); err != nil {
		return nil, err
	}
	if end, err = mergeMarker("end", end, doc.End); err != nil {
		return nil, err
	}
	g.SetStart(start)
	g.SetEnd(end)

	for _, o := range doc.Costs {
		at := terrain.Coord{X: o.X, Y: o.Y}
		if !(o.Cost >= terrain.MinCost && o.Cost <= terrain.MaxCost) && !scrolledBelow(g, at, o.Cost) {
			return nil, fmt.Errorf("%w: %.2f at (%d,%d)", ErrCostOutOfBounds, o.Cost, o.X, o.Y)
		}
		if err := g.SetCost(at, o.Cost); err != nil {
			return nil, fmt.Errorf("cost override: %w", err)
		}
	}

	return &Map{Name: doc.Name, Grid: g}, nil
}

// scrolledBelow reports whether an override records a wall cell that was
// scrolled below the cost range. Such walls keep terrain.BelowRange so one
// notch up restores road.
func scrolledBelow(g *terrain.Grid, at terrain.Coord, cost float64) bool {
	return g.Contains(at) && g.IsWall(at) && math.Abs(cost-terrain.BelowRange) < 1e-9
}

// mergeMarker reconciles a marker found in the rows with the explicit field.
func mergeMarker(what string, marker terrain.Coord, field []int) (terrain.Coord, error) {
	if field == nil {
		return marker, nil
	}
	if len(field) != 2 {
		return terrain.Unset, fmt.Errorf("%w: %s has %d values", ErrBadCoord, what, len(field))
	}
	c := terrain.Coord{X: field[0], Y: field[1]}
	if marker.IsSet() && marker != c {
		return terrain.Unset, fmt.Errorf("%w: %s %s in rows and %s in field", ErrDuplicateMarker, what, marker, c)
	}

	return c, nil
}

// Load reads and decodes the map file at path.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Encode renders m as YAML. Rows carry terrain symbols only; start and end
// go into their own fields so a marker never hides the cell's terrain. A
// cost override is written for every passable cell whose multiplier differs
// from the canonical cost of its terrain, and for walls scrolled below the
// range, whose override is terrain.BelowRange.
func Encode(m *Map) ([]byte, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrNoRows
	}
	g := m.Grid
	doc := document{Name: m.Name, Rows: make([]string, g.Height)}
	if g.Start.IsSet() {
		doc.Start = []int{g.Start.X, g.Start.Y}
	}
	if g.End.IsSet() {
		doc.End = []int{g.End.X, g.End.Y}
	}

	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			cell := g.CellAt(x, y)
			kind := cell.Kind()
			sb.WriteRune(kind.Symbol())
			switch {
			case kind == terrain.Wall:
				if math.Abs(cell.Cost-terrain.BelowRange) < 1e-9 {
					doc.Costs = append(doc.Costs, override{X: x, Y: y, Cost: terrain.BelowRange})
				}
			case math.Abs(cell.Cost-kind.Cost()) > 1e-9:
				doc.Costs = append(doc.Costs, override{X: x, Y: y, Cost: cell.Cost})
			}
		}
		doc.Rows[y] = sb.String()
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling map: %w", err)
	}

	return data, nil
}

// Save encodes m and writes it to path.
func Save(path string, m *Map) error {
	data, err := Encode(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing map file: %w", err)
	}

	return nil
}

// Builtins lists the names of the embedded maps in lexical order.
func Builtins() []string {
	entries, _ := builtinFS.ReadDir("maps")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names
}

// Builtin decodes the embedded map called name.
func Builtin(name string) (*Map, error) {
	data, err := builtinFS.ReadFile(path.Join("maps", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMap, name)
	}

	return Decode(data)
}
