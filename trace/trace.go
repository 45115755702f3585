// Package trace exports search state as CSV for offline inspection.
//
// Two tables are produced: a per-cell snapshot of one search (CellRecord),
// and a running log with one row per expansion step (StepRecord).
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/terrain"
)

// CellRecord is one cell of a search snapshot. Scores are zero and parent
// coordinates -1 for cells the search never discovered.
type CellRecord struct {
	X       int     `csv:"x"`
	Y       int     `csv:"y"`
	Cost    float64 `csv:"cost"`
	Wall    bool    `csv:"wall"`
	Terrain string  `csv:"terrain"`
	State   string  `csv:"state"`
	G       int     `csv:"g"`
	H       int     `csv:"h"`
	F       int     `csv:"f"`
	ParentX int     `csv:"parent_x"`
	ParentY int     `csv:"parent_y"`
}

// StepRecord summarizes the search after one step.
type StepRecord struct {
	Step     int    `csv:"step"`
	CurrentX int    `csv:"current_x"`
	CurrentY int    `csv:"current_y"`
	Open     int    `csv:"open"`
	Closed   int    `csv:"closed"`
	Outcome  string `csv:"outcome"`
}

// Cells snapshots every cell of g in row-major order. s may be nil, in
// which case every cell is reported unvisited.
func Cells(g *terrain.Grid, s *astar.Search) []CellRecord {
	out := make([]CellRecord, 0, g.Len())
	g.Each(func(c terrain.Cell) {
		rec := CellRecord{
			X:       c.X,
			Y:       c.Y,
			Cost:    c.Cost,
			Wall:    c.Wall,
			Terrain: c.Kind().String(),
			State:   astar.Unvisited.String(),
			ParentX: -1,
			ParentY: -1,
		}
		if s != nil {
			rec.State = s.State(c.Coord()).String()
			if sc, ok := s.Scores(c.Coord()); ok {
				rec.G, rec.H, rec.F = sc.G, sc.H, sc.F()
				rec.ParentX, rec.ParentY = sc.Parent.X, sc.Parent.Y
			}
		}
		out = append(out, rec)
	})

	return out
}

// WriteCells writes the Cells snapshot with a header row to w.
func WriteCells(w io.Writer, g *terrain.Grid, s *astar.Search) error {
	if err := gocsv.Marshal(Cells(g, s), w); err != nil {
		return fmt.Errorf("writing cells: %w", err)
	}

	return nil
}

// StepLog appends StepRecords to a writer, emitting the header once.
type StepLog struct {
	w             io.Writer
	step          int
	headerWritten bool
}

// NewStepLog returns a log writing to w.
func NewStepLog(w io.Writer) *StepLog {
	return &StepLog{w: w}
}

// Record appends the current state of s. Steps are numbered from 1 until
// Reset.
func (l *StepLog) Record(s *astar.Search) error {
	l.step++
	rec := StepRecord{
		Step:     l.step,
		CurrentX: -1,
		CurrentY: -1,
		Open:     s.OpenLen(),
		Closed:   s.ClosedLen(),
		Outcome:  s.Outcome().String(),
	}
	if cur, ok := s.Current(); ok {
		rec.CurrentX, rec.CurrentY = cur.X, cur.Y
	}

	records := []StepRecord{rec}
	if !l.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, l.w); err != nil {
			return fmt.Errorf("writing step: %w", err)
		}
		l.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, l.w); err != nil {
			return fmt.Errorf("writing step: %w", err)
		}
	}

	return nil
}

// Reset restarts step numbering for a new search.
func (l *StepLog) Reset() { l.step = 0 }

// Steps returns the number of records since the last Reset.
func (l *StepLog) Steps() int { return l.step }

// Recorder owns the CSV files of one session inside a directory.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	dir     string
	file    *os.File
	steps   *StepLog
	exports int
}

// NewRecorder creates dir and opens steps.csv inside it.
// Returns nil if dir is empty (output disabled).
func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating trace directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "steps.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating steps.csv: %w", err)
	}

	return &Recorder{dir: dir, file: f, steps: NewStepLog(f)}, nil
}

// Step appends the state of s to steps.csv.
func (r *Recorder) Step(s *astar.Search) error {
	if r == nil {
		return nil
	}

	return r.steps.Record(s)
}

// Restart begins a new step numbering for the next search.
func (r *Recorder) Restart() {
	if r == nil {
		return
	}
	r.steps.Reset()
}

// Export writes a cell snapshot to a fresh cells-NNN.csv and returns its path.
func (r *Recorder) Export(g *terrain.Grid, s *astar.Search) (string, error) {
	if r == nil {
		return "", nil
	}
	r.exports++
	path := filepath.Join(r.dir, fmt.Sprintf("cells-%03d.csv", r.exports))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	if err := WriteCells(f, g, s); err != nil {
		return "", err
	}

	return path, nil
}

// Close closes steps.csv.
func (r *Recorder) Close() error {
	if r == nil {
		return nil
	}

	return r.file.Close()
}
