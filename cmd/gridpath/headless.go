package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/mapfile"
	"github.com/katalvlaran/gridpath/terrain"
	"github.com/katalvlaran/gridpath/trace"
)

// pathSymbol marks path cells in the headless map dump.
const pathSymbol = '*'

// solveHeadless runs a full search over m and prints the outcome, the
// path and the map with the path drawn in. A missing path is reported, not
// returned as an error; precondition failures are returned.
func solveHeadless(w io.Writer, m *mapfile.Map, logger *slog.Logger, rec *trace.Recorder) error {
	g := m.Grid
	if g.Contains(g.Start) && g.Contains(g.End) && !g.Connected(g.Start, g.End) {
		logger.Info("endpoints_disconnected", slog.String("map", m.Name))
	}

	res, err := astar.FindPath(g, astar.WithLogger(logger))
	if err != nil && !errors.Is(err, astar.ErrNoPath) {
		return fmt.Errorf("%s: %w", m.Name, err)
	}

	fmt.Fprintf(w, "map:      %s (%dx%d)\n", m.Name, g.Width, g.Height)
	fmt.Fprintf(w, "outcome:  %s\n", res.Outcome)
	fmt.Fprintf(w, "expanded: %d\n", res.Expanded)
	if res.Outcome == astar.Found {
		fmt.Fprintf(w, "cost:     %d\n", res.Cost)
		fmt.Fprintf(w, "path:     %s\n", formatPath(res.Path))
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, renderASCII(g, res.Path))

	if rec != nil {
		// Export needs scores, which FindPath does not keep; replay the search.
		s, err := astar.NewSearch(g)
		if err != nil {
			return err
		}
		_, _ = s.Run()
		path, err := rec.Export(g, s)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\ncells:    %s\n", path)
	}
	logger.Info("headless_solve",
		slog.String("map", m.Name),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("cost", res.Cost),
		slog.Int("expanded", res.Expanded),
	)

	return nil
}

func formatPath(path []terrain.Coord) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}

// renderASCII draws g in map-file symbols with path cells replaced by '*'
// and the endpoints by 'S' and 'E'.
func renderASCII(g *terrain.Grid, path []terrain.Coord) string {
	rows := make([][]rune, g.Height)
	for y := range rows {
		rows[y] = make([]rune, g.Width)
		for x := range rows[y] {
			rows[y][x] = g.CellAt(x, y).Kind().Symbol()
		}
	}
	for _, c := range path {
		rows[c.Y][c.X] = pathSymbol
	}
	for _, m := range []struct {
		at terrain.Coord
		r  rune
	}{{g.Start, 'S'}, {g.End, 'E'}} {
		if g.Contains(m.at) {
			rows[m.at.Y][m.at.X] = m.r
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}

	return sb.String()
}
