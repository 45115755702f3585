package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/terrain"
)

// Screen layout: a title row, then the map with every cell two columns wide,
// then the cursor label, the status line and the key help.
const (
	cellWidth = 2
	mapTop    = 1
)

// unreachedDist is the distance dijkstra reports for cells it never reached.
const unreachedDist = math.MaxInt64

const helpText = "arrows move  s/e start/end  click wall  right-click clear  wheel/+/- cost  " +
	"space solve/step  a auto  d dist  r reset  w save  x csv  q quit"

// Terrain legend, indexed by terrain.Terrain.
var terrainColors = [...]tcell.Color{
	terrain.Road:     tcell.NewRGBColor(200, 200, 200),
	terrain.Grass:    tcell.NewRGBColor(110, 170, 70),
	terrain.Sand:     tcell.NewRGBColor(220, 200, 120),
	terrain.Mountain: tcell.NewRGBColor(140, 100, 60),
	terrain.Water:    tcell.NewRGBColor(60, 110, 200),
	terrain.Wall:     tcell.NewRGBColor(30, 30, 30),
}

var (
	startColor       = tcell.NewRGBColor(0, 200, 0)
	endColor         = tcell.NewRGBColor(240, 220, 0)
	frontierColor    = tcell.NewRGBColor(40, 80, 255)
	expandedColor    = tcell.NewRGBColor(40, 110, 40)
	pathColor        = tcell.NewRGBColor(250, 230, 30)
	unreachableColor = tcell.NewRGBColor(220, 30, 30)
)

// glyph is how one cell is drawn: two runes and a style.
type glyph struct {
	runes [cellWidth]rune
	style tcell.Style
}

// cellGlyph picks the look of a cell: markers first, then the search
// state on top of the terrain colour.
func cellGlyph(cell terrain.Cell, state astar.CellState, start, end bool) glyph {
	bg := terrainColors[cell.Kind()]
	base := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack)
	switch {
	case start:
		return glyph{[cellWidth]rune{'S', ' '}, base.Background(startColor)}
	case end:
		return glyph{[cellWidth]rune{'E', ' '}, base.Background(endColor)}
	}
	switch state {
	case astar.Frontier:
		return glyph{[cellWidth]rune{'◦', ' '}, base.Foreground(frontierColor).Bold(true)}
	case astar.Expanded:
		return glyph{[cellWidth]rune{'·', ' '}, base.Foreground(expandedColor).Bold(true)}
	case astar.OnPath:
		return glyph{[cellWidth]rune{'█', '█'}, base.Foreground(pathColor)}
	case astar.Unreachable:
		return glyph{[cellWidth]rune{'×', ' '}, base.Foreground(unreachableColor).Bold(true)}
	}

	return glyph{[cellWidth]rune{' ', ' '}, base}
}

// cellAt maps a screen position to a grid cell.
func (a *app) cellAt(x, y int) (terrain.Coord, bool) {
	c := terrain.Coord{X: x / cellWidth, Y: y - mapTop}
	if x < 0 || !a.grid.Contains(c) {
		return terrain.Unset, false
	}

	return c, true
}

func (a *app) draw() {
	a.screen.Clear()

	mode := "solve"
	if a.cfg.Search.Stepped {
		mode = "stepped"
	}
	if a.auto {
		mode += " (auto)"
	}
	a.drawText(0, 0, tcell.StyleDefault.Bold(true),
		fmt.Sprintf("gridpath  %s  %dx%d  mode: %s", a.m.Name, a.grid.Width, a.grid.Height, mode))

	a.grid.Each(func(cell terrain.Cell) {
		c := cell.Coord()
		gl := cellGlyph(cell, a.overlay.at(c), c == a.grid.Start, c == a.grid.End)
		if c == a.cursor {
			gl.style = gl.style.Reverse(true)
		}
		for i, r := range gl.runes {
			a.screen.SetContent(c.X*cellWidth+i, mapTop+c.Y, r, nil, gl.style)
		}
	})

	row := mapTop + a.grid.Height + 1
	a.drawText(0, row, tcell.StyleDefault, a.cursorLabel())
	a.drawText(0, row+1, tcell.StyleDefault.Foreground(tcell.ColorYellow), a.status)
	a.drawText(0, row+2, tcell.StyleDefault.Dim(true), helpText)

	a.screen.Show()
}

// cursorLabel describes the cell under the cursor: terrain and cost, the
// scores of the current search and the exact distance when shown.
func (a *app) cursorLabel() string {
	cell := a.grid.Cell(a.cursor)
	label := fmt.Sprintf("%s %-8s cost %.1f", a.cursor, cell.Kind(), cell.Cost)
	if s := a.stepper.Search(); s != nil {
		if sc, ok := s.Scores(a.cursor); ok {
			label += fmt.Sprintf("  g %d  h %d  f %d", sc.G, sc.H, sc.F())
		}
	}
	if a.dist != nil {
		if d, ok := a.dist[a.cursor]; ok && d != unreachedDist {
			label += fmt.Sprintf("  dist %d", d)
		} else {
			label += "  dist -"
		}
	}

	return label
}

func (a *app) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
