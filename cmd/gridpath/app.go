package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/mapfile"
	"github.com/katalvlaran/gridpath/terrain"
	"github.com/katalvlaran/gridpath/trace"
)

// app is the interactive editor. All state is touched only from the
// event loop goroutine.
type app struct {
	screen   tcell.Screen
	cfg      *config.Config
	log      *slog.Logger
	m        *mapfile.Map
	grid     *terrain.Grid
	savePath string
	rec      *trace.Recorder
	tone     *tone

	stepper *astar.Stepper
	overlay *overlay

	// Exact cost field from start, shown in the cursor label when showDist.
	showDist bool
	dist     map[terrain.Coord]int64

	cursor  terrain.Coord
	auto    bool
	buttons tcell.ButtonMask
	paintTo bool // wall value applied while the left button is dragged
	status  string
}

func newApp(screen tcell.Screen, cfg *config.Config, m *mapfile.Map, savePath string,
	logger *slog.Logger, rec *trace.Recorder, t *tone) *app {
	ov := newOverlay(m.Grid)
	return &app{
		screen:   screen,
		cfg:      cfg,
		log:      logger,
		m:        m,
		grid:     m.Grid,
		savePath: savePath,
		rec:      rec,
		tone:     t,
		stepper:  astar.NewStepper(m.Grid, astar.WithObserver(ov), astar.WithLogger(logger)),
		overlay:  ov,
		cursor:   terrain.Coord{X: 0, Y: 0},
		auto:     cfg.Search.AutoStep,
		status:   "ready",
	}
}

// run is the event loop: input events arrive on a channel fed by
// PollEvent, the ticker paces auto-stepping.
func (a *app) run() {
	ticker := time.NewTicker(a.cfg.Search.StepInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go pollEvents(a.screen, eventChan, quit)

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
			a.draw()

		case <-ticker.C:
			if a.auto {
				a.step()
				a.draw()
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or quit
// is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

// handleEvent applies one input event and reports whether to keep running.
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}

	return true
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.move(0, -1)
	case tcell.KeyDown:
		a.move(0, 1)
	case tcell.KeyLeft:
		a.move(-1, 0)
	case tcell.KeyRight:
		a.move(1, 0)
	case tcell.KeyEnter:
		a.setWall(a.cursor, !a.grid.IsWall(a.cursor))
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}

	return true
}

// handleRune dispatches the single-letter commands.
func (a *app) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 's':
		a.placeStart(a.cursor)
	case 'e':
		a.placeEnd(a.cursor)
	case 'r':
		a.reset()
	case ' ':
		a.advance()
	case 'a':
		a.toggleAuto()
	case 'w':
		a.save()
	case 'x':
		a.export()
	case 'd':
		a.toggleDistances()
	case 'c':
		a.clearCell(a.cursor)
	case '+', '=':
		a.scroll(a.cursor, terrain.CostStep)
	case '-':
		a.scroll(a.cursor, -terrain.CostStep)
	}

	return true
}

// handleMouse implements the paint tools. Pressing the left button on a
// wall erases walls for the rest of the drag, pressing it elsewhere paints
// them. The right button clears a cell, the wheel scrolls its cost.
func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	btn := ev.Buttons()
	pressed := btn &^ a.buttons
	a.buttons = btn & (tcell.ButtonPrimary | tcell.ButtonSecondary)

	c, ok := a.cellAt(x, y)
	if !ok {
		return
	}
	a.cursor = c

	switch {
	case btn&tcell.WheelUp != 0:
		a.scroll(c, terrain.CostStep)
	case btn&tcell.WheelDown != 0:
		a.scroll(c, -terrain.CostStep)
	case pressed&tcell.ButtonPrimary != 0:
		a.paintTo = !a.grid.IsWall(c)
		a.setWall(c, a.paintTo)
	case btn&tcell.ButtonPrimary != 0:
		a.setWall(c, a.paintTo)
	case pressed&tcell.ButtonSecondary != 0:
		a.clearCell(c)
	}
}

func (a *app) move(dx, dy int) {
	next := terrain.Coord{X: a.cursor.X + dx, Y: a.cursor.Y + dy}
	if a.grid.Contains(next) {
		a.cursor = next
	}
}

// ---- editing ----

func (a *app) setWall(c terrain.Coord, wall bool) {
	if a.grid.IsWall(c) == wall {
		return
	}
	if err := a.grid.SetWall(c, wall); err != nil {
		a.status = err.Error()
		return
	}
	a.edited()
}

func (a *app) clearCell(c terrain.Coord) {
	if err := a.grid.ClearCell(c); err != nil {
		a.status = err.Error()
		return
	}
	a.edited()
}

func (a *app) scroll(c terrain.Coord, delta float64) {
	changed, err := a.grid.ScrollCost(c, delta)
	if err != nil {
		a.status = err.Error()
		return
	}
	if !changed {
		a.status = "painted walls have no cost; clear the cell first"
		return
	}
	cell := a.grid.Cell(c)
	a.status = fmt.Sprintf("%s cost %.1f (%s)", c, cell.Cost, cell.Kind())
	a.edited()
}

func (a *app) placeStart(c terrain.Coord) {
	a.grid.SetStart(c)
	a.status = "start " + c.String()
	a.edited()
}

func (a *app) placeEnd(c terrain.Coord) {
	a.grid.SetEnd(c)
	a.status = "end " + c.String()
	a.edited()
}

func (a *app) reset() {
	a.grid.Reset()
	a.status = "map reset"
	a.edited()
}

// edited drops any search over the old terrain.
func (a *app) edited() {
	a.stepper.Cancel()
	a.overlay.clear()
	a.auto = false
	if a.showDist {
		a.refreshDistances()
	}
}

// ---- searching ----

// advance is the space key: a full solve, or one step in stepped mode.
func (a *app) advance() {
	if a.cfg.Search.Stepped {
		a.step()
		return
	}
	a.solve()
}

// begin starts a fresh search; the overlay and step numbering restart too.
func (a *app) begin() bool {
	a.overlay.clear()
	a.rec.Restart()
	if _, err := a.stepper.Step(true); err != nil {
		a.reject(err)
		return false
	}
	a.status = "searching"

	return true
}

// reject reports a search that failed its preconditions.
func (a *app) reject(err error) {
	a.status = err.Error()
	a.auto = false
	a.tone.play(false)
	a.log.Warn("search_rejected", slog.String("map", a.m.Name), slog.String("error", err.Error()))
}

// step advances the stepped search by one expansion. With no search in
// progress it initializes one, which expands nothing.
func (a *app) step() {
	if !a.stepper.Active() {
		a.begin()
		return
	}
	done, err := a.stepper.Step(false)
	a.recordStep()
	if done {
		a.finish(err)
		return
	}
	s := a.stepper.Search()
	a.status = fmt.Sprintf("open %d  closed %d", s.OpenLen(), s.ClosedLen())
}

// solve runs a new search to completion; the trace gets one step row for
// the finished search.
func (a *app) solve() {
	a.overlay.clear()
	a.rec.Restart()
	_, err := a.stepper.Solve()
	if a.stepper.Search() == nil {
		a.reject(err)
		return
	}
	a.recordStep()
	a.finish(err)
}

func (a *app) recordStep() {
	if err := a.rec.Step(a.stepper.Search()); err != nil {
		a.log.Error("trace_step_failed", slog.String("error", err.Error()))
	}
}

func (a *app) finish(err error) {
	res := a.stepper.Search().Result()
	switch {
	case err == nil:
		a.status = fmt.Sprintf("path found: cost %d, %d cells, %d expanded", res.Cost, len(res.Path), res.Expanded)
	case errors.Is(err, astar.ErrNoPath):
		a.status = fmt.Sprintf("no path: %d cells expanded", res.Expanded)
	default:
		a.status = err.Error()
	}
	a.auto = false
	a.tone.play(err == nil)
	a.log.Info("search_finished",
		slog.String("map", a.m.Name),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("cost", res.Cost),
		slog.Int("expanded", res.Expanded),
	)
}

func (a *app) toggleAuto() {
	a.auto = !a.auto
	if a.auto {
		a.status = "auto-stepping"
	} else {
		a.status = "auto-stepping paused"
	}
}

// ---- distances ----

func (a *app) toggleDistances() {
	a.showDist = !a.showDist
	if !a.showDist {
		a.dist = nil
		a.status = "distances hidden"
		return
	}
	a.refreshDistances()
}

// refreshDistances recomputes the exact cost field from the start cell.
func (a *app) refreshDistances() {
	dist, _, err := dijkstra.Dijkstra(a.grid, dijkstra.Source(a.grid.Start))
	if err != nil {
		a.dist = nil
		a.status = err.Error()
		return
	}
	a.dist = dist
	a.status = "distances from " + a.grid.Start.String()
}

// ---- files ----

func (a *app) save() {
	if err := mapfile.Save(a.savePath, a.m); err != nil {
		a.status = err.Error()
		a.log.Error("map_save_failed", slog.String("path", a.savePath), slog.String("error", err.Error()))
		return
	}
	a.status = "saved " + a.savePath
	a.log.Info("map_saved", slog.String("path", a.savePath))
}

func (a *app) export() {
	if a.rec == nil {
		a.status = "tracing disabled (set trace.dir)"
		return
	}
	path, err := a.rec.Export(a.grid, a.stepper.Search())
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = "exported " + path
}
