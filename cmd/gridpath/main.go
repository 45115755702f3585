// Command gridpath is a terminal editor and visualizer for the grid A* engine.
//
// Paint terrain with the mouse, drop start and end markers, then solve the
// map in one go or watch the frontier grow one expansion at a time.
//
//	gridpath -map maze
//	gridpath -map ./mymap.yaml -stepped
//	gridpath -map valley -headless
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/mapfile"
	"github.com/katalvlaran/gridpath/terrain"
	"github.com/katalvlaran/gridpath/trace"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mapArg := flag.String("map", "", "Builtin map name or map file (overrides grid.map)")
	stepped := flag.Bool("stepped", false, "Space advances one expansion instead of solving")
	headless := flag.Bool("headless", false, "Solve the map, print the result and exit")
	traceDir := flag.String("trace-dir", "", "Directory for CSV traces (overrides trace.dir)")
	listMaps := flag.Bool("list-maps", false, "List builtin maps and exit")

	flag.Parse()

	if *listMaps {
		for _, name := range mapfile.Builtins() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *mapArg != "" {
		cfg.Grid.Map = *mapArg
	}
	if *stepped {
		cfg.Search.Stepped = true
	}
	if *traceDir != "" {
		cfg.Trace.Dir = *traceDir
	}

	if err := run(cfg, *headless); err != nil {
		slog.Error("gridpath failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, headless bool) error {
	logger, closeLog, err := newLogger(cfg.Log, headless)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	m, savePath, err := openMap(cfg.Grid)
	if err != nil {
		return err
	}

	rec, err := trace.NewRecorder(cfg.Trace.Dir)
	if err != nil {
		return err
	}
	defer rec.Close()

	serveMetrics(cfg.Metrics.Addr, logger)

	if headless {
		return solveHeadless(os.Stdout, m, logger, rec)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	tone := newTone(cfg.Audio, logger)
	defer tone.close()

	a := newApp(screen, cfg, m, savePath, logger, rec, tone)
	a.run()

	return nil
}

// newLogger writes JSON records to log.file. Without a file the
// interactive UI discards logs (it owns the terminal) while headless runs
// log to stderr.
func newLogger(lc config.LogConfig, headless bool) (*slog.Logger, func(), error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var w io.Writer
	closeFn := func() {}
	switch {
	case lc.File != "":
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	case headless:
		w = os.Stderr
	default:
		return slog.New(slog.DiscardHandler), closeFn, nil
	}

	return slog.New(slog.NewJSONHandler(w, opts)), closeFn, nil
}

// openMap resolves grid.map as a builtin name first, then as a file path.
// An empty name yields a blank width×height grid. The returned path is
// where the editor saves the map.
func openMap(gc config.GridConfig) (*mapfile.Map, string, error) {
	if gc.Map == "" {
		g, err := terrain.NewGrid(gc.Width, gc.Height)
		if err != nil {
			return nil, "", err
		}
		return &mapfile.Map{Name: "untitled", Grid: g}, "untitled.yaml", nil
	}

	m, err := mapfile.Builtin(gc.Map)
	if err == nil {
		return m, gc.Map + ".yaml", nil
	}
	if !errors.Is(err, mapfile.ErrUnknownMap) {
		return nil, "", err
	}

	m, err = mapfile.Load(gc.Map)
	if err != nil {
		return nil, "", err
	}
	if m.Name == "" {
		m.Name = filepath.Base(gc.Map)
	}

	return m, gc.Map, nil
}

// serveMetrics exposes /metrics on addr in the background.
func serveMetrics(addr string, logger *slog.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		logger.Info("metrics_listening", slog.String("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("metrics_server_failed", slog.String("error", err.Error()))
		}
	}()
}
