package astar

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Execution modes used as metric labels.
const (
	modeFull = "full"
	modeStep = "step"
)

var (
	// searchesTotal counts finished searches by mode and outcome.
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gridpath_astar_searches_total",
		Help: "Total A* searches by execution mode and outcome",
	}, []string{"mode", "outcome"})

	// expandedCells tracks how many cells a finished search closed.
	expandedCells = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gridpath_astar_expanded_cells",
		Help:    "Cells expanded per A* search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	}, []string{"mode"})

	// solveDuration tracks full-solve latency.
	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gridpath_astar_solve_duration_seconds",
		Help:    "Full-solve A* duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})
)

func observeSearch(mode string, outcome Outcome, expanded int) {
	searchesTotal.WithLabelValues(mode, outcome.String()).Inc()
	if outcome != Invalid {
		expandedCells.WithLabelValues(mode).Observe(float64(expanded))
	}
}
