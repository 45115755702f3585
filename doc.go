// Package gridpath is a weighted-grid pathfinding toolkit: an A* engine for
// eight-directional movement over terrain of varying cost, the grid model it
// searches, and a terminal editor to paint maps and watch searches unfold.
//
// 🚀 What is in the box?
//
//	• Terrain model: cells with cost multipliers in [1,3], walls, start/end
//	• A* search: octile heuristic, deterministic tie-breaking,
//	  run-to-completion (FindPath) or one expansion per call (Stepper)
//	• Notifications: hooks for opened, expanded, path and unreachable cells
//	• Dijkstra: the exact cost field from one cell, an oracle for A*
//	• Map files: YAML documents drawn in terrain symbols
//	• Traces: CSV snapshots of per-cell scores and per-step progress
//
// ✨ Why gridpath?
//
//   - One state machine for both modes, so stepping and solving always agree
//   - Integer costs (10 straight, 14 diagonal), no floating-point drift in scores
//   - Scratch state owned by the search, never by the grid
//
// Under the hood, everything is organized under these subpackages:
//
//	terrain/        Grid, Cell, Coord, editing rules, terrain classes, regions
//	astar/          cost functions, preconditions, Search, FindPath, Stepper
//	dijkstra/       single-source least-cost field over a terrain grid
//	mapfile/        YAML map files and builtin maps
//	trace/          CSV export of search state
//	config/         YAML configuration with embedded defaults
//	cmd/gridpath/   interactive terminal editor and headless solver
//
// Quick ASCII example:
//
//	S . . .
//	. # # .
//	. . . E
//
//	a 4×3 map whose cheapest route skirts the wall at cost 44.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
