// Package mapfile reads and writes terrain grids as small YAML documents.
//
// A map file names the grid, draws it as rows of single-rune symbols and
// optionally pins exact cost multipliers for individual cells:
//
//	name: detour
//	start: [0, 0]
//	end: [2, 2]
//	rows:
//	  - "S.."
//	  - ".#."
//	  - "..E"
//	costs:
//	  - {x: 1, y: 0, cost: 1.3}
//
// Symbols are those of terrain.Terrain ('.', 'g', 's', 'm', '~', '#');
// 'S' and 'E' are road cells carrying the start and end markers. The start
// and end fields may replace the markers, but a map must not carry two
// different starts or two different ends.
//
// A handful of maps ship embedded in the package; see Builtin.
package mapfile
