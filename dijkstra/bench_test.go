package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/terrain"
)

func BenchmarkDijkstra_128(b *testing.B) {
	g := randomGrid(rand.New(rand.NewSource(1)), 128, 128, 20)
	src := terrain.Coord{X: 0, Y: 0}
	_ = g.SetWall(src, false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, dijkstra.Source(src))
	}
}
