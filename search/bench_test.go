package search_test

import (
	"testing"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/search"
)

func benchGrid(b *testing.B) (*core.Graph, string, string) {
	b.Helper()
	segs, err := builder.Grid(60, 60,
		builder.WithSeed(1),
		builder.WithCostRange(1, 10),
		builder.WithOneWay(0.1),
		builder.WithDuplicates(0.2, 0.5),
	)
	if err != nil {
		b.Fatal(err)
	}
	g, err := core.Build(segs)
	if err != nil {
		b.Fatal(err)
	}
	keys := g.Nodes()

	return g, keys[0], keys[len(keys)-1]
}

func benchFinder(b *testing.B, f search.Finder) {
	g, from, to := benchGrid(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Find(g, from, to); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEngine_Dijkstra(b *testing.B) { benchFinder(b, search.New()) }

// Spacing 0.001° ≈ 111 m and the cheapest block costs 1, so 200 m per cost
// unit never overestimates.
func BenchmarkEngine_AStar(b *testing.B) {
	benchFinder(b, search.New(search.WithHeuristic(search.GreatCircle(200))))
}

func BenchmarkGonum(b *testing.B) { benchFinder(b, search.NewGonum()) }
