package reconstruct_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/reconstruct"
	"github.com/katalvlaran/lvroute/segment"
)

// ExampleReconstruct turns the node sequence A, B, C into its edge chain.
// Edge ids come back destination → origin.
func ExampleReconstruct() {
	g, _ := core.Build([]segment.Segment{
		{ID: "x", Geometry: orb.LineString{{0, 0}, {1, 0}}, Cost: 2, Direction: segment.Forward},
		{ID: "y", Geometry: orb.LineString{{1, 0}, {2, 0}}, Cost: 4, Direction: segment.Forward},
	})
	seq := []string{g.Key(orb.Point{0, 0}), g.Key(orb.Point{1, 0}), g.Key(orb.Point{2, 0})}

	p, err := reconstruct.Reconstruct(seq, g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.EdgeIDs, p.TotalCost)
	fmt.Println(p.Forward())
	// Output:
	// [y x] 6
	// [x y]
}
