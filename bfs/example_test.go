package bfs_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/segment"
)

// ExampleBFS lists the nodes reachable from a corner of a 2×2 block where one
// side is one-way against the walk.
func ExampleBFS() {
	g, _ := core.Build([]segment.Segment{
		{ID: "n", Geometry: orb.LineString{{0, 0}, {0, 1}}, Cost: 1},
		{ID: "e", Geometry: orb.LineString{{0, 1}, {1, 1}}, Cost: 1},
		{ID: "s", Geometry: orb.LineString{{1, 0}, {1, 1}}, Cost: 1, Direction: segment.Forward},
	}, core.WithPrecision(0))

	res, err := bfs.BFS(g, "0,0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Reached("1,0"))
	// Output:
	// [0,0 0,1 1,1]
	// false
}
