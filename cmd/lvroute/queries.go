package main

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/validate"
)

// queryGen draws reproducible origin/destination pairs over a graph's nodes.
type queryGen struct {
	graph     *core.Graph
	seed      int64
	reachable bool
}

// draw returns n queries. Without reachable, both ends are uniform over all
// nodes. With reachable, the destination is uniform over the nodes a BFS from
// the origin visits, the origin itself included.
func (q queryGen) draw(ctx context.Context, n int) ([]validate.Query, error) {
	keys := q.graph.Nodes()
	if len(keys) == 0 || n == 0 {
		return nil, nil
	}

	rng := rand.New(rand.NewSource(q.seed))
	reach := make(map[string][]string)
	out := make([]validate.Query, n)
	for i := range out {
		origin := keys[rng.Intn(len(keys))]
		if !q.reachable {
			out[i] = validate.Query{Origin: origin, Destination: keys[rng.Intn(len(keys))]}

			continue
		}

		order, ok := reach[origin]
		if !ok {
			res, err := bfs.BFS(q.graph, origin, bfs.WithContext(ctx))
			if err != nil {
				return nil, err
			}
			order = res.Order
			reach[origin] = order
		}
		out[i] = validate.Query{Origin: origin, Destination: order[rng.Intn(len(order))]}
	}

	return out, nil
}
