// Package reconstruct recovers the concrete edge chain and its exact total cost
// from the bare node sequence a shortest-path search returns.
//
// Ordering convention (fixed):
//
//	The input sequence runs origin → destination. Path.EdgeIDs and Path.Edges
//	are emitted destination → origin: index 0 is the edge entering the
//	destination, the last index is the edge leaving the origin. Path.Forward()
//	returns the ids origin → destination.
//
// Parallel edges:
//
//	When several edges join one consecutive pair (a graph that was not
//	deduplicated), the cheapest is chosen; among equal costs the first in the
//	adjacency list wins. Adjacency order is insertion order, so the choice is
//	reproducible.
//
// Errors:
//
//	ErrNilGraph         - g is nil.
//	ErrDisconnectedPath - some consecutive pair has no edge in g. No partial path
//	                      is returned.
package reconstruct

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors returned by Reconstruct.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("reconstruct: graph is nil")

	// ErrDisconnectedPath indicates a consecutive node pair with no matching edge.
	ErrDisconnectedPath = errors.New("reconstruct: no edge between consecutive nodes")
)

// Path is a reconstructed route.
type Path struct {
	// EdgeIDs lists edge ids destination → origin.
	EdgeIDs []string

	// Edges lists the chosen edges in the same order as EdgeIDs, for geometry lookup.
	Edges []*core.Edge

	// TotalCost is the sum of the chosen edges' costs, accumulated origin → destination.
	TotalCost float64
}

// Forward returns the edge ids origin → destination as a new slice.
func (p *Path) Forward() []string {
	out := make([]string, len(p.EdgeIDs))
	for i, id := range p.EdgeIDs {
		out[len(p.EdgeIDs)-1-i] = id
	}

	return out
}

// Reconstruct walks nodes pairwise and selects the edge for each step.
//
// Implementation:
//   - Stage 1: for i in [0, n-1): scan Neighbors(nodes[i]) for edges to nodes[i+1],
//     keep the cheapest (first on ties).
//   - Stage 2: accumulate TotalCost in walk order.
//   - Stage 3: reverse the collected chain into the destination → origin convention.
//
// A sequence with fewer than two nodes yields an empty Path with TotalCost 0.
//
// Complexity: O(Σ deg(nodes[i])) time, O(n) space.
func Reconstruct(nodes []string, g *core.Graph) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(nodes) < 2 {
		return &Path{EdgeIDs: []string{}, Edges: []*core.Edge{}}, nil
	}

	steps := len(nodes) - 1
	p := &Path{
		EdgeIDs: make([]string, steps),
		Edges:   make([]*core.Edge, steps),
	}

	var best *core.Edge
	for i := 0; i < steps; i++ {
		best = cheapest(g.Neighbors(nodes[i]), nodes[i+1])
		if best == nil {
			return nil, fmt.Errorf("%w: step %d %s → %s", ErrDisconnectedPath, i, nodes[i], nodes[i+1])
		}
		p.TotalCost += best.Cost
		p.Edges[steps-1-i] = best
		p.EdgeIDs[steps-1-i] = best.ID
	}

	return p, nil
}

// cheapest returns the lowest-cost edge in out that ends at to, or nil.
func cheapest(out []*core.Edge, to string) *core.Edge {
	var best *core.Edge
	for _, e := range out {
		if e.To != to {
			continue
		}
		if best == nil || e.Cost < best.Cost {
			best = e
		}
	}

	return best
}
