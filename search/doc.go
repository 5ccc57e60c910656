// Package search provides shortest-path collaborators for lvroute graphs.
//
// The rest of lvroute only depends on the Finder capability:
//
//	type Finder interface {
//	    Find(g *core.Graph, origin, destination string) ([]string, error)
//	}
//
// Find returns node keys origin → destination, or an error wrapping
// ErrNoPathFound when destination is unreachable. reconstruct.Reconstruct
// turns that sequence into edges and an exact cost.
//
// Implementations:
//
//   - Engine: binary-heap Dijkstra with lazy decrease-key and early exit at the
//     destination. With WithHeuristic it becomes A*.
//   - Gonum: an independent implementation that mirrors the graph into a
//     gonum simple.WeightedDirectedGraph (parallel edges collapsed to their
//     minimum weight, self-loops skipped) and queries gonum's path.AStar.
//     The mirror is cached per *core.Graph.
//   - FinderFunc: adapts a plain function.
//
// Heuristics:
//
//	A heuristic must never overestimate the remaining cost, or A* may return a
//	suboptimal route. GreatCircle(d) divides the haversine distance in metres by
//	d, the largest distance any edge covers per unit of cost (e.g. metres per
//	minute at the network's top speed). Distances are taken on a sphere of the
//	polar radius, so they stay below the ellipsoidal length of any road.
//
// Options:
//
//	WithHeuristic(h)  - enable A*; panics on nil.
//	WithMaxCost(c)    - treat routes costing more than c as not found; panics on c <= 0.
//
// Errors (sentinel):
//
//	ErrNilGraph      - g is nil.
//	ErrEmptyEndpoint - origin or destination is "".
//	ErrNodeNotFound  - origin or destination is not a node of g.
//	ErrNoPathFound   - destination unreachable (or beyond MaxCost).
//
// Complexity (Engine):
//
//	Time O((V + E) log V), Space O(V + E) in the worst case; A* with a good
//	heuristic settles far fewer nodes.
//
// Thread safety:
//
//	Engine and Gonum hold no per-query state and may be shared by goroutines
//	querying the same frozen core.Graph.
package search
