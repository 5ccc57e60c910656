package search

import (
	"fmt"
	"math"
	"sync"

	"github.com/paulmach/orb"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvroute/core"
)

// Gonum answers queries with gonum's A* over a mirrored gonum graph.
// Mirrors are built on first use per *core.Graph and kept for the Gonum's lifetime.
type Gonum struct {
	options Options

	mu    sync.Mutex
	cache map[*core.Graph]*gonumView
}

// gonumView is the immutable gonum mirror of one core.Graph.
type gonumView struct {
	wg     *simple.WeightedDirectedGraph
	ids    map[string]int64 // node key → gonum id
	keys   []string         // gonum id → node key
	points []orb.Point      // gonum id → coordinate
}

// NewGonum returns a gonum-backed Finder. WithHeuristic and WithMaxCost apply.
func NewGonum(opts ...Option) *Gonum {
	return &Gonum{
		options: newOptions(opts),
		cache:   make(map[*core.Graph]*gonumView),
	}
}

// Find implements Finder.
func (f *Gonum) Find(g *core.Graph, origin, destination string) ([]string, error) {
	if err := checkEndpoints(g, origin, destination); err != nil {
		return nil, err
	}
	v := f.view(g)
	s, t := v.ids[origin], v.ids[destination]

	var h path.Heuristic
	if f.options.Heuristic != nil {
		h = func(x, y graph.Node) float64 {
			return f.options.Heuristic(v.points[x.ID()], v.points[y.ID()])
		}
	}

	shortest, _ := path.AStar(simple.Node(s), simple.Node(t), v.wg, h)
	nodes, weight := shortest.To(t)
	if len(nodes) == 0 || math.IsInf(weight, 1) || weight > f.options.MaxCost {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPathFound, origin, destination)
	}

	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = v.keys[n.ID()]
	}

	return out, nil
}

// view returns the cached mirror of g, building it under the lock on first use.
func (f *Gonum) view(g *core.Graph) *gonumView {
	f.mu.Lock()
	defer f.mu.Unlock()

	if v, ok := f.cache[g]; ok {
		return v
	}
	v := mirror(g)
	f.cache[g] = v

	return v
}

// mirror copies g into a gonum graph.
//
// Implementation:
//   - Stage 1: number nodes in ascending key order (ids are dense 0..V-1).
//   - Stage 2: add each edge, keeping the minimum weight per ordered pair;
//     self-loops are skipped since they never shorten a route.
func mirror(g *core.Graph) *gonumView {
	keys := g.Nodes()
	v := &gonumView{
		wg:     simple.NewWeightedDirectedGraph(0, math.Inf(1)),
		ids:    make(map[string]int64, len(keys)),
		keys:   keys,
		points: make([]orb.Point, len(keys)),
	}
	for i, k := range keys {
		v.ids[k] = int64(i)
		n, _ := g.Node(k)
		v.points[i] = n.Point
		v.wg.AddNode(simple.Node(i))
	}

	var from, to int64
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		from, to = v.ids[e.From], v.ids[e.To]
		if cur := v.wg.WeightedEdge(from, to); cur != nil && cur.Weight() <= e.Cost {
			continue
		}
		v.wg.SetWeightedEdge(v.wg.NewWeightedEdge(simple.Node(from), simple.Node(to), e.Cost))
	}

	return v
}
