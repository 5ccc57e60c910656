// Package search implements Dijkstra / A* over a frozen core.Graph.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries when popped.
//   - We stop as soon as the destination is settled; a single-pair query never
//     explores beyond the destination's cost radius.
//   - With a heuristic, the heap is ordered by g(v) + h(v, destination);
//     dist still holds the exact cost g(v).
package search

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Engine is the built-in Finder: Dijkstra, or A* when a heuristic is set.
type Engine struct {
	options Options
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	return &Engine{options: newOptions(opts)}
}

// Options returns the resolved configuration.
func (e *Engine) Options() Options { return e.options }

// Find returns the cheapest node sequence origin → destination.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. origin and destination must be non-empty (ErrEmptyEndpoint).
//  3. both must be nodes of g (ErrNodeNotFound).
//
// origin == destination yields the one-node sequence [origin].
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func (e *Engine) Find(g *core.Graph, origin, destination string) ([]string, error) {
	if err := checkEndpoints(g, origin, destination); err != nil {
		return nil, err
	}
	if origin == destination {
		return []string{origin}, nil
	}

	r := &runner{
		g:       g,
		options: e.options,
		target:  destination,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	if e.options.Heuristic != nil {
		n, _ := g.Node(destination)
		r.targetNode = n
	}

	r.init(origin)
	if !r.process() {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPathFound, origin, destination)
	}

	return r.path(origin), nil
}

// runner holds the mutable state for a single query.
type runner struct {
	g          *core.Graph        // The input graph; read-only.
	options    Options            // Heuristic and MaxCost.
	target     string             // Destination key.
	targetNode *core.Node         // Destination node, set only for A*.
	dist       map[string]float64 // Best known cost from origin; absent means +Inf.
	prev       map[string]string  // Predecessor on the best known route.
	visited    map[string]bool    // Settled nodes.
	pq         nodePQ             // Min-heap ordered by priority.
}

// init seeds the heap with the origin at cost 0.
func (r *runner) init(origin string) {
	r.dist[origin] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: origin, dist: 0, priority: r.estimate(origin, 0)})
}

// process pops nodes until the target is settled (true) or the heap is
// exhausted / MaxCost exceeded (false).
func (r *runner) process() bool {
	var item *nodeItem
	for r.pq.Len() > 0 {
		// 1) Pop the most promising item.
		item = heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale entries.
		if r.visited[item.id] {
			continue
		}

		// 3) Costs only grow from here on; anything beyond MaxCost is unreachable for us.
		if item.dist > r.options.MaxCost {
			return false
		}

		// 4) Settle.
		r.visited[item.id] = true
		if item.id == r.target {
			return true
		}

		// 5) Relax outgoing edges.
		r.relax(item.id, item.dist)
	}

	return false
}

// relax improves neighbors of u reached through its outgoing edges.
func (r *runner) relax(u string, du float64) {
	var (
		nd    float64
		known float64
		ok    bool
	)
	for _, e := range r.g.Neighbors(u) {
		if r.visited[e.To] {
			continue
		}
		nd = du + e.Cost
		if nd > r.options.MaxCost {
			continue
		}
		// Strict "<" keeps the first-found predecessor on ties.
		if known, ok = r.dist[e.To]; ok && nd >= known {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd, priority: r.estimate(e.To, nd)})
	}
}

// estimate returns the heap priority of v reached at cost d.
func (r *runner) estimate(v string, d float64) float64 {
	if r.targetNode == nil {
		return d
	}
	n, ok := r.g.Node(v)
	if !ok {
		return d
	}

	return d + r.options.Heuristic(n.Point, r.targetNode.Point)
}

// path walks prev back from the target and returns origin → target.
func (r *runner) path(origin string) []string {
	var rev []string
	for v := r.target; ; v = r.prev[v] {
		rev = append(rev, v)
		if v == origin {
			break
		}
	}
	out := make([]string, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out
}

// nodeItem is a heap entry: a node, its exact cost and its priority.
type nodeItem struct {
	id       string  // node key
	dist     float64 // cost from origin
	priority float64 // dist (+ heuristic for A*)
}

// nodePQ is a min-heap of *nodeItem ordered by priority, then by dist.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority; among equal priorities the smaller exact cost comes first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].dist < pq[j].dist
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
