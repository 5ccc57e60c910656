// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Graph construction from segments (Build) and from an edge multiset (FromEdges).
// Policy:
//   - All-or-nothing: the first invalid input aborts construction, nothing is returned.
//   - Inputs are never mutated; backward geometry is a reversed copy.

package core

import (
	"fmt"

	"github.com/katalvlaran/lvroute/segment"
)

// Build converts segments into a Graph.
//
// Implementation:
//   - Stage 1: validate the segment (geometry length, cost, overrides).
//   - Stage 2: derive origin/destination keys from the first/last coordinate.
//   - Stage 3: insert the forward edge when the direction allows it.
//   - Stage 4: insert the backward edge when the direction allows it.
//
// Behavior highlights:
//   - Intermediate coordinates are geometry only; they never become nodes.
//   - Parallel segments produce parallel edges; no deduplication happens here.
//   - Forward and backward edges of one segment share ID; cost is per-direction.
//
// Errors:
//   - segment.ErrMalformedGeometry, segment.ErrInvalidCost, wrapped with the input index.
//
// Complexity:
//   - Time O(S·log V + P) where P is the total number of points (backward copies), Space O(V + E + P).
func Build(segs []segment.Segment, opts ...Option) (*Graph, error) {
	o := newOptions(opts)
	g := newGraph(o, 2*len(segs))

	var (
		s        *segment.Segment
		from, to string
	)
	for i := range segs {
		s = &segs[i]
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("core: segment %d: %w", i, err)
		}

		from = segment.NodeKey(s.Origin(), o.precision)
		to = segment.NodeKey(s.Destination(), o.precision)
		g.addNode(from, s.Origin())
		g.addNode(to, s.Destination())

		if s.Direction.AllowsForward() {
			g.addEdge(&Edge{
				ID:       s.ID,
				From:     from,
				To:       to,
				Cost:     s.EffectiveCost(segment.Forward),
				Geometry: s.Geometry,
			})
		}
		if s.Direction.AllowsBackward() {
			rev := s.Geometry.Clone()
			rev.Reverse()
			g.addEdge(&Edge{
				ID:       s.ID,
				From:     to,
				To:       from,
				Cost:     s.EffectiveCost(segment.Backward),
				Geometry: rev,
				Reversed: true,
			})
		}
	}

	return g, nil
}

// FromEdges builds a Graph over an existing edge multiset, keeping the given order
// inside each adjacency list. Edge pointers are shared, not copied.
//
// Node coordinates come from each edge's first and last geometry point, and the
// endpoint keys must match those points at the configured precision.
//
// Complexity: O(E·log V).
func FromEdges(edges []*Edge, opts ...Option) (*Graph, error) {
	o := newOptions(opts)
	g := newGraph(o, len(edges))

	for i, e := range edges {
		if e == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilEdge, i)
		}
		if err := checkEdge(e, o.precision); err != nil {
			return nil, fmt.Errorf("%w: index %d id=%q: %v", ErrBadEdge, i, e.ID, err)
		}
		g.addNode(e.From, e.Geometry[0])
		g.addNode(e.To, e.Geometry[len(e.Geometry)-1])
		g.addEdge(e)
	}

	return g, nil
}

func checkEdge(e *Edge, precision int) error {
	if e.From == "" || e.To == "" {
		return fmt.Errorf("empty endpoint")
	}
	if !segment.ValidCost(e.Cost) {
		return fmt.Errorf("cost=%v", e.Cost)
	}
	if len(e.Geometry) < 2 {
		return fmt.Errorf("geometry has %d points", len(e.Geometry))
	}
	if segment.NodeKey(e.Geometry[0], precision) != e.From ||
		segment.NodeKey(e.Geometry[len(e.Geometry)-1], precision) != e.To {
		return fmt.Errorf("geometry does not run %s → %s", e.From, e.To)
	}

	return nil
}
