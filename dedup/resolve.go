package dedup

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/segment"
)

// Resolve collapses segments that share an ordered node pair, keeping the cheapest.
//
// Implementation:
//   - Stage 1: validate each segment and derive its endpoint keys.
//   - Stage 2: compete for (origin,dest) with the forward effective cost and for
//     (dest,origin) with the backward effective cost, as the direction allows.
//   - Stage 3: emit survivors according to the policy.
//
// Errors:
//   - segment.ErrMalformedGeometry / segment.ErrInvalidCost wrapped with the input
//     index; Resolve fails before touching the input, even with WithInPlace.
//
// Complexity: O(n) expected time, O(n) space.
func Resolve(segs []segment.Segment, opts ...Option) (*Result, error) {
	o := options{policy: PerDirection, precision: segment.DefaultPrecision}
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	r := &resolver{
		index: make(map[pairKey]holder, 2*len(segs)),
		won:   make([]uint8, len(segs)),
		lost:  make([]uint8, len(segs)),
	}

	var (
		s        *segment.Segment
		from, to string
	)
	for i := range segs {
		s = &segs[i]
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("dedup: segment %d: %w", i, err)
		}
		from = segment.NodeKey(s.Origin(), o.precision)
		to = segment.NodeKey(s.Destination(), o.precision)

		if s.Direction.AllowsForward() {
			r.claim(pairKey{from, to}, i, bitForward, s.EffectiveCost(segment.Forward))
		}
		if s.Direction.AllowsBackward() {
			r.claim(pairKey{to, from}, i, bitBackward, s.EffectiveCost(segment.Backward))
		}
	}

	return r.emit(segs, o), nil
}

type resolver struct {
	index map[pairKey]holder
	won   []uint8 // directions currently held, per input index
	lost  []uint8 // directions lost at least once, per input index
}

// claim runs one competition. Strictly cheaper replaces; ties keep the incumbent.
func (r *resolver) claim(k pairKey, idx int, bit uint8, cost float64) {
	cur, ok := r.index[k]
	if !ok {
		r.index[k] = holder{idx: idx, bit: bit, cost: cost}
		r.won[idx] |= bit

		return
	}
	if cost < cur.cost {
		r.won[cur.idx] &^= cur.bit
		r.lost[cur.idx] |= cur.bit
		r.index[k] = holder{idx: idx, bit: bit, cost: cost}
		r.won[idx] |= bit

		return
	}
	r.lost[idx] |= bit
}

func (r *resolver) emit(segs []segment.Segment, o options) *Result {
	res := &Result{}
	for i := range r.lost {
		if r.lost[i]&bitForward != 0 {
			res.ForwardDiscarded++
		}
		if r.lost[i]&bitBackward != 0 {
			res.BackwardDiscarded++
		}
	}

	var out []segment.Segment
	if o.inPlace {
		out = segs[:0]
	} else {
		out = make([]segment.Segment, 0, len(segs))
	}

	var s segment.Segment
	for i := range segs {
		s = segs[i]
		switch o.policy {
		case WholeSegment:
			if r.lost[i] != 0 {
				res.Dropped++
				continue
			}
		default:
			dir, keep := narrow(s.Direction, r.won[i])
			if !keep {
				res.Dropped++
				continue
			}
			if dir != s.Direction {
				res.Narrowed++
				s.Direction = dir
			}
		}
		out = append(out, s)
	}
	res.Segments = out

	return res
}

// narrow maps the directions a segment still holds onto a Direction.
func narrow(orig segment.Direction, held uint8) (segment.Direction, bool) {
	switch held {
	case bitForward | bitBackward:
		return orig, true
	case bitForward:
		return segment.Forward, true
	case bitBackward:
		return segment.Backward, true
	}

	return orig, false
}

// ResolveEdges keeps, for every ordered (From, To) pair, the cheapest edge.
// Ties keep the first edge in input order. Survivors appear at the position of
// their pair's first occurrence.
//
// Errors:
//   - core.ErrNilEdge wrapped with the index of the first nil edge.
//
// Complexity: O(E) expected time.
func ResolveEdges(edges []*core.Edge) ([]*core.Edge, error) {
	pos := make(map[pairKey]int, len(edges))
	out := make([]*core.Edge, 0, len(edges))

	var k pairKey
	for i, e := range edges {
		if e == nil {
			return nil, fmt.Errorf("%w: index %d", core.ErrNilEdge, i)
		}
		k = pairKey{e.From, e.To}
		if j, ok := pos[k]; ok {
			if e.Cost < out[j].Cost {
				out[j] = e
			}
			continue
		}
		pos[k] = len(out)
		out = append(out, e)
	}

	return out, nil
}

// Graph returns a copy of g with parallel edges collapsed by ResolveEdges.
// Edge values are shared with g.
func Graph(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	edges, err := ResolveEdges(g.Edges())
	if err != nil {
		return nil, err
	}

	return core.FromEdges(edges, core.WithPrecision(g.Precision()))
}
