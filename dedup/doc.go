// Package dedup collapses parallel road segments so that at most one directed
// edge survives per ordered (origin, destination) node pair.
//
// Overview:
//
//   - Segments are processed in input order against an index keyed by the
//     ordered pair of node keys. A forward-capable segment competes for
//     (origin, destination); a backward-capable one competes for
//     (destination, origin). The two competitions are independent.
//   - Competitors are compared by effective cost: the direction's override when
//     set, else the plain cost. A strictly cheaper newcomer replaces the
//     incumbent; on a tie the incumbent (earlier input) stays.
//
// Survivorship policies:
//
//   - PerDirection (default): a segment keeps exactly the directions it won.
//     A Both segment that lost only its backward competition is returned with
//     Direction = Forward, so a later core.Build contributes just that edge.
//     Segments that won nothing are dropped.
//   - WholeSegment: a segment that lost in any direction is dropped entirely,
//     even if it won the other one. This reproduces the historical cleanse step
//     and can leave an ordered pair with no surviving edge at all.
//
// Input ownership:
//
//	By default Resolve never touches its input: survivors are shallow copies
//	(geometry slices are shared). WithInPlace() opts into reusing the input
//	slice's backing array and rewriting Direction on the input records, which
//	saves one allocation of len(segs) records on large networks.
//
// Edge form:
//
//	ResolveEdges applies the same minimum-cost rule to an already built edge
//	multiset, and Graph returns a deduplicated copy of a core.Graph.
//
// Complexity:
//
//   - Time O(n) expected (one hash lookup per direction per segment).
//   - Space O(n) for the pair index.
package dedup
