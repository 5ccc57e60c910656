// Package core provides the routable road graph: coordinate-keyed nodes and
// directed, costed edges built from segment.Segment records.
//
// The Graph G = (V,E) is built once and then frozen:
//
//   - Nodes are keyed by segment.NodeKey(point, precision); equal coordinates
//     (after quantization) always map onto the same node.
//   - Every segment contributes a forward edge (origin→destination) unless it is
//     Backward-only, and a backward edge (destination→origin) unless it is
//     Forward-only. Each edge copies the segment ID; its cost is the direction's
//     override when set, else the plain cost.
//   - Parallel edges (several edges for one ordered node pair) are kept. Run
//     dedup.Resolve before Build, or dedup.Graph after it, to collapse them.
//   - Adjacency lists preserve insertion order, so "first matching edge" is
//     reproducible across runs.
//
// Why no locks?
//
//	A Graph exposes no mutating method. Build and FromEdges return a fully
//	populated value; afterwards any number of goroutines may read it.
//
// Construction:
//
//	Build(segs []segment.Segment, opts ...Option) (*Graph, error)   // O(S + total points)
//	FromEdges(edges []*Edge, opts ...Option) (*Graph, error)        // O(E)
//
// Options:
//
//	WithPrecision(p int) - node-key precision, default segment.DefaultPrecision.
//
// Query:
//
//	Neighbors(key) []*Edge       // outgoing edges, insertion order, O(1)
//	Node(key) (*Node, bool)      // O(log V)
//	Lookup(p orb.Point)          // canonicalize then Node
//	Nodes() []string             // sorted keys, O(V)
//	Edges() []*Edge              // all edges, node-sorted then insertion order
//	NodeCount(), EdgeCount()     // O(1)
//
// Errors:
//
//	Build fails fast on the first invalid segment, wrapping
//	segment.ErrMalformedGeometry or segment.ErrInvalidCost with the input index.
//	FromEdges fails with ErrBadEdge on an edge with empty endpoints, bad cost or
//	geometry that does not start/end on its endpoints.
package core
