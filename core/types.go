// Package core defines the central Graph, Node and Edge types and the
// functional options accepted by the constructors.
//
// Errors:
//
//	ErrNilEdge - FromEdges received a nil *Edge.
//	ErrBadEdge - FromEdges received an edge that violates the Edge invariants.
package core

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/tidwall/btree"

	"github.com/katalvlaran/lvroute/segment"
)

// Sentinel errors for graph construction.
var (
	// ErrNilEdge indicates a nil edge pointer passed to FromEdges.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrBadEdge indicates an edge with empty endpoints, invalid cost or mismatched geometry.
	ErrBadEdge = errors.New("core: malformed edge")
)

// Node is a graph vertex identified by its canonical coordinate key.
type Node struct {
	// Key is segment.NodeKey(Point, precision).
	Key string

	// Point is the first coordinate seen for this key.
	Point orb.Point
}

// Edge is a directed, costed relation between two nodes.
//
// Geometry always runs From → To: backward edges hold a reversed copy of the
// segment geometry. Edges are shared between graphs and must be treated as read-only.
type Edge struct {
	// ID is the originating segment's ID; a bidirectional segment yields two edges with one ID.
	ID string

	// From is the origin node key.
	From string

	// To is the destination node key.
	To string

	// Cost is positive and finite.
	Cost float64

	// Geometry is the full coordinate sequence, From → To.
	Geometry orb.LineString

	// Reversed is true for an edge built against the segment's digitized direction.
	Reversed bool
}

// Option configures Build and FromEdges.
type Option func(*options)

type options struct {
	precision int
}

// WithPrecision sets the number of decimals kept in node keys.
// Panics with segment.ErrBadPrecision outside [0, segment.MaxPrecision].
func WithPrecision(p int) Option {
	if err := segment.CheckPrecision(p); err != nil {
		panic(fmt.Sprintf("%v: %d", err, p))
	}

	return func(o *options) { o.precision = p }
}

func newOptions(opts []Option) options {
	o := options{precision: segment.DefaultPrecision}
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	return o
}

// Graph is the frozen adjacency structure.
//
// nodes is an ordered index (btree) so Nodes() needs no sort;
// adjacency maps a node key to its outgoing edges in insertion order.
type Graph struct {
	precision int

	nodes     btree.Map[string, *Node]
	adjacency map[string][]*Edge
	edgeCount int
}

func newGraph(o options, edgeHint int) *Graph {
	return &Graph{
		precision: o.precision,
		adjacency: make(map[string][]*Edge, edgeHint/2+1),
	}
}

// addNode registers p under key unless the key is already known.
func (g *Graph) addNode(key string, p orb.Point) {
	if _, ok := g.nodes.Get(key); ok {
		return
	}
	g.nodes.Set(key, &Node{Key: key, Point: p})
}

// addEdge appends e to the adjacency of e.From. Endpoints must already be registered.
func (g *Graph) addEdge(e *Edge) {
	g.adjacency[e.From] = append(g.adjacency[e.From], e)
	g.edgeCount++
}
