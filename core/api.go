// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only query facade over a frozen Graph.
// Policy:
//   - No mutation; every method is safe for concurrent use.
//   - Returned slices of edges are the graph's own; callers must not modify them.

package core

import (
	"github.com/paulmach/orb"

	"github.com/katalvlaran/lvroute/segment"
)

// Precision reports the node-key precision the graph was built with.
func (g *Graph) Precision() int { return g.precision }

// Key canonicalizes p with the graph's precision.
func (g *Graph) Key(p orb.Point) string { return segment.NodeKey(p, g.precision) }

// HasNode reports whether key names a node of g.
func (g *Graph) HasNode(key string) bool {
	_, ok := g.nodes.Get(key)

	return ok
}

// Node returns the node for key.
//
// Complexity: O(log V).
func (g *Graph) Node(key string) (*Node, bool) { return g.nodes.Get(key) }

// Lookup returns the node located at p, after quantization.
func (g *Graph) Lookup(p orb.Point) (*Node, bool) { return g.nodes.Get(g.Key(p)) }

// Neighbors returns the outgoing edges of key in insertion order,
// or nil when key is unknown or has no outgoing edge.
//
// Complexity: O(1).
func (g *Graph) Neighbors(key string) []*Edge { return g.adjacency[key] }

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns |E|, parallel edges included.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Nodes returns all node keys in ascending order.
//
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	keys := make([]string, 0, g.nodes.Len())
	g.nodes.Scan(func(k string, _ *Node) bool {
		keys = append(keys, k)

		return true
	})

	return keys
}

// Edges returns every edge, grouped by origin in ascending key order and,
// within one origin, in insertion order.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.edgeCount)
	g.nodes.Scan(func(k string, _ *Node) bool {
		out = append(out, g.adjacency[k]...)

		return true
	})

	return out
}
