// Package bfs walks a core.Graph breadth-first along directed edges and
// reports hop distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node key → hops from start
//   - Parent: map from node key → its predecessor in the BFS tree
//   - OnVisit hook (may abort with an error), edge filtering via WithFilterEdge,
//     MaxDepth limit (d>0) or explicit "no limit" (d==0), context cancellation.
//
// Costs are ignored. BFS answers "which nodes can be reached at all", which is
// what query generation and no-route cross-checks need; cheapest routes are
// the search package's job.
//
// Determinism
//
//	Neighbors are expanded in adjacency order, which is segment input order,
//	so the visit sequence is reproducible for a given input.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package bfs
