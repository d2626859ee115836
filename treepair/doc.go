// Package treepair counts the maximum number of vertex-disjoint red–blue
// paths in a tree by destructive leaf elimination.
//
// What:
//
//   - Graph holds a fixed arena of node ids 1..n: liveness, symmetric
//     adjacency sets, a persistent color per id, and the frontier of
//     degree-1 nodes ("leaves"), maintained incrementally.
//   - CountPaths drains the frontier: each extracted leaf either completes
//     a red–blue pair with its sole neighbor (both nodes are consumed and
//     the count grows) or pushes its color onto the neighbor and vanishes.
//   - Colors outlive removal: a just-removed node's color stays readable,
//     which the algorithm relies on in the very step that removes it.
//
// Why:
//
//   - Maximum vertex-disjoint red–blue path counting on trees in O(n).
//   - Competitive programming / network pairing: match colored endpoints
//     so that no two matched routes share a node.
//   - A worked example of greedy tree contraction with provable
//     order-independence.
//
// Complexity (n = number of nodes):
//
//   - NewGraph:    O(n) time and memory.
//   - RemoveNode:  O(deg(v)).
//   - CountPaths:  O(n) total — every node is removed exactly once.
//
// Options:
//
//   - WithOnReduce(fn): observe every reduction step (leaf, snapshot of the
//     surviving graph in input format, running count). Purely
//     observational; the hook must not mutate the graph.
//   - WithLeafPicker(fn): override frontier extraction order. Any order
//     yields the same final count on a valid tree; the default is the
//     frontier's insertion order.
//
// Errors:
//
//   - ErrTooFewNodes: a graph needs at least one node.
//   - ErrEdgeCount: exactly n-1 edges are required.
//   - ErrNodeRange: an edge endpoint or colored id lies outside 1..n.
//   - ErrGraphNil: CountPaths received a nil graph.
//   - ErrNodeNotLive: RemoveNode on an already-removed node.
//   - ErrBadLeafPick: a leaf picker returned an id not in the frontier.
//
// The constructor does not verify that the edges form a tree (connected,
// acyclic); that is a documented precondition. On non-tree input the
// reduction stops once no leaves remain and the result is meaningless.
package treepair
