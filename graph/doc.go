// Package graph is a small, thread-safe builder for PCST input graphs:
// vertices carry a non-negative prize, edges carry a non-negative cost,
// and both are always undirected with integer ids assigned in insertion
// order (0..n-1 for vertices, 0..m-1 for edges), matching the array-based
// input the solver package expects.
//
// This is a deliberately narrower cousin of a general-purpose graph type:
// PCST never needs directed edges, mixed-mode per-edge overrides, or
// adjacency views, so those concerns are dropped. What is kept is the
// per-concern RWMutex locking (muVert for vertices, muEdge for edges) and
// validating illegal input (bad weight, self-loop) at AddEdge time rather
// than at Solve time.
package graph
