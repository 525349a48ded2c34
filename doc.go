// Package pcst solves the Prize-Collecting Steiner Tree / Forest problem
// on undirected graphs with non-negative edge costs and non-negative
// vertex prizes.
//
// 🚀 What is pcstfast?
//
//	A Goemans–Williamson moat-growing solver that returns a subset of
//	vertices and edges (a forest) approximately maximizing collected prize
//	minus edge cost, optionally rooted or bounded to a number of components:
//
//	  • Event-driven growth: one priority queue holding both edge events
//	    and cluster deactivations drives a union-find over "active clusters"
//	  • Per-cluster pairing heaps track residual edge cost with O(1) growth
//	    via a lazy additive offset instead of decrease-key
//	  • Four interchangeable pruning policies turn the grown moat forest
//	    into a valid output tree/forest
//
// ✨ Why choose pcstfast?
//
//   - Deterministic — identical inputs produce identical outputs, with
//     insertion-order tie-breaking on equal event deadlines
//   - Single-threaded, CPU-bound, allocation-light — O(n+m) memory
//   - Pure Go — no cgo
//
// Under the hood, everything is organized under a handful of packages:
//
//	(root)/            — Solve, Options, the event loop and pruning policies
//	graph/              — thread-safe builder for PCST input (vertices with
//	                      prizes, edges with costs)
//	internal/eventqueue — the global event priority queue
//	internal/pairheap   — the per-cluster pairing heap
//	internal/dsu        — the cluster union-find
//	internal/config     — Viper-backed config loading for the CLI
//	cmd/pcst            — a small CLI wrapping Solve
//
// Quick ASCII example:
//
//	    0───1
//	     ╲ ╱
//	      2
//
//	a triangle where vertices 1 and 2 carry prize but 0 does not: the
//	solver buys only the cheap edge 1─2 and drops 0 as not worth its edges.
//
//	go get github.com/lvlath-labs/pcstfast
package pcst
