// Package dsu implements the cluster union-find used by the PCST moat-growth
// event loop to map an original vertex (or a previously merged cluster) to
// the cluster that currently owns it.
//
// Unlike a classic union-by-rank disjoint-set, merges here never attach one
// existing root under another: every merge mints a brand-new cluster id that
// becomes the parent of exactly the two clusters being merged, mirroring the
// laminar merge tree the solver builds (leaves are original vertices, the
// final root is the last surviving super-cluster). Find walks these
// skip-up pointers with path compression and stops at the first id that is
// still its own parent — the current representative.
//
// Complexity: Merge is O(1) amortized; Find is O(α(n)) amortized thanks to
// path compression, same as a standard disjoint-set forest.
package dsu
