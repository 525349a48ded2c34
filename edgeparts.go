package pcst

import "github.com/lvlath-labs/pcstfast/internal/pairheap"

// epsilon clamps tiny negative residuals created by floating-point rounding
// back to zero.
const epsilon = 1e-10

// edgePart is one half of an input edge, owned by one endpoint. Edge e owns
// parts 2*e (its U side) and 2*e+1 (its V side); the sibling of part p is
// p^1. handle is the part's back-reference into whichever cluster's
// pairheap.Heap currently owns it, kept valid across merges since melding
// relinks pairheap nodes in place rather than recreating them. The part's
// current owning cluster is never cached here — it is always derived via
// ClusterUnionFind.Find(vertex), which stays correct across merges without
// needing an update on every absorbed part.
type edgePart struct {
	edge     int
	vertex   int
	handle   pairheap.Handle
	covering bool // true once this part has already absorbed one inactive sibling's frozen debt
}

// edgePartStore is the dense array of edge-parts, one pair per input
// edge, indexed as described above.
type edgePartStore struct {
	parts []edgePart
}

// newEdgePartStore allocates two parts per edge, each recording its edge
// and endpoint vertex. newSolver then inserts each part into its
// endpoint's singleton heap at half of the edge's cost.
func newEdgePartStore(edges []Edge) *edgePartStore {
	parts := make([]edgePart, 2*len(edges))
	for i, e := range edges {
		parts[2*i] = edgePart{edge: i, vertex: e.U}
		parts[2*i+1] = edgePart{edge: i, vertex: e.V}
	}

	return &edgePartStore{parts: parts}
}

// sibling returns the index of p's other half (the same edge's far side).
func (s *edgePartStore) sibling(p int) int { return p ^ 1 }
