// Package pairheap implements the meldable min-heap of (key, payload) pairs
// that backs each cluster's set of edge-parts during PCST moat growth.
//
// Keys are float64 residual costs. There is no decrease-key: instead, every
// heap supports AddToHeap(delta), an O(1) operation that uniformly shifts
// every key currently in the heap by delta — exactly what is needed to
// advance every remaining edge-part's residual cost as a cluster grows for
// delta time units. This is implemented without ever walking the tree: each
// node's key is stored as a delta relative to its parent (the heap's root
// stores its key as an absolute value), so adding to the whole heap is a
// single O(1) write at the root, and every descendant's absolute key — the
// sum of deltas from itself up to the root — shifts for free.
//
// Meld links one root under the other (whichever key is smaller) in O(1)
// given both roots' absolute keys, which is why AddToHeap must be applied
// (pushed into the root) before a meld or a delete-min ever inspects a
// heap's root. DeleteMin pops the root and combines its former children
// two-pass (pairing-heap style), giving amortized O(log n).
//
// Every node also keeps a parent pointer, purely so a Handle returned by
// Insert can recover its entry's current absolute key — via Heap.Value —
// without that entry ever reaching the top of the heap. The solver needs
// exactly this to read a boundary edge's residual on the far side of an
// idle (non-minimal) cluster.
package pairheap
