package pairheap

// node is one tree node in the leftmost-child/right-sibling representation.
// delta is this node's key relative to its parent; for the current true
// root of a Heap, delta is instead the node's absolute key (no parent to be
// relative to). parent lets a Handle recover a node's absolute key by
// walking up to the root even when the node is buried deep in the tree and
// is nowhere near the current minimum.
type node struct {
	payload int
	delta   float64
	parent  *node
	child   *node
	sibling *node
}

// Heap is a meldable min-heap of (key, edge-part-index) pairs with O(1)
// global add. The zero value is an empty, ready-to-use heap; New is
// provided for readability at call sites.
type Heap struct {
	root   *node
	offset float64 // pending AddToHeap delta not yet pushed into root.delta
	size   int
}

// New returns an empty Heap.
func New() *Heap { return &Heap{} }

// Len reports the number of entries in the heap.
func (h *Heap) Len() int { return h.size }

// AddToHeap shifts every key currently in the heap by delta, in O(1).
func (h *Heap) AddToHeap(delta float64) { h.offset += delta }

// Handle references one entry previously returned by Insert, valid until
// that entry is popped via DeleteMin. It lets a caller recover the entry's
// current absolute key without the entry being (or ever becoming) the
// heap's minimum — the back-handle an EdgePartStore needs to read a
// sibling part's residual while its owning cluster idles below the top of
// its own heap.
type Handle struct{ n *node }

// Payload returns the payload this handle was inserted with.
func (hd Handle) Payload() int { return hd.n.payload }

// pushRoot folds any pending AddToHeap offset into the root so that
// h.root.delta holds the root's true absolute key, and returns that key.
// No-op (returns 0) on an empty heap.
func (h *Heap) pushRoot() float64 {
	if h.root == nil {
		return 0
	}
	h.root.delta += h.offset
	h.offset = 0

	return h.root.delta
}

// Insert adds (key, payload) to the heap and returns a Handle for it.
// Complexity: O(1) amortized. payload is normally an edge-part index; ties
// in key are broken by payload ascending, so results never depend on
// insertion or merge history.
func (h *Heap) Insert(key float64, payload int) Handle {
	n := &node{payload: payload, delta: key}
	single := &Heap{root: n, size: 1}
	merged := meld(h, single)
	*h = *merged

	return Handle{n: n}
}

// Value reports hd's current absolute key by summing deltas from its node
// up to this heap's root, plus any pending AddToHeap offset. hd must
// reference an entry still owned by h (not yet popped by DeleteMin, and
// not melded into a different *Heap value than the one last returned for
// its cluster). Complexity: O(depth), amortized O(log n) like the rest of
// the pairing heap's operations.
func (h *Heap) Value(hd Handle) float64 {
	v := h.offset
	for n := hd.n; n != nil; n = n.parent {
		v += n.delta
	}

	return v
}

// Min returns the smallest key and its payload without removing it.
// ok is false if the heap is empty.
func (h *Heap) Min() (key float64, payload int, ok bool) {
	if h.root == nil {
		return 0, 0, false
	}

	return h.pushRoot(), h.root.payload, true
}

// DeleteMin removes and returns the smallest-key entry. ok is false if the
// heap was empty. Complexity: amortized O(log n).
func (h *Heap) DeleteMin() (key float64, payload int, ok bool) {
	if h.root == nil {
		return 0, 0, false
	}
	rootAbs := h.pushRoot()
	payload = h.root.payload

	var kids []*node
	for c := h.root.child; c != nil; {
		next := c.sibling
		c.sibling = nil
		kids = append(kids, c)
		c = next
	}
	h.size--

	h.root = combine(kids, rootAbs)
	h.offset = 0

	return rootAbs, payload, true
}

// Meld consumes a and b and returns a single heap containing both. Either
// argument may be empty (but not nil — callers always hold a *Heap from
// New). Complexity: O(1).
func Meld(a, b *Heap) *Heap { return meld(a, b) }

func meld(a, b *Heap) *Heap {
	if a.root == nil {
		return b
	}
	if b.root == nil {
		return a
	}

	// pushRoot leaves each root's delta holding its true absolute key.
	absA := a.pushRoot()
	absB := b.pushRoot()

	winner, loser := a, b
	if absB < absA || (absB == absA && b.root.payload < a.root.payload) {
		winner, loser = b, a
	}

	// loser's root becomes a child of winner's root: its delta switches
	// from "absolute" to "relative to winner's absolute key".
	loser.root.delta -= winner.root.delta
	loser.root.sibling = winner.root.child
	loser.root.parent = winner.root
	winner.root.child = loser.root
	winner.size += loser.size

	return winner
}

// rooted pairs a detached subtree with its already-computed absolute key,
// used only during the two-pass combine below.
type rooted struct {
	n   *node
	abs float64
}

func lessRooted(a, b rooted) bool {
	if a.abs != b.abs {
		return a.abs < b.abs
	}

	return a.n.payload < b.n.payload
}

func link(a, b rooted) rooted {
	winner, loser := a, b
	if lessRooted(b, a) {
		winner, loser = b, a
	}
	loser.n.delta = loser.abs - winner.abs
	loser.n.sibling = winner.n.child
	loser.n.parent = winner.n
	winner.n.child = loser.n

	return winner
}

// combine performs the classic two-pass pairing-heap merge over children
// whose delta is currently relative to parentAbs (the just-removed root's
// absolute key), returning the new true root (delta rewritten to its own
// absolute key) or nil if there were no children.
func combine(kids []*node, parentAbs float64) *node {
	if len(kids) == 0 {
		return nil
	}

	pairs := make([]rooted, len(kids))
	for i, k := range kids {
		pairs[i] = rooted{n: k, abs: k.delta + parentAbs}
	}

	// First pass: merge adjacent pairs left to right.
	var firstPass []rooted
	i := 0
	for i+1 < len(pairs) {
		firstPass = append(firstPass, link(pairs[i], pairs[i+1]))
		i += 2
	}
	if i < len(pairs) {
		firstPass = append(firstPass, pairs[i])
	}

	// Second pass: fold right to left into a single winner.
	result := firstPass[len(firstPass)-1]
	for j := len(firstPass) - 2; j >= 0; j-- {
		result = link(firstPass[j], result)
	}
	result.n.delta = result.abs
	result.n.parent = nil

	return result.n
}
