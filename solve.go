package pcst

import (
	"fmt"

	"github.com/lvlath-labs/pcstfast/internal/dsu"
	"github.com/lvlath-labs/pcstfast/internal/eventqueue"
	"github.com/lvlath-labs/pcstfast/internal/pairheap"
)

// eventKind distinguishes the two kinds of entries the global event queue
// ever holds.
type eventKind int

const (
	eventEdge eventKind = iota
	eventDeactivation
)

// queuedEvent is the payload carried by the global event queue.
type queuedEvent struct {
	kind    eventKind
	cluster int
	part    int // meaningful only for eventEdge
}

// solver drives the moat-growth phase: it owns the edge-part store, the
// cluster table, the cluster union-find, and the global event queue. Each
// cluster's own pairing heap, stored on its clusterTable record, tracks
// the residual of its member edge-parts.
//
// Every cluster's heap holds keys as deltas relative to that cluster's
// activeStartTime: a part's true absolute deadline (the global time its
// residual would hit zero, were its cluster to keep growing at rate 1
// without interruption) is activeStartTime + delta. This is exactly the
// offset trick pairheap.Heap provides: AddToHeap is used only once, at a
// merge, to re-baseline both sides' deltas onto the merge instant before
// melding — ordinary growth needs no per-tick update at all, because a
// part's absolute deadline is computed once and never revisited until
// something structural (a merge) changes.
type solver struct {
	n      int
	edges  []Edge
	prizes []float64
	costs  []float64
	opts   Options

	parts    *edgePartStore
	clusters *clusterTable
	uf       *dsu.DSU
	queue    *eventqueue.Queue

	t         float64
	numActive int
	target    int
}

func newSolver(edges []Edge, prizes []float64, costs []float64, opts Options) *solver {
	n := len(prizes)
	s := &solver{
		n:        n,
		edges:    edges,
		prizes:   prizes,
		costs:    costs,
		opts:     opts,
		parts:    newEdgePartStore(edges),
		clusters: newClusterTable(),
		uf:       dsu.New(n),
		queue:    eventqueue.New(),
		target:   opts.NumClusters,
	}

	// Singleton clusters, ids 0..n-1: active iff the vertex carries a
	// positive prize. An inactive singleton still owns a populated heap so
	// later case-C lookups can read its frozen, never-decremented
	// residuals.
	for v := 0; v < n; v++ {
		c := &cluster{
			active:     prizes[v] > epsilon,
			prizeSum:   prizes[v],
			mergedInto: noCluster,
			mergedEdge: -1,
			child1:     noCluster,
			child2:     noCluster,
			heap:       pairheap.New(),
		}
		s.clusters.add(c)
	}

	for i, e := range edges {
		s.attachPart(2*i, e.U, costs[i]/2)
		s.attachPart(2*i+1, e.V, costs[i]/2)
	}

	for v := 0; v < n; v++ {
		if s.clusters.get(v).active {
			s.numActive++
			s.scheduleDeactivation(v)
			s.scheduleNextEdge(v)
		}
	}

	return s
}

func (s *solver) attachPart(partIdx, vertex int, initial float64) {
	c := s.clusters.get(vertex)
	s.parts.parts[partIdx].handle = c.heap.Insert(initial, partIdx)
}

func (s *solver) scheduleDeactivation(id int) {
	c := s.clusters.get(id)
	if !c.active || c.prizeSum <= epsilon {
		return
	}
	deadline := c.activeStartTime + c.prizeSum
	c.deactivationHandle = s.queue.Insert(deadline, queuedEvent{kind: eventDeactivation, cluster: id})
	c.hasDeactivation = true
}

// scheduleNextEdge pushes cluster id's current heap-minimum as its pending
// edge event, if it does not already have one queued. A delta that
// floating-point rounding leaves slightly negative, or a deadline slightly
// before the current time, is clamped to "due now".
func (s *solver) scheduleNextEdge(id int) {
	c := s.clusters.get(id)
	if !c.active || c.hasEdgeWait {
		return
	}
	delta, part, ok := c.heap.Min()
	if !ok {
		return
	}
	if delta < 0 {
		delta = 0
	}
	deadline := c.activeStartTime + delta
	if deadline < s.t {
		deadline = s.t
	}
	c.edgeHandle = s.queue.Insert(deadline, queuedEvent{kind: eventEdge, cluster: id, part: part})
	c.hasEdgeWait = true
}

func (s *solver) removePendingEvents(id int) {
	c := s.clusters.get(id)
	if c.hasDeactivation {
		s.queue.Delete(c.deactivationHandle)
		c.hasDeactivation = false
	}
	if c.hasEdgeWait {
		s.queue.Delete(c.edgeHandle)
		c.hasEdgeWait = false
	}
}

// run executes the event loop until termination: either every cluster has
// deactivated, or exactly opts.NumClusters clusters remain active and the
// next pending edge event would merge two of them. Edge events against an
// inactive sibling and deactivations never merge two active clusters, so
// they are allowed to keep refining the forest even after the target
// cluster count is reached.
func (s *solver) run() error {
	for {
		key, payload, ok := s.queue.Min()
		if !ok {
			return nil
		}
		ev := payload.(queuedEvent)

		if ev.kind == eventEdge && s.numActive <= s.target && s.wouldMergeTwoActive(ev) {
			return nil
		}

		if key < s.t-epsilon {
			return &InternalError{Reason: fmt.Sprintf("event deadline %g precedes current time %g", key, s.t)}
		}

		s.queue.DeleteMin()
		s.t = key

		if ev.kind == eventDeactivation {
			s.handleDeactivation(ev.cluster)
		} else {
			s.handleEdge(ev.cluster, ev.part)
		}
	}
}

// wouldMergeTwoActive peeks (without mutating any state) whether
// processing ev would land in case B: both the scheduling cluster and its
// sibling's current cluster active and distinct.
func (s *solver) wouldMergeTwoActive(ev queuedEvent) bool {
	c := s.clusters.get(ev.cluster)
	if !c.active || c.mergedInto != noCluster {
		return false
	}
	sib := s.parts.sibling(ev.part)
	d := s.uf.Find(s.parts.parts[sib].vertex)

	return d != ev.cluster && s.clusters.get(d).active
}

func (s *solver) handleDeactivation(id int) {
	c := s.clusters.get(id)
	c.hasDeactivation = false
	if !c.active || c.mergedInto != noCluster {
		return // stale: already resolved by a merge before this event fired
	}
	c.active = false
	c.activeEndTime = s.t
	c.moatSize += s.t - c.activeStartTime
	s.opts.log(2, "cluster %d deactivated at t=%.6f, moat=%.6f", id, s.t, c.moatSize)
	if c.hasEdgeWait {
		s.queue.Delete(c.edgeHandle)
		c.hasEdgeWait = false
	}
	s.numActive--
}

func (s *solver) handleEdge(clusterID, partIdx int) {
	c := s.clusters.get(clusterID)
	c.hasEdgeWait = false

	_, popped, ok := c.heap.DeleteMin()
	if !ok || popped != partIdx {
		return // stale/inconsistent; best-effort recovery, never expected
	}

	sib := s.parts.sibling(partIdx)
	sibVertex := s.parts.parts[sib].vertex
	d := s.uf.Find(sibVertex)

	switch {
	case d == clusterID:
		// Case A: both endpoints already share a cluster; this edge is
		// already paid for internally. Move on to C's next edge.
		s.scheduleNextEdge(clusterID)

	case s.clusters.get(d).active:
		// Case B: both sides active and distinct — the edge is bought.
		s.merge(clusterID, d, partIdx)

	default:
		// Case C: the other side is inactive (frozen, possibly at
		// birth). The active side alone must also cover whatever of the
		// edge's cost the inactive side left unpaid.
		s.coverInactiveSibling(clusterID, d, partIdx, sib)
	}
}

// coverInactiveSibling implements the growth loop's case C. The first time
// part's deadline fires against an inactive sibling, it is reinserted with
// a deadline that also covers the sibling's frozen debt; the second time
// it fires (now that the active side has paid for the whole edge alone),
// the edge is bought and the dead cluster's territory is merged in.
func (s *solver) coverInactiveSibling(clusterID, deadCluster, partIdx, sib int) {
	p := &s.parts.parts[partIdx]
	if p.covering {
		s.merge(clusterID, deadCluster, partIdx)
		return
	}

	dc := s.clusters.get(deadCluster)
	remaining := dc.heap.Value(s.parts.parts[sib].handle) + dc.activeStartTime - dc.activeEndTime
	if remaining < epsilon {
		remaining = 0
	}

	p.covering = true
	c := s.clusters.get(clusterID)
	delta := s.t - c.activeStartTime + remaining
	p.handle = c.heap.Insert(delta, partIdx)
	s.scheduleNextEdge(clusterID)
}

func remainingPrize(c *cluster, now float64) float64 {
	if !c.active {
		return 0
	}
	r := c.prizeSum - (now - c.activeStartTime)
	if r < 0 {
		r = 0
	}

	return r
}

// merge absorbs clusters a and b into a newly appended cluster k, melding
// their pairing heaps (re-baselined onto the merge instant) and union-ing
// a and b in the ClusterUnionFind so that s.uf.Find keeps reporting k for
// every vertex either used to own. viaPart is the edge-part whose deadline
// triggered the merge, recorded on both children.
func (s *solver) merge(a, b, viaPart int) {
	ca, cb := s.clusters.get(a), s.clusters.get(b)
	wasActiveA, wasActiveB := ca.active, cb.active

	s.removePendingEvents(a)
	s.removePendingEvents(b)

	tMerge := s.t
	remA := remainingPrize(ca, tMerge)
	remB := remainingPrize(cb, tMerge)

	// A child that was already inactive stopped growing at activeEndTime,
	// so its parts keep the residual they had then, not at tMerge.
	endA, endB := tMerge, tMerge
	if !wasActiveA {
		endA = ca.activeEndTime
	}
	if !wasActiveB {
		endB = cb.activeEndTime
	}
	ca.heap.AddToHeap(ca.activeStartTime - endA)
	cb.heap.AddToHeap(cb.activeStartTime - endB)
	merged := pairheap.Meld(ca.heap, cb.heap)

	prizeSum := remA + remB
	k := &cluster{
		active:          prizeSum > epsilon,
		activeStartTime: tMerge,
		activeEndTime:   tMerge,
		prizeSum:        prizeSum,
		mergedInto:      noCluster,
		mergedEdge:      -1,
		child1:          a,
		child2:          b,
		heap:            merged,
	}
	id := s.clusters.add(k)
	s.uf.Merge(a, b)
	s.opts.log(2, "merged clusters %d and %d into %d at t=%.6f via edge %d (remaining prize %.6f)",
		a, b, id, tMerge, viaPart/2, prizeSum)

	ca.mergedInto, ca.mergedEdge, ca.active, ca.activeEndTime = id, viaPart, false, tMerge
	cb.mergedInto, cb.mergedEdge, cb.active, cb.activeEndTime = id, viaPart, false, tMerge

	if wasActiveA {
		s.numActive--
	}
	if wasActiveB {
		s.numActive--
	}
	if k.active {
		s.numActive++
		s.scheduleDeactivation(id)
	}
	s.scheduleNextEdge(id)
}
