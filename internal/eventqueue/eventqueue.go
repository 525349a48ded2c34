package eventqueue

import "container/heap"

// Handle identifies an entry previously inserted into a Queue, so it can
// later be deleted before it would naturally reach the front.
type Handle int

// entry is one element of the heap: a deadline, the caller's payload, an
// insertion sequence number used to break ties deterministically, and the
// entry's current position in the backing slice (kept in sync by Swap so
// Delete can locate it in O(1) instead of scanning).
type entry struct {
	key     float64
	seq     uint64
	pos     int
	hdl     Handle
	payload interface{}
}

// Queue is a min-heap keyed by deadline, supporting delete of an
// already-inserted, not-yet-popped entry by Handle.
type Queue struct {
	entries []*entry
	byHdl   map[Handle]*entry
	nextHdl Handle
	seq     uint64
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{byHdl: make(map[Handle]*entry)}
}

// Len reports the number of entries currently in the queue.
func (q *Queue) Len() int { return len(q.entries) }

// Insert adds payload at the given deadline and returns a Handle that can
// be passed to Delete. Complexity: O(log n).
func (q *Queue) Insert(key float64, payload interface{}) Handle {
	e := &entry{key: key, seq: q.seq, payload: payload}
	q.seq++

	h := q.nextHdl
	q.nextHdl++
	e.hdl = h
	q.byHdl[h] = e

	heap.Push((*heapData)(q), e)

	return h
}

// Delete removes the entry previously returned by Insert as h. It is a
// no-op if h is unknown (already popped or deleted) — callers that may race
// a deactivation against a pending edge-event rely on this.
func (q *Queue) Delete(h Handle) {
	e, ok := q.byHdl[h]
	if !ok {
		return
	}
	delete(q.byHdl, h)
	heap.Remove((*heapData)(q), e.pos)
}

// Min returns the key and payload of the smallest-deadline entry without
// removing it. ok is false if the queue is empty.
func (q *Queue) Min() (key float64, payload interface{}, ok bool) {
	if len(q.entries) == 0 {
		return 0, nil, false
	}
	top := q.entries[0]

	return top.key, top.payload, true
}

// DeleteMin removes and returns the smallest-deadline entry. ok is false if
// the queue was empty.
func (q *Queue) DeleteMin() (key float64, payload interface{}, ok bool) {
	if len(q.entries) == 0 {
		return 0, nil, false
	}
	top := heap.Pop((*heapData)(q)).(*entry)
	delete(q.byHdl, top.hdl)

	return top.key, top.payload, true
}

// heapData adapts *Queue to container/heap.Interface without exposing the
// heap machinery on the public type.
type heapData Queue

func (h *heapData) Len() int { return len(h.entries) }

func (h *heapData) Less(i, j int) bool {
	if h.entries[i].key != h.entries[j].key {
		return h.entries[i].key < h.entries[j].key
	}
	// Stable tie-break: earlier insertion sorts first.
	return h.entries[i].seq < h.entries[j].seq
}

func (h *heapData) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.entries[i].pos = i
	h.entries[j].pos = j
}

func (h *heapData) Push(x interface{}) {
	e := x.(*entry)
	e.pos = len(h.entries)
	h.entries = append(h.entries, e)
}

func (h *heapData) Pop() interface{} {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	h.entries = old[:n-1]

	return e
}
