// Package eventqueue implements the event priority queue that drives the
// PCST moat-growth loop: a min-heap keyed by float64 deadline, holding
// opaque payloads (edge-events and cluster-deactivation events), with
// O(log n) insert, delete-by-handle, get-min and delete-min.
//
// Ties between equal deadlines are broken by insertion order, so that event
// processing is deterministic across runs — the solver never relies on an
// unspecified heap tie order. This mirrors how a Dijkstra-style shortest
// path search drives exploration with container/heap, generalized here to
// support deleting an arbitrary, not-yet-popped event (needed when a
// cluster deactivates before its pending edge-event fires).
package eventqueue
