package pcst

import (
	"github.com/lvlath-labs/pcstfast/internal/eventqueue"
	"github.com/lvlath-labs/pcstfast/internal/pairheap"
)

// noCluster marks a cluster-id-valued field as absent.
const noCluster = -1

// cluster is one entry of the append-only cluster table: ids 0..n-1 are
// the original singletons, merges append new ids. No record is ever
// removed, matching the laminar merge tree's append-only growth.
type cluster struct {
	active bool

	// activeStartTime is the instant this cluster began its current
	// growth epoch (creation, for a singleton or a merge result with
	// positive remaining prize). It never changes again, even after the
	// cluster deactivates, so a part's frozen residual can always be
	// recovered as heap.Value(part.handle) measured against this anchor.
	activeStartTime float64
	activeEndTime   float64

	moatSize float64 // accumulated residual absorbed on deactivation
	prizeSum float64 // remaining prize budget

	mergedInto int // noCluster while alive
	mergedEdge int // edge-part index that witnessed the absorbing merge, or -1

	child1, child2 int // noCluster for singletons

	heap *pairheap.Heap

	deactivationHandle eventqueue.Handle
	hasDeactivation    bool

	edgeHandle  eventqueue.Handle
	hasEdgeWait bool
}

// clusterTable is the flat, append-only vector of cluster records.
type clusterTable struct {
	clusters []*cluster
}

func newClusterTable() *clusterTable {
	return &clusterTable{}
}

// add appends c and returns its newly assigned id.
func (t *clusterTable) add(c *cluster) int {
	id := len(t.clusters)
	t.clusters = append(t.clusters, c)

	return id
}

func (t *clusterTable) get(id int) *cluster { return t.clusters[id] }

func (t *clusterTable) len() int { return len(t.clusters) }
