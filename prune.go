package pcst

import "sort"

// component is one candidate connected piece of the grown moat forest,
// gathered by walking every input vertex up its laminar merge-tree
// ancestry to the topmost cluster it was absorbed into.
type component struct {
	top      int
	vertices []int
	edges    []int // edge indices, ascending, de-duplicated
	prize    float64
	cost     float64
}

func (c component) netValue() float64 { return c.prize - c.cost }

// climb walks leaf's ancestor chain in the laminar merge tree (cluster's
// mergedInto links, not the path-compressed ClusterUnionFind) and returns
// the id of its topmost still-unmerged ancestor. Every mergedEdge crossed
// along the way is recorded into edges, if non-nil.
func (t *clusterTable) climb(leaf int, edges map[int]struct{}) int {
	cur := leaf
	for {
		c := t.get(cur)
		if c.mergedInto == noCluster {
			return cur
		}
		if edges != nil && c.mergedEdge >= 0 {
			edges[c.mergedEdge/2] = struct{}{}
		}
		cur = c.mergedInto
	}
}

// components groups every input vertex by the topmost cluster its merge
// history climbs to — the raw spanning forest produced by growth, before
// root/num_clusters selection or pruning.
func (s *solver) components() []component {
	byTop := make(map[int]*component)
	var order []int

	for v := 0; v < s.n; v++ {
		edgeSet := make(map[int]struct{})
		top := s.clusters.climb(v, edgeSet)

		comp, ok := byTop[top]
		if !ok {
			comp = &component{top: top}
			byTop[top] = comp
			order = append(order, top)
		}
		comp.vertices = append(comp.vertices, v)
		for e := range edgeSet {
			comp.edges = append(comp.edges, e)
		}
	}

	sort.Ints(order)
	comps := make([]component, 0, len(order))
	for _, top := range order {
		c := byTop[top]
		c.edges = dedupSorted(c.edges)
		for _, v := range c.vertices {
			c.prize += s.prizes[v]
		}
		for _, e := range c.edges {
			c.cost += s.costs[e]
		}
		comps = append(comps, *c)
	}

	return comps
}

func dedupSorted(xs []int) []int {
	sort.Ints(xs)
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out
}

// selectComponents applies the growth phase's component-selection step:
// pick the component containing Root (forcing a single output tree), or
// else the NumClusters components of largest net value among those worth
// keeping at all. A component with netValue <= 0 is dropped rather than
// padding the result up to NumClusters, so an all-zero-prize input
// correctly yields an empty, unrooted Result.
func (s *solver) selectComponents(comps []component) []component {
	if s.opts.Root >= 0 {
		rootTop := s.clusters.climb(s.opts.Root, nil)
		for _, c := range comps {
			if c.top == rootTop {
				return []component{c}
			}
		}

		return []component{{top: rootTop, vertices: []int{s.opts.Root}}}
	}

	candidates := make([]component, 0, len(comps))
	for _, c := range comps {
		if c.netValue() > epsilon {
			candidates = append(candidates, c)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].netValue() > candidates[j].netValue()
	})

	k := s.opts.NumClusters
	if k > len(candidates) {
		k = len(candidates)
	}

	return candidates[:k]
}

// prune applies opts.Pruning to each selected component independently and
// returns the union of the surviving vertices and edges.
func (s *solver) prune(comps []component) Result {
	var res Result
	for _, c := range comps {
		pruned := c
		switch s.opts.Pruning {
		case PruningNone:
			// keep as grown
		case PruningSimple:
			pruned = pruneSimple(s.edges, s.prizes, c, s.opts.Root)
		case PruningGW:
			pruned = pruneGW(s.edges, s.costs, s.prizes, s.clusters, c, s.opts.Root)
		case PruningStrong:
			pruned = pruneStrong(s.edges, s.costs, s.prizes, c, s.opts.Root)
		}
		res.Vertices = append(res.Vertices, pruned.vertices...)
		res.Edges = append(res.Edges, pruned.edges...)
	}

	res.Vertices = dedupSorted(res.Vertices)
	res.Edges = dedupSorted(res.Edges)

	return res
}

// forestGraph is the adjacency view of one component's spanning forest,
// used by every pruning policy to find what a candidate edge separates.
type forestGraph struct {
	adj map[int][]edgeRef
}

type edgeRef struct {
	edge int
	to   int
}

func newForestGraph(edgesIn []Edge, vertices []int, edges []int) *forestGraph {
	g := &forestGraph{adj: make(map[int][]edgeRef, len(vertices))}
	for _, v := range vertices {
		g.adj[v] = nil
	}
	for _, e := range edges {
		u, v := edgesIn[e].U, edgesIn[e].V
		g.adj[u] = append(g.adj[u], edgeRef{edge: e, to: v})
		g.adj[v] = append(g.adj[v], edgeRef{edge: e, to: u})
	}

	return g
}

// reachable returns the set of vertices reachable from start without
// crossing skipEdge, i.e. one side of the forest once skipEdge is cut.
func reachable(g *forestGraph, start, skipEdge int) map[int]bool {
	seen := map[int]bool{start: true}
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range g.adj[v] {
			if nb.edge == skipEdge || seen[nb.to] {
				continue
			}
			seen[nb.to] = true
			stack = append(stack, nb.to)
		}
	}

	return seen
}

func subtreePrize(side map[int]bool, prizes []float64) float64 {
	var total float64
	for v := range side {
		total += prizes[v]
	}

	return total
}

func complement(all []int, side map[int]bool) map[int]bool {
	out := make(map[int]bool, len(all)-len(side))
	for _, v := range all {
		if !side[v] {
			out[v] = true
		}
	}

	return out
}

func toSortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

// dropSide removes a severed side from the working sets: its vertices, the
// cut edge, and every edge interior to the dropped side — without the last
// step, a dropped subtree's own edges would survive in the result pointing
// at vertices that are no longer returned.
func dropSide(edgesIn []Edge, vertexSet, edgeSet map[int]bool, drop map[int]bool, cut int) {
	for v := range drop {
		delete(vertexSet, v)
	}
	delete(edgeSet, cut)
	for e := range edgeSet {
		if drop[edgesIn[e].U] && drop[edgesIn[e].V] {
			delete(edgeSet, e)
		}
	}
}

// pruneSimple repeatedly removes zero-prize leaves (degree <= 1) until
// none remain, never removing root.
func pruneSimple(edgesIn []Edge, prizes []float64, c component, root int) component {
	vertexSet := make(map[int]bool, len(c.vertices))
	for _, v := range c.vertices {
		vertexSet[v] = true
	}
	edgeSet := make(map[int]bool, len(c.edges))
	for _, e := range c.edges {
		edgeSet[e] = true
	}
	g := newForestGraph(edgesIn, c.vertices, c.edges)
	degree := make(map[int]int, len(c.vertices))
	for v := range vertexSet {
		for _, nb := range g.adj[v] {
			if edgeSet[nb.edge] {
				degree[v]++
			}
		}
	}

	for {
		changed := false
		for v := range vertexSet {
			if v == root || degree[v] > 1 || prizes[v] > epsilon {
				continue
			}
			for _, nb := range g.adj[v] {
				if edgeSet[nb.edge] {
					delete(edgeSet, nb.edge)
					degree[nb.to]--
				}
			}
			delete(vertexSet, v)
			degree[v] = 0
			changed = true
		}
		if !changed {
			break
		}
	}

	return component{
		top:      c.top,
		vertices: toSortedKeys(vertexSet),
		edges:    toSortedKeys(edgeSet),
	}
}

// pruneStrong removes, to a fixed point, any forest edge whose severed
// side has total prize falling short of the edge's own cost — on the
// unrooted side if both sides qualify, always preserving root's side.
// Candidate edges are scanned in ascending id order each round so the
// fixed point reached never depends on map iteration order.
func pruneStrong(edgesIn []Edge, costs, prizes []float64, c component, root int) component {
	vertexSet := make(map[int]bool, len(c.vertices))
	for _, v := range c.vertices {
		vertexSet[v] = true
	}
	edgeSet := make(map[int]bool, len(c.edges))
	for _, e := range c.edges {
		edgeSet[e] = true
	}

	for {
		removed := false
		g := newForestGraph(edgesIn, toSortedKeys(vertexSet), toSortedKeys(edgeSet))
		for _, e := range toSortedKeys(edgeSet) {
			u := edgesIn[e].U
			sideA := reachable(g, u, e)
			drop := sideToDrop(vertexSet, sideA, prizes, costs[e], root)
			if drop == nil {
				continue
			}
			dropSide(edgesIn, vertexSet, edgeSet, drop, e)
			removed = true
			break
		}
		if !removed {
			break
		}
	}

	return component{
		top:      c.top,
		vertices: toSortedKeys(vertexSet),
		edges:    toSortedKeys(edgeSet),
	}
}

// pruneGW runs the same severed-subtree test as pruneStrong, but as a
// single deterministic pass over forest edges ordered by the merge that
// created them, most recent first — approximating the reverse-delete
// order a Goemans-Williamson pass processes deactivated clusters in.
func pruneGW(edgesIn []Edge, costs, prizes []float64, clusters *clusterTable, c component, root int) component {
	mergeTime := make(map[int]float64, len(c.edges))
	for id := 0; id < clusters.len(); id++ {
		cl := clusters.get(id)
		if cl.mergedEdge >= 0 {
			e := cl.mergedEdge / 2
			if _, ok := mergeTime[e]; !ok {
				mergeTime[e] = cl.activeEndTime
			}
		}
	}

	order := append([]int(nil), c.edges...)
	sort.SliceStable(order, func(i, j int) bool { return mergeTime[order[i]] > mergeTime[order[j]] })

	vertexSet := make(map[int]bool, len(c.vertices))
	for _, v := range c.vertices {
		vertexSet[v] = true
	}
	edgeSet := make(map[int]bool, len(c.edges))
	for _, e := range c.edges {
		edgeSet[e] = true
	}

	for _, e := range order {
		if !edgeSet[e] {
			continue
		}
		g := newForestGraph(edgesIn, toSortedKeys(vertexSet), toSortedKeys(edgeSet))
		sideA := reachable(g, edgesIn[e].U, e)
		drop := sideToDrop(vertexSet, sideA, prizes, costs[e], root)
		if drop == nil {
			continue
		}
		dropSide(edgesIn, vertexSet, edgeSet, drop, e)
	}

	return component{
		top:      c.top,
		vertices: toSortedKeys(vertexSet),
		edges:    toSortedKeys(edgeSet),
	}
}

// sideToDrop decides which side (if either) of a candidate edge cut is
// worth severing: the side whose total prize is strictly less than the
// edge's cost, never the side containing root. The comparison is strict
// so a subtree exactly paying for its edge survives — in particular a
// zero-prize chain reached over zero-cost edges (the shape virtual-node
// graph reductions produce) is never cut away.
func sideToDrop(all map[int]bool, sideA map[int]bool, prizes []float64, cost float64, root int) map[int]bool {
	allList := toSortedKeys(all)
	sideB := complement(allList, sideA)

	if root >= 0 {
		if sideA[root] {
			if subtreePrize(sideB, prizes) < cost-epsilon {
				return sideB
			}
			return nil
		}
		if subtreePrize(sideA, prizes) < cost-epsilon {
			return sideA
		}
		return nil
	}

	pa, pb := subtreePrize(sideA, prizes), subtreePrize(sideB, prizes)
	switch {
	case pa < cost-epsilon && pa <= pb:
		return sideA
	case pb < cost-epsilon:
		return sideB
	default:
		return nil
	}
}
