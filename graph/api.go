package graph

// AddVertex appends a new vertex with the given prize and returns its id.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(prize float64) (int, error) {
	if prize < 0 {
		return 0, ErrNegativePrize
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	id := len(g.vertices)
	g.vertices = append(g.vertices, Vertex{ID: id, Prize: prize})

	return id, nil
}

// AddEdge appends a new undirected edge (u,v) with the given cost and
// returns its id. u and v must already exist (0 <= u,v < NumVertices()) and
// must differ. Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, cost float64) (int, error) {
	if cost < 0 {
		return 0, ErrNegativeCost
	}
	if u == v {
		return 0, ErrLoopNotAllowed
	}

	g.muVert.RLock()
	n := len(g.vertices)
	g.muVert.RUnlock()
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, ErrVertexNotFound
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, U: u, V: v, Cost: cost})

	return id, nil
}

// NumVertices reports the number of vertices added so far.
func (g *Graph) NumVertices() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// NumEdges reports the number of edges added so far.
func (g *Graph) NumEdges() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.edges)
}

// Prizes returns a snapshot slice of every vertex's prize, indexed by id.
func (g *Graph) Prizes() []float64 {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	prizes := make([]float64, len(g.vertices))
	for i, v := range g.vertices {
		prizes[i] = v.Prize
	}

	return prizes
}

// Edges returns a snapshot slice of every edge, in insertion (id) order.
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)

	return edges
}

// Costs returns a snapshot slice of every edge's cost, indexed by edge id.
func (g *Graph) Costs() []float64 {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	costs := make([]float64, len(g.edges))
	for i, e := range g.edges {
		costs[i] = e.Cost
	}

	return costs
}
