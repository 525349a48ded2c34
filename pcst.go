package pcst

import (
	"fmt"

	"github.com/lvlath-labs/pcstfast/graph"
)

// Solve computes a Prize-Collecting Steiner Tree (Root >= 0) or Forest
// (Root == -1) over an undirected graph given as parallel edge, prize and
// cost slices, using the Goemans-Williamson primal-dual moat-growth
// algorithm followed by the pruning policy selected in opts.
//
// edges[i].U and edges[i].V index into prizes (and therefore implicitly
// define the vertex count as len(prizes)); costs[i] is edge i's cost.
func Solve(edges []Edge, prizes []float64, costs []float64, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := validateInput(edges, prizes, costs, o); err != nil {
		return Result{}, err
	}

	o.log(1, "solving: %d vertices, %d edges, root=%d, num_clusters=%d, pruning=%s",
		len(prizes), len(edges), o.Root, o.NumClusters, o.Pruning)

	s := newSolver(edges, prizes, costs, o)
	if err := s.run(); err != nil {
		return Result{}, err
	}

	o.log(1, "growth complete at t=%.6f, %d clusters total", s.t, s.clusters.len())

	comps := s.components()
	selected := s.selectComponents(comps)
	result := s.prune(selected)

	o.log(1, "result: %d vertices, %d edges", len(result.Vertices), len(result.Edges))

	return result, nil
}

// SolveGraph adapts a *graph.Graph into parallel slices and calls Solve.
func SolveGraph(g *graph.Graph, opts ...Option) (Result, error) {
	gEdges := g.Edges()
	edges := make([]Edge, len(gEdges))
	for i, e := range gEdges {
		edges[i] = Edge{U: e.U, V: e.V}
	}

	return Solve(edges, g.Prizes(), g.Costs(), opts...)
}

func validateInput(edges []Edge, prizes []float64, costs []float64, o Options) error {
	n := len(prizes)
	if len(costs) != len(edges) {
		return &InputError{Reason: fmt.Sprintf("len(costs)=%d does not match len(edges)=%d", len(costs), len(edges))}
	}
	for v, p := range prizes {
		if p < 0 {
			return &InputError{Reason: fmt.Sprintf("vertex %d has negative prize %g", v, p)}
		}
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return &InputError{Reason: fmt.Sprintf("edge %d (%d,%d) references a vertex outside [0,%d)", i, e.U, e.V, n)}
		}
		if e.U == e.V {
			return &InputError{Reason: fmt.Sprintf("edge %d is a self-loop on vertex %d", i, e.U)}
		}
		if costs[i] < 0 {
			return &InputError{Reason: fmt.Sprintf("edge %d has negative cost %g", i, costs[i])}
		}
	}
	if o.Root >= n || (o.Root < 0 && o.Root != -1) {
		return &InputError{Reason: fmt.Sprintf("root %d is out of range [0,%d) (or -1 for unrooted)", o.Root, n)}
	}
	if o.Root >= 0 && o.NumClusters != 1 {
		return &InputError{Reason: "num_clusters must be 1 when a root is set"}
	}
	if o.NumClusters < 1 {
		return &InputError{Reason: fmt.Sprintf("num_clusters must be >= 1, got %d", o.NumClusters)}
	}
	switch o.Pruning {
	case PruningNone, PruningSimple, PruningGW, PruningStrong:
	default:
		return &InputError{Reason: fmt.Sprintf("unknown pruning policy %d", int(o.Pruning))}
	}

	return nil
}
