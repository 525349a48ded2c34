package pcst

import "sort"

// ReindexResult rewrites r.Vertices from the virtual vertex ids a caller's
// graph-reduction pass introduced (e.g. collapsing degree-2 chains) back
// to the original ids those virtual ids stood in for, via
// virtualToOriginal. Edges are left untouched: edge ids are never
// renumbered by a reduction, only vertex ids are. Vertices absent from the
// map are dropped, on the assumption they were purely structural
// (introduced by the reduction, with no original counterpart).
func ReindexResult(r Result, virtualToOriginal map[int]int) Result {
	seen := make(map[int]bool, len(r.Vertices))
	vertices := make([]int, 0, len(r.Vertices))
	for _, v := range r.Vertices {
		orig, ok := virtualToOriginal[v]
		if !ok || seen[orig] {
			continue
		}
		seen[orig] = true
		vertices = append(vertices, orig)
	}
	sort.Ints(vertices)

	edges := append([]int(nil), r.Edges...)
	sort.Ints(edges)

	return Result{Vertices: vertices, Edges: edges}
}
