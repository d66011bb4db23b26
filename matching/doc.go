// Package matching computes maximum matchings on bipartite graphs held by bimatch/core.
//
// What:
//
//   - Maximum(src, opts...): Kuhn's augmenting-path algorithm, one attempt per A-side node.
//   - Greedy(src, opts...): single pass, first free neighbor wins. Maximal, not maximum.
//   - Apply(g, opts...): computes a matching and stores it as edge highlights atomically.
//   - Validate(src, pairs): checks that pairs form a matching over existing A–B edges.
//
// Determinism:
//
//   - Roots are visited in node-insertion order and neighbors in edge-insertion order,
//     so identical construction sequences yield identical pairs.
//   - Result.Pairs is ordered by the insertion order of the A-side node.
//
// Algorithm (Maximum):
//
//	for each A node v (insertion order):
//	    visited := {}
//	    tryAugment(v)            // iterative, explicit stack of (node, cursor) frames
//	tryAugment(v):
//	    for to in neighbors(v):
//	        if to is free                          → flip path, succeed
//	        if mate(to) not visited → descend into mate(to)
//
// The walker keeps its own frame stack instead of recursing, so path length is bounded by
// memory, not goroutine stack depth.
//
// Complexity:
//
//   - Time O(V·E), Memory O(V).
//
// Errors:
//
//   - ErrNilSource     if src or g is nil.
//   - ErrNotBipartite  if an edge joins two A nodes or reaches a node without a partition.
//     Never raised for graphs built through core.Graph.
//
// Concurrency:
//
//   - Maximum and Greedy hold no locks themselves; pass a *core.Tx (via Graph.View) to read a
//     consistent state. Apply takes the graph write lock for compute + tagging.
package matching
