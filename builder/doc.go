// Package builder provides deterministic, functional-options constructors for
// bipartite fixtures on top of bimatch/core.
//
// Every constructor assigns each node to core.PartitionA or core.PartitionB
// before it adds edges, so the resulting graph satisfies the bipartite invariant
// by construction.
//
// Constructors:
//
//   - CompleteBipartite(n1, n2)    K_{n1,n2}, A side "L*", B side "R*".
//   - RandomBipartite(n1, n2, p)   each cross pair with probability p (needs WithSeed/WithRand).
//   - Path(n)                      alternating partitions along the path.
//   - Cycle(n)                     even cycles only (ErrOddCycle otherwise).
//   - Star(n)                      hub "Center" in A, leaves in B.
//   - Grid(rows, cols)             checkerboard colouring, IDs "r,c".
//
// Options:
//
//   - WithIDScheme / WithSymbNumb / WithExcelColumnIDs for index → ID mapping.
//   - WithSeed / WithRand for stochastic constructors.
//   - WithPartitionPrefix(a, b) for the bipartite families.
//
// Constructors compose through BuildGraph (fresh graph) or Populate (existing graph);
// overlapping IDs surface as core.ErrDuplicateNode.
package builder
