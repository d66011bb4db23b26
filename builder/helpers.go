// Package builder provides internal helper functions used by Constructor
// implementations.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/bimatch/core"
)

// addNodes inserts ids into partition p in order.
func addNodes(g *core.Graph, method string, ids []string, p core.Partition) error {
	for _, id := range ids {
		if err := g.AddNode(id, p); err != nil {
			return fmt.Errorf("%s: AddNode(%s,%s): %w", method, id, p, err)
		}
	}

	return nil
}

// addEdge wraps core.Graph.AddEdge with constructor context.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s): %w", method, u, v, err)
	}

	return nil
}

// parity maps an index to A (even) or B (odd).
func parity(i int) core.Partition {
	if i%2 == 0 {
		return core.PartitionA
	}

	return core.PartitionB
}

// makeIDs generates n vertex IDs by concatenating prefix and index.
// Example: makeIDs("L",3) → {"L0","L1","L2"}.
func makeIDs(prefix string, n int) []string {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = vertexID(prefix, i)
	}

	return ids
}

// vertexID returns prefix + decimal index, e.g. vertexID("R",2) → "R2".
func vertexID(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
