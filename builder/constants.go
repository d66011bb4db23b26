// Package builder defines shared constants used by graph builders.
package builder

// Method names prefix constructor errors.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodGrid              = "Grid"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomBipartite   = "RandomBipartite"
)

// CenterVertexID is the hub of Star. It sits in core.PartitionA.
const CenterVertexID = "Center"

// Minimum sizes.
const (
	MinCycleNodes    = 4
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinGridDim       = 1
	MinPartitionSize = 1
)

// Probability bounds for RandomBipartite, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
