// SPDX-License-Identifier: MIT
package builder

// Method names prefix every constructor error.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodGrid              = "Grid"
)

// CenterVertexID is the hub of Star and Wheel.
const CenterVertexID = "Center"

// Minimum sizes accepted by the constructors.
const (
	MinCycleNodes     = 3
	MinPathNodes      = 2
	MinStarNodes      = 2
	MinWheelNodes     = 4 // rim cycle of at least MinCycleNodes plus the hub
	MinGridDim        = 1
	MinPartitionSize  = 1
	MinCompleteNodes  = 1
	MinRandomNodes    = 1
	DefaultEdgeWeight = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)
