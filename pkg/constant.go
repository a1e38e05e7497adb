package pkg

import "math"

// INF_WEIGHT marks an unreachable vertex in shortest path results.
var INF_WEIGHT = math.Inf(1)

const (
	DEFAULT_FARTHEST_K = 10
	MAX_FARTHEST_K     = 100

	// cancellation is checked once every CONTEXT_CHECK_INTERVAL heap pops
	CONTEXT_CHECK_INTERVAL = 1024

	DISTANCE_PRECISION = 2
)
