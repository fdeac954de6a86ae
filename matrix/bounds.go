// Package matrix - instance bounds and the objective scaling constant.
//
// All three values are single-pass derivations from Extremes(); the O(n²)
// cost was already paid by construction. They are computed once per run and
// consumed read-only by the termination policy and by reporting.
package matrix

import "github.com/katalvlaran/routespan/core"

// Bounds holds the instance-level objective bounds.
//
// Lower = minD · n · (maxD + 1)
// Upper = maxD · n · (maxD + 1)
//
// where n is the total node count, depots included. For any feasible route R,
// Lower ≤ L·Δ(R) + D(R) ≤ Upper. A degenerate uniform instance (minD == maxD)
// yields Lower == Upper; callers must treat that as valid.
type Bounds struct {
	Lower float64
	Upper float64
}

// EstimateBounds derives the bounds from the matrix extremes.
//
// Complexity: O(1) (extremes recorded during construction).
func EstimateBounds(m *DistanceMatrix) Bounds {
	min, max := m.Extremes()
	n := float64(m.Len())

	return Bounds{
		Lower: min * n * (max + 1),
		Upper: max * n * (max + 1),
	}
}

// ScaleL returns the objective's L constant: maxD · interior, where interior
// is the node count excluding both depots. L multiplies the route's edge
// spread Δ, so minimizing the objective rewards low edge-length variance at
// the scale of the whole instance.
//
// Complexity: O(1).
func ScaleL(m *DistanceMatrix) float64 {
	_, max := m.Extremes()

	return max * float64(core.InteriorCount(m.Len()))
}
