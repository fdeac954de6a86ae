// Package matrix - eager distance matrix construction and O(1) lookup.
//
// Storage is a linearized n×n float64 buffer (d[i*n+j]) to keep hot-path
// reads free of interface indirection and nested bounds checks. Both mirror
// cells are written at build time so Distance never branches on argument
// order; the single asymmetric case (destination→origin forced to 0) is
// resolved by one comparison.
//
// Complexity: construction O(n²) time and space; Distance and Extremes O(1).
package matrix

import (
	"math"

	"github.com/katalvlaran/routespan/core"
)

// distScale is the rounding granularity: distances are rounded UP to one
// decimal place, i.e. ceil(d·10)/10.
const distScale = 10.0

// DistanceMatrix is the immutable symmetric cache of pairwise distances.
// Built once per node set; shared read-only afterwards.
type DistanceMatrix struct {
	n    int       // node count (depots included)
	dest int       // destination ID = n-1
	d    []float64 // linearized n×n distances, both mirrors populated
	min  float64   // minimum off-diagonal distance, closing pair excluded
	max  float64   // maximum off-diagonal distance
}

// New builds the matrix from an ordered node list using rounded-up Euclidean
// distances. Nodes must satisfy the core ID preconditions (contiguous 0..n-1).
//
// Errors: ErrTooFewNodes, ErrNonContiguousIDs, ErrNonFinite.
//
// Complexity: O(n²) time and space.
func New(nodes []core.Node) (*DistanceMatrix, error) {
	if err := validateNodes(nodes); err != nil {
		return nil, err
	}

	// Index nodes by ID so construction is independent of input order.
	byID := make([]core.Node, len(nodes))
	var i int
	for i = 0; i < len(nodes); i++ {
		byID[nodes[i].ID] = nodes[i]
	}

	return build(len(nodes), func(a, b int) (float64, error) {
		return roundedEuclidean(byID[a], byID[b])
	})
}

// FromFunc builds the matrix from an explicit distance function over ID pairs
// (a < b). Intended for callers that precompute distances externally and for
// tests that need exact edge values. The function's results are still subject
// to the finite/non-negative policy; rounding is the caller's business here.
//
// Errors: ErrTooFewNodes, ErrNonFinite, ErrNegativeDistance.
//
// Complexity: O(n²).
func FromFunc(n int, f func(a, b int) float64) (*DistanceMatrix, error) {
	if n < 2 {
		return nil, ErrTooFewNodes
	}

	return build(n, func(a, b int) (float64, error) {
		v := f(a, b)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrNonFinite
		}
		if v < 0 {
			return 0, ErrNegativeDistance
		}

		return v, nil
	})
}

// build fills the linearized buffer and records extremes. dist is consulted
// once per unordered pair (a<b); both mirrors are written.
func build(n int, dist func(a, b int) (float64, error)) (*DistanceMatrix, error) {
	m := &DistanceMatrix{
		n:    n,
		dest: core.DestinationID(n),
		d:    make([]float64, n*n),
		min:  math.Inf(1),
		max:  0,
	}

	var (
		a, b int
		v    float64
		err  error
	)
	for a = 0; a < n; a++ {
		for b = a + 1; b < n; b++ {
			v, err = dist(a, b)
			if err != nil {
				return nil, err
			}
			m.d[a*n+b] = v
			m.d[b*n+a] = v
			if v < m.min {
				m.min = v
			}
			if v > m.max {
				m.max = v
			}
		}
	}

	return m, nil
}

// Len returns the node count (depots included).
func (m *DistanceMatrix) Len() int { return m.n }

// Distance returns the distance between node IDs a and b in O(1).
// The ordered query (destination, origin) returns exactly 0: it is the
// canonical loop-closing edge. IDs outside [0,n) are a programmer error and
// panic via the slice bounds check.
func (m *DistanceMatrix) Distance(a, b int) float64 {
	if a == m.dest && b == core.OriginID {
		return 0
	}

	return m.d[a*m.n+b]
}

// Extremes returns the minimum and maximum stored pairwise distance. The
// forced-zero closing edge does not participate: the stored symmetric value
// for the (origin, destination) pair is the real Euclidean distance, and the
// zero applies only to the ordered closing query.
func (m *DistanceMatrix) Extremes() (min, max float64) {
	return m.min, m.max
}

// validateNodes mirrors core.ValidateNodeSet and additionally rejects
// non-finite coordinates before any arithmetic happens.
func validateNodes(nodes []core.Node) error {
	if err := core.ValidateNodeSet(nodes); err != nil {
		switch err {
		case core.ErrTooFewNodes:
			return ErrTooFewNodes
		default:
			return ErrNonContiguousIDs
		}
	}

	var i int
	for i = 0; i < len(nodes); i++ {
		if !finite(nodes[i].X) || !finite(nodes[i].Y) {
			return ErrNonFinite
		}
	}

	return nil
}

// roundedEuclidean computes the instance distance convention:
// ceil(√((xa−xb)² + (ya−yb)²) · 10) / 10.
func roundedEuclidean(a, b core.Node) (float64, error) {
	dx := a.X - b.X
	dy := a.Y - b.Y
	v := math.Sqrt(dx*dx + dy*dy)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}

	return math.Ceil(v*distScale) / distScale, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
