// Package matrix_test verifies distance construction, the closing-edge
// convention, extremes, and the bound formulas.
package matrix_test

import (
	"math"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
	"github.com/katalvlaran/routespan/matrix"
)

// squareNodes is a 4-node unit square: convenient exact distances
// (sides 1.0, diagonals ceil(√2·10)/10 = 1.5).
func squareNodes() []core.Node {
	return []core.Node{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 1, Y: 0},
		{ID: 2, X: 1, Y: 1},
		{ID: 3, X: 0, Y: 1},
	}
}

// -----------------------------------------------------------------------------
// Construction and lookup
// -----------------------------------------------------------------------------

func TestNew_RoundsUpToOneDecimal(t *testing.T) {
	m, err := matrix.New(squareNodes())
	require.NoError(t, err)

	assert.Equal(t, 1.0, m.Distance(0, 1))
	// √2 ≈ 1.41421 → rounded UP to 1.5.
	assert.Equal(t, 1.5, m.Distance(1, 3))
}

func TestDistance_SymmetricExceptClosingPair(t *testing.T) {
	gofakeit.Seed(7)
	nodes := randomNodes(12)
	m, err := matrix.New(nodes)
	require.NoError(t, err)

	dest := core.DestinationID(len(nodes))
	var i, j int
	for i = 0; i < len(nodes); i++ {
		for j = 0; j < len(nodes); j++ {
			if i == j {
				continue
			}
			if (i == dest && j == core.OriginID) || (i == core.OriginID && j == dest) {
				continue // the closing pair is the one asymmetric case
			}
			assert.Equal(t, m.Distance(i, j), m.Distance(j, i), "pair (%d,%d)", i, j)
		}
	}
}

func TestDistance_ClosingEdgeForcedZero(t *testing.T) {
	nodes := squareNodes()
	m, err := matrix.New(nodes)
	require.NoError(t, err)

	dest := core.DestinationID(len(nodes))
	assert.Zero(t, m.Distance(dest, core.OriginID))
	// The mirror direction keeps the real geometry.
	assert.Equal(t, 1.0, m.Distance(core.OriginID, dest))
}

func TestExtremes_ExcludeForcedZero(t *testing.T) {
	m, err := matrix.New(squareNodes())
	require.NoError(t, err)

	min, max := m.Extremes()
	assert.Equal(t, 1.0, min, "forced-zero closing edge must not reach extremes")
	assert.Equal(t, 1.5, max)
}

func TestNew_RejectsBadInput(t *testing.T) {
	_, err := matrix.New([]core.Node{{ID: 0}})
	assert.ErrorIs(t, err, matrix.ErrTooFewNodes)

	_, err = matrix.New([]core.Node{{ID: 0}, {ID: 5}})
	assert.ErrorIs(t, err, matrix.ErrNonContiguousIDs)

	_, err = matrix.New([]core.Node{{ID: 0, X: math.NaN()}, {ID: 1}})
	assert.ErrorIs(t, err, matrix.ErrNonFinite)
}

func TestFromFunc_PolicesValues(t *testing.T) {
	_, err := matrix.FromFunc(3, func(a, b int) float64 { return -1 })
	assert.ErrorIs(t, err, matrix.ErrNegativeDistance)

	_, err = matrix.FromFunc(3, func(a, b int) float64 { return math.Inf(1) })
	assert.ErrorIs(t, err, matrix.ErrNonFinite)

	_, err = matrix.FromFunc(1, nil)
	assert.ErrorIs(t, err, matrix.ErrTooFewNodes)

	m, err := matrix.FromFunc(3, func(a, b int) float64 { return float64(a + b) })
	require.NoError(t, err)
	assert.Equal(t, 3.0, m.Distance(1, 2))
	assert.Equal(t, 3.0, m.Distance(2, 1))
}

// -----------------------------------------------------------------------------
// Bounds
// -----------------------------------------------------------------------------

func TestEstimateBounds_Formulas(t *testing.T) {
	m, err := matrix.New(squareNodes())
	require.NoError(t, err)

	b := matrix.EstimateBounds(m)
	n := float64(m.Len())
	// minD=1.0, maxD=1.5.
	assert.InDelta(t, 1.0*n*(1.5+1), b.Lower, 1e-12)
	assert.InDelta(t, 1.5*n*(1.5+1), b.Upper, 1e-12)
	assert.LessOrEqual(t, b.Lower, b.Upper)
}

func TestEstimateBounds_DegenerateUniform(t *testing.T) {
	// All pairwise distances equal: LB == UB is valid, not an error.
	m, err := matrix.FromFunc(4, func(a, b int) float64 { return 2.5 })
	require.NoError(t, err)

	b := matrix.EstimateBounds(m)
	assert.Equal(t, b.Lower, b.Upper)
}

func TestEstimateBounds_LowerIsStopThresholdNotFloor(t *testing.T) {
	// On a uniform instance the lower estimate minD·n·(maxD+1) exceeds every
	// reachable objective: with all distances 2.5 and n=4, Lower = 35 while
	// any feasible route scores L·0 + 3·2.5 = 7.5. The value is a
	// termination threshold, not a floor on feasible objectives.
	m, err := matrix.FromFunc(4, func(a, b int) float64 { return 2.5 })
	require.NoError(t, err)

	b := matrix.EstimateBounds(m)
	assert.InDelta(t, 35.0, b.Lower, 1e-12)

	r := core.NewRoute([]int{0, 2, 1, 3})
	got, err := eval.New(m).Evaluate(&r)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, got.Objective, 1e-12)
	assert.Less(t, got.Objective, b.Lower)
}

func TestScaleL(t *testing.T) {
	m, err := matrix.New(squareNodes())
	require.NoError(t, err)

	// L = maxD · interior = 1.5 · 2.
	assert.InDelta(t, 3.0, matrix.ScaleL(m), 1e-12)
}

// randomNodes builds n nodes with contiguous IDs and fake coordinates.
func randomNodes(n int) []core.Node {
	nodes := make([]core.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = core.Node{
			ID: i,
			X:  gofakeit.Float64Range(0, 500),
			Y:  gofakeit.Float64Range(0, 500),
		}
	}

	return nodes
}
