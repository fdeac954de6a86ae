// Package eval_test pins the objective arithmetic to a fully worked instance
// and exercises every feasibility violation class.
package eval_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
	"github.com/katalvlaran/routespan/matrix"
)

// workedMatrix is a 6-node instance (interior = 4) with exact edge values:
//
//	d(0,3)=10  d(3,1)=5  d(1,2)=9  d(2,4)=7  d(4,5)=8, every other pair 6.
//
// For the route 0-3-1-2-4-5 that gives D = 39, Δ = 10−5 = 5, maxD = 10,
// L = 10·4 = 40, objective = 40·5 + 39 = 239.
func workedMatrix(t *testing.T) *matrix.DistanceMatrix {
	t.Helper()

	edges := map[[2]int]float64{
		{0, 3}: 10,
		{1, 3}: 5,
		{1, 2}: 9,
		{2, 4}: 7,
		{4, 5}: 8,
	}
	m, err := matrix.FromFunc(6, func(a, b int) float64 {
		if v, ok := edges[[2]int{a, b}]; ok {
			return v
		}

		return 6
	})
	require.NoError(t, err)

	return m
}

// -----------------------------------------------------------------------------
// Evaluate
// -----------------------------------------------------------------------------

func TestEvaluate_WorkedExample(t *testing.T) {
	e := eval.New(workedMatrix(t))
	r := core.NewRoute([]int{0, 3, 1, 2, 4, 5})

	got, err := e.Evaluate(&r)
	require.NoError(t, err)

	assert.InDelta(t, 39.0, got.Distance, 1e-9)
	assert.InDelta(t, 5.0, got.Delta, 1e-9)
	assert.InDelta(t, 40.0, e.ScaleL(), 1e-9)
	assert.InDelta(t, 239.0, got.Objective, 1e-9)
}

func TestEvaluate_ClosingEdgeAddsNothing(t *testing.T) {
	// D already includes the destination→origin edge; the matrix forces it
	// to zero, so D equals the sum of the traversed edges alone.
	e := eval.New(workedMatrix(t))
	r := core.NewRoute([]int{0, 3, 1, 2, 4, 5})

	got, err := e.Evaluate(&r)
	require.NoError(t, err)
	assert.InDelta(t, 10+5+9+7+8, got.Distance, 1e-9)
}

func TestEvaluate_StampsMetricsCache(t *testing.T) {
	e := eval.New(workedMatrix(t))
	r := core.NewRoute([]int{0, 3, 1, 2, 4, 5})

	_, _, _, ok := r.Metrics()
	require.False(t, ok, "fresh route must not carry metrics")

	first, err := e.Evaluate(&r)
	require.NoError(t, err)

	d, delta, obj, ok := r.Metrics()
	require.True(t, ok)
	assert.Equal(t, first.Distance, d)
	assert.Equal(t, first.Delta, delta)
	assert.Equal(t, first.Objective, obj)

	second, err := e.Evaluate(&r)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEvaluate_RejectsInfeasible(t *testing.T) {
	e := eval.New(workedMatrix(t))
	r := core.NewRoute([]int{0, 3, 1, 2, 5, 4})

	got, err := e.Evaluate(&r)
	assert.ErrorIs(t, err, eval.ErrInfeasible)
	assert.Zero(t, got)
}

// -----------------------------------------------------------------------------
// Feasible
// -----------------------------------------------------------------------------

func TestFeasible_ViolationClasses(t *testing.T) {
	e := eval.New(workedMatrix(t))

	cases := []struct {
		name string
		ids  []int
		want eval.Violation
		at   int
	}{
		{"wrong length", []int{0, 1, 2, 5}, eval.WrongLength, 4},
		{"wrong origin", []int{1, 0, 3, 2, 4, 5}, eval.WrongOrigin, 0},
		{"wrong destination", []int{0, 3, 1, 2, 5, 4}, eval.WrongDestination, 5},
		{"unknown node", []int{0, 3, 1, 9, 4, 5}, eval.UnknownNode, 3},
		{"duplicate node", []int{0, 3, 3, 2, 4, 5}, eval.DuplicateNode, 2},
		{"forbidden transition", []int{0, 1, 3, 2, 4, 5}, eval.ForbiddenTransition, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := e.Feasible(core.NewRoute(tc.ids))
			require.Error(t, err)
			assert.ErrorIs(t, err, eval.ErrInfeasible)

			var fe *eval.FeasibilityError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, tc.want, fe.Violation)
			assert.Equal(t, tc.at, fe.Index)
		})
	}
}

func TestFeasible_TransitionCarriesPair(t *testing.T) {
	e := eval.New(workedMatrix(t))

	// Interior pair 3→2: 3 is odd with 2·3 ≥ 4, so the move into an even
	// node is forbidden.
	err := e.Feasible(core.NewRoute([]int{0, 1, 3, 2, 4, 5}))
	require.Error(t, err)

	var fe *eval.FeasibilityError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, 3, fe.From)
	assert.Equal(t, 2, fe.To)
}

func TestFeasible_DepotTransitionsExempt(t *testing.T) {
	// 0→3 (even origin into odd) and 4→5 (into the destination) would both
	// trip the parity rule if depots participated; they must not.
	e := eval.New(workedMatrix(t))
	assert.NoError(t, e.Feasible(core.NewRoute([]int{0, 3, 1, 2, 4, 5})))
}
