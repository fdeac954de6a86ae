// Package search_test shared fixtures.
package search_test

import (
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
	"github.com/katalvlaran/routespan/matrix"
)

// euclideanInstance builds n nodes with IDs following input position and
// fake planar coordinates, plus the derived matrix and evaluator. The ID
// convention matters: it is what makes the naive seed feasible.
func euclideanInstance(t *testing.T, n int, seed int64) ([]core.Node, *matrix.DistanceMatrix, *eval.Evaluator) {
	t.Helper()

	gofakeit.Seed(seed)
	nodes := make([]core.Node, n)
	var i int
	for i = 0; i < n; i++ {
		nodes[i] = core.Node{
			ID: i,
			X:  gofakeit.Float64Range(0, 500),
			Y:  gofakeit.Float64Range(0, 500),
		}
	}

	m, err := matrix.New(nodes)
	require.NoError(t, err)

	return nodes, m, eval.New(m)
}

// spikeInstance is a 6-node instance whose distances are all 5 except the
// pair (2,4), which costs 50. A seed traversing that edge is never locally
// optimal: every operator family can route around it.
func spikeInstance(t *testing.T) *eval.Evaluator {
	t.Helper()

	m, err := matrix.FromFunc(6, func(a, b int) float64 {
		if a == 2 && b == 4 {
			return 50
		}

		return 5
	})
	require.NoError(t, err)

	return eval.New(m)
}

// spikeInstanceUniform is the flat counterpart: six nodes, every pair 5.
// All feasible routes share D = 25, Δ = 0.
func spikeInstanceUniform(t *testing.T) *eval.Evaluator {
	t.Helper()

	m, err := matrix.FromFunc(6, func(a, b int) float64 { return 5 })
	require.NoError(t, err)

	return eval.New(m)
}

// looseBounds disables the bound-proximity stop so driver tests exercise
// their own termination conditions.
func looseBounds() matrix.Bounds {
	return matrix.Bounds{Lower: 0, Upper: 1e18}
}

// boundsWithLower forces a specific lower bound for termination tests.
func boundsWithLower(lower float64) matrix.Bounds {
	return matrix.Bounds{Lower: lower, Upper: 1e18}
}

// objective evaluates r and returns its objective, failing the test on an
// infeasible route.
func objective(t *testing.T, ev *eval.Evaluator, r core.Route) float64 {
	t.Helper()

	m, err := ev.Evaluate(&r)
	require.NoError(t, err)

	return m.Objective
}
