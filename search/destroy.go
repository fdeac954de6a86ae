// Package search - ALNS destroy operators.
//
// A destroy operator proposes a subset of interior positions to excise from
// the current route. Selection among the three operators and all weight
// bookkeeping live in the ALNS driver; the operators themselves only know
// how to pick their subset. Tagged-variant style: one kind per strategy, no
// external metaheuristic framework.
package search

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/matrix"
)

// DestroyKind tags a removal strategy.
type DestroyKind uint8

const (
	// RandomRemoval excises k interior positions uniformly at random.
	RandomRemoval DestroyKind = iota
	// PathRemoval excises one contiguous interior segment of length k.
	PathRemoval
	// WorstRemoval excises the k interior nodes whose incident edges
	// contribute most to the route length.
	WorstRemoval
)

// String returns the strategy name used in weights diagnostics.
func (k DestroyKind) String() string {
	switch k {
	case RandomRemoval:
		return "random-removal"
	case PathRemoval:
		return "path-removal"
	case WorstRemoval:
		return "worst-removal"
	default:
		return "unknown"
	}
}

// DestroyOperator proposes interior positions to remove. Implementations
// never mutate the route; returned positions are ascending and unique,
// all within [1, len−2].
type DestroyOperator interface {
	Kind() DestroyKind
	Propose(cur core.Route, k int, rng *rand.Rand) []int
}

// NewRandomRemoval returns the uniform removal strategy.
func NewRandomRemoval() DestroyOperator { return randomRemoval{} }

// NewPathRemoval returns the contiguous-segment removal strategy.
func NewPathRemoval() DestroyOperator { return pathRemoval{} }

// NewWorstRemoval returns the edge-contribution removal strategy bound to a
// distance matrix.
func NewWorstRemoval(m *matrix.DistanceMatrix) DestroyOperator { return worstRemoval{m: m} }

// randomRemoval picks k interior positions uniformly.
type randomRemoval struct{}

func (randomRemoval) Kind() DestroyKind { return RandomRemoval }

func (randomRemoval) Propose(cur core.Route, k int, rng *rand.Rand) []int {
	interior := cur.Len() - 2
	if k > interior {
		k = interior
	}
	perm := rng.Perm(interior)[:k]

	out := make([]int, k)
	var i int
	for i = 0; i < k; i++ {
		out[i] = perm[i] + 1 // shift into route positions
	}
	sort.Ints(out)

	return out
}

// pathRemoval picks one contiguous interior run of length k.
type pathRemoval struct{}

func (pathRemoval) Kind() DestroyKind { return PathRemoval }

func (pathRemoval) Propose(cur core.Route, k int, rng *rand.Rand) []int {
	interior := cur.Len() - 2
	if k > interior {
		k = interior
	}
	start := 1 + rng.Intn(interior-k+1) // first route position of the run

	out := make([]int, k)
	var i int
	for i = 0; i < k; i++ {
		out[i] = start + i
	}

	return out
}

// worstRemoval ranks interior positions by incident edge contribution
// d(prev,v) + d(v,next) and takes the top k. Deterministic given the route;
// the rng parameter is unused but kept for the shared contract.
type worstRemoval struct {
	m *matrix.DistanceMatrix
}

func (worstRemoval) Kind() DestroyKind { return WorstRemoval }

func (o worstRemoval) Propose(cur core.Route, k int, _ *rand.Rand) []int {
	interior := cur.Len() - 2
	if k > interior {
		k = interior
	}

	type contrib struct {
		pos  int
		cost float64
	}
	ranked := make([]contrib, 0, interior)

	var p int
	for p = 1; p <= interior; p++ {
		c := o.m.Distance(cur.At(p-1), cur.At(p)) + o.m.Distance(cur.At(p), cur.At(p+1))
		ranked = append(ranked, contrib{pos: p, cost: c})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].cost != ranked[b].cost {
			return ranked[a].cost > ranked[b].cost
		}

		return ranked[a].pos < ranked[b].pos // stable tie-break
	})

	out := make([]int, k)
	var i int
	for i = 0; i < k; i++ {
		out[i] = ranked[i].pos
	}
	sort.Ints(out)

	return out
}
