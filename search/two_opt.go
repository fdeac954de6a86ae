// Package search - the 2-opt operator.
//
// A 2-opt move reverses the interior segment between two chosen positions.
// In plain TSP the move is closed over tour validity; here a reversal can
// flip a legal parity transition into a forbidden one, so every candidate
// goes through eval before being offered.
//
// Neighborhood size: O(n²) segment pairs.
package search

import (
	"math/rand"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
)

// twoOptMinLen is the smallest route a 2-opt move can act on:
// both depots plus two interior nodes.
const twoOptMinLen = 4

// TwoOpt reverses one interior segment. Stateless.
type TwoOpt struct{}

// Kind implements Operator.
func (TwoOpt) Kind() OperatorKind { return KindTwoOpt }

// FirstImprovement scans segment pairs (v1, v2) with 1 ≤ v1 < v2 ≤ len−2 in
// canonical order and returns the first feasible candidate improving by more
// than eps.
//
// Complexity: O(n²) candidates × O(n) evaluation.
func (o TwoOpt) FirstImprovement(cur core.Route, ev *eval.Evaluator, eps float64) (core.Route, Move, bool) {
	n := cur.Len()
	if n < twoOptMinLen {
		return core.Route{}, Move{}, false
	}
	curObj, ok := currentObjective(cur, ev)
	if !ok {
		return core.Route{}, Move{}, false
	}

	base := cur.IDs()
	var v1, v2 int
	for v1 = 1; v1 <= n-3; v1++ {
		for v2 = v1 + 1; v2 <= n-2; v2++ {
			cand, delta, feasible := evalCandidate(o.apply(base, v1, v2), ev, curObj)
			if feasible && delta < -eps {
				return cand, Move{Kind: KindTwoOpt, I: v1, J: v2, Delta: delta}, true
			}
		}
	}

	return core.Route{}, Move{}, false
}

// BestImprovement runs the same scan to exhaustion and keeps the candidate
// with the largest objective decrease.
func (o TwoOpt) BestImprovement(cur core.Route, ev *eval.Evaluator, eps float64) (core.Route, Move, bool) {
	n := cur.Len()
	if n < twoOptMinLen {
		return core.Route{}, Move{}, false
	}
	curObj, ok := currentObjective(cur, ev)
	if !ok {
		return core.Route{}, Move{}, false
	}

	var (
		base   = cur.IDs()
		best   core.Route
		bestMv Move
		found  bool
		v1, v2 int
	)
	for v1 = 1; v1 <= n-3; v1++ {
		for v2 = v1 + 1; v2 <= n-2; v2++ {
			cand, delta, feasible := evalCandidate(o.apply(base, v1, v2), ev, curObj)
			if feasible && delta < -eps && (!found || delta < bestMv.Delta) {
				best = cand
				bestMv = Move{Kind: KindTwoOpt, I: v1, J: v2, Delta: delta}
				found = true
			}
		}
	}

	return best, bestMv, found
}

// Random draws a uniform segment pair, resampling on infeasible candidates.
func (o TwoOpt) Random(cur core.Route, ev *eval.Evaluator, rng *rand.Rand, retries int) (core.Route, Move, bool) {
	n := cur.Len()
	if n < twoOptMinLen {
		return core.Route{}, Move{}, false
	}
	curObj, ok := currentObjective(cur, ev)
	if !ok {
		return core.Route{}, Move{}, false
	}

	base := cur.IDs()
	var t, v1, v2 int
	for t = 0; t < retries; t++ {
		v1 = 1 + rng.Intn(n-3)        // 1..n-3
		v2 = v1 + 1 + rng.Intn(n-2-v1) // v1+1..n-2
		cand, delta, feasible := evalCandidate(o.apply(base, v1, v2), ev, curObj)
		if feasible {
			return cand, Move{Kind: KindTwoOpt, I: v1, J: v2, Delta: delta}, true
		}
	}

	return core.Route{}, Move{}, false
}

// apply returns a fresh ID slice with base[v1..v2] reversed.
func (TwoOpt) apply(base []int, v1, v2 int) []int {
	ids := make([]int, len(base))
	copy(ids, base)
	reverseSegment(ids, v1, v2)

	return ids
}
