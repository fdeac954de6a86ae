// Package search - the neighborhood operator contract and shared plumbing.
//
// An operator proposes feasibility-preserving route transformations. The
// contract has three access patterns:
//
//   - FirstImprovement: deterministic canonical-order scan, returning the
//     first candidate strictly better than the current route (local search).
//   - BestImprovement: the same scan run to exhaustion, returning the
//     candidate with the largest objective decrease (steepest descent).
//   - Random: one uniformly drawn candidate, feasible or nothing, with a
//     bounded resampling budget (annealing).
//
// Operators re-validate every candidate through eval before offering it; a
// candidate that breaks an invariant is discarded inside the operator, never
// surfaced. Because Δ depends on the route's whole edge multiset, candidates
// are priced by full evaluation, not by incremental two-edge deltas.
package search

import (
	"math/rand"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
)

// Operator proposes candidate routes derived from cur. Implementations are
// stateless (or hold only static configuration) and never mutate cur.
type Operator interface {
	// Kind tags the move family for diagnostics and move records.
	Kind() OperatorKind

	// FirstImprovement scans the neighborhood in canonical order and returns
	// the first feasible candidate whose objective is below cur's by more
	// than eps. ok is false when the neighborhood holds no such candidate.
	FirstImprovement(cur core.Route, ev *eval.Evaluator, eps float64) (core.Route, Move, bool)

	// BestImprovement scans the whole neighborhood and returns the feasible
	// candidate with the most negative delta below −eps. ok is false when no
	// candidate improves.
	BestImprovement(cur core.Route, ev *eval.Evaluator, eps float64) (core.Route, Move, bool)

	// Random draws one random feasible candidate, resampling up to retries
	// times when draws land on infeasible moves. ok is false when the budget
	// is exhausted. Improvement is NOT required - acceptance is the
	// driver's policy.
	Random(cur core.Route, ev *eval.Evaluator, rng *rand.Rand, retries int) (core.Route, Move, bool)
}

// defaultOperators returns the fixed cycle shared by the drivers:
// 2-opt, 3-opt, relocate - in that order.
func defaultOperators(maxSegment int) []Operator {
	return []Operator{
		TwoOpt{},
		ThreeOpt{},
		Relocate{MaxSegment: maxSegment},
	}
}

// evalCandidate wraps ids as a Route and prices it against curObj.
// ok is false when the candidate is infeasible (discard, don't surface).
func evalCandidate(ids []int, ev *eval.Evaluator, curObj float64) (core.Route, float64, bool) {
	cand := core.NewRoute(ids)
	m, err := ev.Evaluate(&cand)
	if err != nil {
		return core.Route{}, 0, false
	}

	return cand, m.Objective - curObj, true
}

// currentObjective evaluates cur for use as the pricing baseline. The stamp
// lands on the local copy only; callers holding the original already have
// theirs stamped.
func currentObjective(cur core.Route, ev *eval.Evaluator) (float64, bool) {
	m, err := ev.Evaluate(&cur)
	if err != nil {
		return 0, false
	}

	return m.Objective, true
}

// mustMetrics reads the stamped cache of an evaluated route. Calling it on
// an unevaluated route is a programmer error.
func mustMetrics(r core.Route) eval.Metrics {
	d, delta, obj, ok := r.Metrics()
	if !ok {
		panic("search: route metrics read before evaluation")
	}

	return eval.Metrics{Distance: d, Delta: delta, Objective: obj}
}

// reverseSegment reverses ids[i..j] in place (inclusive bounds).
func reverseSegment(ids []int, i, j int) {
	for i < j {
		ids[i], ids[j] = ids[j], ids[i]
		i++
		j--
	}
}
