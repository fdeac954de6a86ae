// Package eval is the single source of truth for route feasibility and the
// objective value L·Δ + D.
//
// Every operator and every improvement driver funnels candidates through
// Evaluator.Evaluate; none of them recomputes D or Δ independently. That
// discipline matters here more than in textbook TSP local search because the
// Δ term (longest route edge minus shortest route edge) depends on the whole
// edge multiset of a route: a classic O(1) two-edge delta update is sound for
// D but not for Δ, so a candidate's objective is only knowable by rescanning
// its edges.
//
// Semantics, fixed by this package (resolving the source material's
// ambiguity explicitly):
//
//   - D sums every traversed consecutive edge plus the closing
//     destination→origin edge, which the distance matrix forces to exactly 0.
//   - Δ is max−min over the traversed consecutive edges only. The forced-zero
//     closing edge is excluded - including it would pin min to 0 and collapse
//     Δ to the longest edge, erasing the variance signal the objective
//     exists to reward.
//
// Feasibility violations are reported as *FeasibilityError values naming the
// broken invariant and the offending index; they unwrap to ErrInfeasible so
// callers can match the whole class with errors.Is. Drivers treat any
// feasibility failure as "discard this candidate" - it never escapes an
// improver.
package eval
