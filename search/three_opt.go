// Package search - the 3-opt operator.
//
// A 3-opt move removes three edges and reconnects the four resulting
// segments. With cuts v1 < v2 < v3 splitting the route into
// A = [0:v1], B = [v1:v2], C = [v2:v3], D = [v3:], the eight topologically
// distinct reconnections are:
//
//	0. A B  C  D   (identity - never proposed)
//	1. A B  C' D
//	2. A B' C  D
//	3. A C  B  D
//	4. A B' C' D
//	5. A C  B' D
//	6. A C' B  D
//	7. A C' B' D
//
// (X' = reversed X.) Neighborhood size: O(n³) triples × 7 variants.
package search

import (
	"math/rand"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
)

// threeOptMinLen: both depots plus three cuttable interior positions.
const threeOptMinLen = 6

// reconnectVariants is the count of proposing reconnections (identity excluded).
const reconnectVariants = 7

// ThreeOpt removes three edges and reconnects. Stateless.
type ThreeOpt struct{}

// Kind implements Operator.
func (ThreeOpt) Kind() OperatorKind { return KindThreeOpt }

// FirstImprovement scans cut triples in canonical order, each with all seven
// proposing reconnections, and returns the first feasible candidate
// improving by more than eps.
func (o ThreeOpt) FirstImprovement(cur core.Route, ev *eval.Evaluator, eps float64) (core.Route, Move, bool) {
	n := cur.Len()
	if n < threeOptMinLen {
		return core.Route{}, Move{}, false
	}
	curObj, ok := currentObjective(cur, ev)
	if !ok {
		return core.Route{}, Move{}, false
	}

	base := cur.IDs()
	var v1, v2, v3, rc int
	for v1 = 1; v1 <= n-5; v1++ {
		for v2 = v1 + 1; v2 <= n-3; v2++ {
			for v3 = v2 + 1; v3 <= n-2; v3++ {
				for rc = 1; rc <= reconnectVariants; rc++ {
					cand, delta, feasible := evalCandidate(o.reconnect(base, v1, v2, v3, rc), ev, curObj)
					if feasible && delta < -eps {
						return cand, Move{Kind: KindThreeOpt, I: v1, J: v2, K: v3, Reconnect: rc, Delta: delta}, true
					}
				}
			}
		}
	}

	return core.Route{}, Move{}, false
}

// BestImprovement runs the same scan to exhaustion and keeps the candidate
// with the largest objective decrease.
func (o ThreeOpt) BestImprovement(cur core.Route, ev *eval.Evaluator, eps float64) (core.Route, Move, bool) {
	n := cur.Len()
	if n < threeOptMinLen {
		return core.Route{}, Move{}, false
	}
	curObj, ok := currentObjective(cur, ev)
	if !ok {
		return core.Route{}, Move{}, false
	}

	var (
		base           = cur.IDs()
		best           core.Route
		bestMv         Move
		found          bool
		v1, v2, v3, rc int
	)
	for v1 = 1; v1 <= n-5; v1++ {
		for v2 = v1 + 1; v2 <= n-3; v2++ {
			for v3 = v2 + 1; v3 <= n-2; v3++ {
				for rc = 1; rc <= reconnectVariants; rc++ {
					cand, delta, feasible := evalCandidate(o.reconnect(base, v1, v2, v3, rc), ev, curObj)
					if feasible && delta < -eps && (!found || delta < bestMv.Delta) {
						best = cand
						bestMv = Move{Kind: KindThreeOpt, I: v1, J: v2, K: v3, Reconnect: rc, Delta: delta}
						found = true
					}
				}
			}
		}
	}

	return best, bestMv, found
}

// Random draws a uniform cut triple and reconnection variant, resampling on
// infeasible candidates.
func (o ThreeOpt) Random(cur core.Route, ev *eval.Evaluator, rng *rand.Rand, retries int) (core.Route, Move, bool) {
	n := cur.Len()
	if n < threeOptMinLen {
		return core.Route{}, Move{}, false
	}
	curObj, ok := currentObjective(cur, ev)
	if !ok {
		return core.Route{}, Move{}, false
	}

	base := cur.IDs()
	var t, v1, v2, v3, rc int
	for t = 0; t < retries; t++ {
		v1 = 1 + rng.Intn(n-5)         // 1..n-5
		v2 = v1 + 1 + rng.Intn(n-3-v1) // v1+1..n-3
		v3 = v2 + 1 + rng.Intn(n-2-v2) // v2+1..n-2
		rc = 1 + rng.Intn(reconnectVariants)
		cand, delta, feasible := evalCandidate(o.reconnect(base, v1, v2, v3, rc), ev, curObj)
		if feasible {
			return cand, Move{Kind: KindThreeOpt, I: v1, J: v2, K: v3, Reconnect: rc, Delta: delta}, true
		}
	}

	return core.Route{}, Move{}, false
}

// reconnect builds the chosen reconnection as a fresh ID slice.
func (ThreeOpt) reconnect(base []int, v1, v2, v3, variant int) []int {
	ids := make([]int, 0, len(base))
	ids = append(ids, base[:v1]...) // segment A stays in place

	segB := base[v1:v2]
	segC := base[v2:v3]

	switch variant {
	case 1: // A B C' D
		ids = append(ids, segB...)
		ids = appendReversed(ids, segC)
	case 2: // A B' C D
		ids = appendReversed(ids, segB)
		ids = append(ids, segC...)
	case 3: // A C B D
		ids = append(ids, segC...)
		ids = append(ids, segB...)
	case 4: // A B' C' D
		ids = appendReversed(ids, segB)
		ids = appendReversed(ids, segC)
	case 5: // A C B' D
		ids = append(ids, segC...)
		ids = appendReversed(ids, segB)
	case 6: // A C' B D
		ids = appendReversed(ids, segC)
		ids = append(ids, segB...)
	default: // 7: A C' B' D
		ids = appendReversed(ids, segC)
		ids = appendReversed(ids, segB)
	}

	ids = append(ids, base[v3:]...) // segment D stays in place

	return ids
}

// appendReversed appends seg to dst in reverse order.
func appendReversed(dst, seg []int) []int {
	var i int
	for i = len(seg) - 1; i >= 0; i-- {
		dst = append(dst, seg[i])
	}

	return dst
}
