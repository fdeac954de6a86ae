// Package search - the relocate operator.
//
// Relocate excises a contiguous interior segment (length 1..MaxSegment) and
// reinserts it at another interior position, optionally reversed. It reaches
// configurations 2-opt cannot (pure shifts without reversal) at O(n²)
// source/target pairs per segment length.
package search

import (
	"math/rand"

	"github.com/katalvlaran/routespan/core"
	"github.com/katalvlaran/routespan/eval"
)

// Relocate moves a short segment elsewhere in the route.
type Relocate struct {
	// MaxSegment bounds the excised segment length; values < 1 act as 1.
	MaxSegment int
}

// Kind implements Operator.
func (Relocate) Kind() OperatorKind { return KindRelocate }

// maxSeg clamps the configured bound to the route's interior size.
func (o Relocate) maxSeg(n int) int {
	m := o.MaxSegment
	if m < 1 {
		m = 1
	}
	if interior := n - 2; m > interior-1 {
		// Keep at least one interior node outside the segment so a move can
		// actually change the order.
		m = interior - 1
	}

	return m
}

// FirstImprovement scans segment lengths, source positions, target positions
// and both orientations in canonical order.
func (o Relocate) FirstImprovement(cur core.Route, ev *eval.Evaluator, eps float64) (core.Route, Move, bool) {
	n := cur.Len()
	if n < twoOptMinLen {
		return core.Route{}, Move{}, false
	}
	curObj, ok := currentObjective(cur, ev)
	if !ok {
		return core.Route{}, Move{}, false
	}

	base := cur.IDs()
	var segLen, i, j, rev int
	for segLen = 1; segLen <= o.maxSeg(n); segLen++ {
		for i = 1; i+segLen <= n-1; i++ {
			// Insertion position within the shortened route: 1..n-segLen-1.
			for j = 1; j <= n-segLen-1; j++ {
				for rev = 0; rev <= 1; rev++ {
					if rev == 1 && segLen == 1 {
						continue // reversing a single node is the same move
					}
					if j == i && rev == 0 {
						continue // identity
					}
					cand, delta, feasible := evalCandidate(o.apply(base, i, segLen, j, rev == 1), ev, curObj)
					if feasible && delta < -eps {
						return cand, Move{Kind: KindRelocate, I: i, J: j, SegLen: segLen, Reversed: rev == 1, Delta: delta}, true
					}
				}
			}
		}
	}

	return core.Route{}, Move{}, false
}

// BestImprovement runs the same scan to exhaustion and keeps the candidate
// with the largest objective decrease.
func (o Relocate) BestImprovement(cur core.Route, ev *eval.Evaluator, eps float64) (core.Route, Move, bool) {
	n := cur.Len()
	if n < twoOptMinLen {
		return core.Route{}, Move{}, false
	}
	curObj, ok := currentObjective(cur, ev)
	if !ok {
		return core.Route{}, Move{}, false
	}

	var (
		base              = cur.IDs()
		best              core.Route
		bestMv            Move
		found             bool
		segLen, i, j, rev int
	)
	for segLen = 1; segLen <= o.maxSeg(n); segLen++ {
		for i = 1; i+segLen <= n-1; i++ {
			for j = 1; j <= n-segLen-1; j++ {
				for rev = 0; rev <= 1; rev++ {
					if rev == 1 && segLen == 1 {
						continue
					}
					if j == i && rev == 0 {
						continue
					}
					cand, delta, feasible := evalCandidate(o.apply(base, i, segLen, j, rev == 1), ev, curObj)
					if feasible && delta < -eps && (!found || delta < bestMv.Delta) {
						best = cand
						bestMv = Move{Kind: KindRelocate, I: i, J: j, SegLen: segLen, Reversed: rev == 1, Delta: delta}
						found = true
					}
				}
			}
		}
	}

	return best, bestMv, found
}

// Random draws segment length, source, target and orientation uniformly,
// resampling on infeasible or identity draws.
func (o Relocate) Random(cur core.Route, ev *eval.Evaluator, rng *rand.Rand, retries int) (core.Route, Move, bool) {
	n := cur.Len()
	if n < twoOptMinLen {
		return core.Route{}, Move{}, false
	}
	curObj, ok := currentObjective(cur, ev)
	if !ok {
		return core.Route{}, Move{}, false
	}

	base := cur.IDs()
	var t, segLen, i, j int
	var rev bool
	for t = 0; t < retries; t++ {
		segLen = 1 + rng.Intn(o.maxSeg(n))
		i = 1 + rng.Intn(n-1-segLen)     // 1..n-1-segLen
		j = 1 + rng.Intn(n-segLen-1)     // 1..n-segLen-1
		rev = segLen > 1 && rng.Intn(2) == 1
		if j == i && !rev {
			continue // identity draw
		}
		cand, delta, feasible := evalCandidate(o.apply(base, i, segLen, j, rev), ev, curObj)
		if feasible {
			return cand, Move{Kind: KindRelocate, I: i, J: j, SegLen: segLen, Reversed: rev, Delta: delta}, true
		}
	}

	return core.Route{}, Move{}, false
}

// apply excises base[i:i+segLen] and reinserts it (optionally reversed) so
// that the segment begins at position j of the shortened sequence.
func (Relocate) apply(base []int, i, segLen, j int, reversed bool) []int {
	seg := make([]int, segLen)
	copy(seg, base[i:i+segLen])
	if reversed {
		reverseSegment(seg, 0, segLen-1)
	}

	rest := make([]int, 0, len(base)-segLen)
	rest = append(rest, base[:i]...)
	rest = append(rest, base[i+segLen:]...)

	ids := make([]int, 0, len(base))
	ids = append(ids, rest[:j]...)
	ids = append(ids, seg...)
	ids = append(ids, rest[j:]...)

	return ids
}
